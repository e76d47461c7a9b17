// Command gosta runs static timing analysis over a synthesis-tool JSON
// netlist (§6.1) and prints a slack report (§6.2).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/mjain00/parallel-sta/dag"
	"github.com/mjain00/parallel-sta/session"
	"github.com/mjain00/parallel-sta/timing"
)

func main() {
	verbose := flag.Bool("v", false, "enable diagnostic logging")
	verboseLong := flag.Bool("verbose", false, "enable diagnostic logging")
	workers := flag.Int("workers", 16, "fixed worker pool size for the Forward/Backward Engines")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: gosta [-v] [-workers N] <netlist.json>")
		atexit.Exit(2)
		return
	}

	res, err := session.AnalyzeFrom(
		session.FileIngester{Path: flag.Arg(0)},
		session.WithVerbose(*verbose || *verboseLong),
		session.WithTimingOptions(timing.WithWorkers(*workers)),
	)
	if err != nil {
		if cyc, ok := dag.AsCyclicGraphError(err); ok {
			log.Printf("cyclic graph: %d net(s) unreachable: %v", len(cyc.Unreached), cyc.Unreached)
			atexit.Exit(1)
			return
		}
		log.Printf("analysis failed: %v", err)
		atexit.Exit(1)
		return
	}

	printSlackTable(res)
	if len(res.Report.Violations()) > 0 {
		atexit.Exit(1)
		return
	}
	atexit.Exit(0)
}
