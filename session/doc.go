// Package session wires the full analysis pipeline (C2 netlist ingest
// through C7 report) into a single Analyze call, the way examples/*.go
// glues individual lvlath packages into one worked scenario. It owns no
// analysis logic of its own: every stage below it (netlist, dag, timing,
// report) stays independently testable, and session only sequences them.
package session
