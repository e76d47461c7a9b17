package dag

import (
	"sort"

	"github.com/mjain00/parallel-sta/netlist"
)

// LevelList buckets every net in a Graph by its longest-path rank from
// any source (§3, §4.4). It is the structure that makes forward/backward
// pipelining safe: for every edge u -> v, LevelOf(u) < LevelOf(v).
type LevelList struct {
	g          *Graph
	levelOfIdx []int   // dense idx -> level
	buckets    [][]int // level -> dense indices, ascending dense-idx order
}

// NumLevels returns the number of distinct levels (the highest level + 1).
func (ll *LevelList) NumLevels() int { return len(ll.buckets) }

// BucketIdx returns the dense indices of nets at level l.
func (ll *LevelList) BucketIdx(l int) []int { return ll.buckets[l] }

// BucketNetIds returns the NetIds of nets at level l, the external
// Vec<Vec<NetId>> view described in §3.
func (ll *LevelList) BucketNetIds(l int) []netlist.NetId {
	idxs := ll.buckets[l]
	out := make([]netlist.NetId, len(idxs))
	for i, idx := range idxs {
		out[i] = ll.g.NetAt(idx)
	}
	return out
}

// LevelOf returns the level assigned to the net at dense index idx.
func (ll *LevelList) LevelOf(idx int) int { return ll.levelOfIdx[idx] }

// Levels runs a Kahn-style BFS over g's forward adjacency (§4.4).
// Nets with in-degree 0 start at level 0; when a neighbor's in-degree
// reaches 0 its level becomes level(current)+1. If any net retains
// positive in-degree once the BFS queue drains, no level could be
// assigned to it and Levels returns a *CyclicGraphError naming every
// such net (§7).
func Levels(g *Graph) (*LevelList, error) {
	n := g.N()
	indeg := make([]int, n)
	for u := 0; u < n; u++ {
		for _, v := range g.Forward(u) {
			indeg[v]++
		}
	}

	level := make([]int, n)
	queue := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if indeg[u] == 0 {
			queue = append(queue, u)
		}
	}

	processed := 0
	maxLevel := 0
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		processed++
		for _, v := range g.Forward(u) {
			indeg[v]--
			if indeg[v] == 0 {
				level[v] = level[u] + 1
				if level[v] > maxLevel {
					maxLevel = level[v]
				}
				queue = append(queue, v)
			}
		}
	}

	if processed != n {
		var unreached []netlist.NetId
		for u := 0; u < n; u++ {
			if indeg[u] > 0 {
				unreached = append(unreached, g.NetAt(u))
			}
		}
		sort.Slice(unreached, func(i, j int) bool { return unreached[i] < unreached[j] })
		return nil, &CyclicGraphError{Unreached: unreached}
	}

	buckets := make([][]int, maxLevel+1)
	for u := 0; u < n; u++ {
		buckets[level[u]] = append(buckets[level[u]], u)
	}

	return &LevelList{g: g, levelOfIdx: level, buckets: buckets}, nil
}
