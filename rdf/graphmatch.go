package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// GraphIsomorphic reports whether two graphs have the same connectivity
// shape, disregarding all node identity: IRI text, blank node identifiers and
// literal content are ignored. Each graph is reduced to a directed labeled
// multigraph whose vertices are the graph's subjects; for every (subject,
// predicate) pair one edge group aggregates the objects reached through that
// predicate, split into links to other subject vertices and a count of leaf
// objects that are not subjects themselves. The reduced graphs are then
// handed to an exact isomorphism search.
//
// Both graphs are normalized with ExpandTriples first, which is the only
// error source; graphs with no base URL cannot fail.
func GraphIsomorphic(a, b *Graph) (bool, error) {
	ta, err := a.ExpandTriples()
	if err != nil {
		return false, err
	}
	tb, err := b.ExpandTriples()
	if err != nil {
		return false, err
	}
	return isomorphicGraphs(buildMultigraph(ta), buildMultigraph(tb)), nil
}

// edgeGroup is the aggregate of one (subject, predicate) pair: the subject
// vertices reachable through the predicate plus the number of non-vertex
// objects.
type edgeGroup struct {
	targets []int // ascending vertex indices
	leaves  int
}

// multigraph is the shape-only reduction of a triple graph.
type multigraph struct {
	order int
	out   [][]edgeGroup
	indeg []int
}

func buildMultigraph(triples []Triple) *multigraph {
	triples = canonicalTriples(triples)

	vertex := make(map[Term]int)
	for _, t := range triples {
		if _, ok := vertex[t.S]; !ok {
			vertex[t.S] = len(vertex)
		}
	}

	g := &multigraph{order: len(vertex)}
	g.out = make([][]edgeGroup, g.order)
	g.indeg = make([]int, g.order)

	// triples are sorted, so each (subject, predicate) run is contiguous.
	for i := 0; i < len(triples); {
		j := i
		grp := edgeGroup{}
		for ; j < len(triples) && triples[j].S == triples[i].S && triples[j].P == triples[i].P; j++ {
			if v, ok := vertex[triples[j].O]; ok {
				grp.targets = append(grp.targets, v)
				g.indeg[v]++
			} else {
				grp.leaves++
			}
		}
		sort.Ints(grp.targets)
		u := vertex[triples[i].S]
		g.out[u] = append(g.out[u], grp)
		i = j
	}
	return g
}

// vertexSignature is a bijection-invariant summary of a vertex: its incoming
// edge count and the shape of each outgoing edge group. Vertices whose
// signatures differ can never correspond under an isomorphism.
func (g *multigraph) vertexSignature(u int) string {
	shapes := make([]string, len(g.out[u]))
	for i, grp := range g.out[u] {
		shapes[i] = fmt.Sprintf("%d+%d", len(grp.targets), grp.leaves)
	}
	sort.Strings(shapes)
	return fmt.Sprintf("in=%d out=%s", g.indeg[u], strings.Join(shapes, ","))
}

// isomorphicGraphs decides whether a vertex bijection exists between a and b
// that preserves edge connectivity and edge-group cardinalities. It runs a
// backtracking search over candidate bijections, pruning candidates whose
// vertex signatures disagree, and verifies the full edge-group mapping once
// a complete assignment is reached. Exact but exponential in the worst case,
// which is inherent to graph isomorphism.
func isomorphicGraphs(a, b *multigraph) bool {
	if a.order != b.order {
		return false
	}

	sigA := make([]string, a.order)
	sigB := make([]string, b.order)
	for u := 0; u < a.order; u++ {
		sigA[u] = a.vertexSignature(u)
		sigB[u] = b.vertexSignature(u)
	}
	sortedA := append([]string(nil), sigA...)
	sortedB := append([]string(nil), sigB...)
	sort.Strings(sortedA)
	sort.Strings(sortedB)
	for i := range sortedA {
		if sortedA[i] != sortedB[i] {
			return false
		}
	}

	perm := make([]int, a.order)
	used := make([]bool, a.order)
	var assign func(u int) bool
	assign = func(u int) bool {
		if u == a.order {
			return edgesPreserved(a, b, perm)
		}
		for v := 0; v < b.order; v++ {
			if used[v] || sigA[u] != sigB[v] {
				continue
			}
			perm[u] = v
			used[v] = true
			if assign(u + 1) {
				return true
			}
			used[v] = false
		}
		return false
	}
	return assign(0)
}

// edgesPreserved verifies a complete vertex assignment: for every vertex, the
// multiset of its outgoing edge groups, with targets mapped through perm,
// must equal the multiset of edge groups of its image.
func edgesPreserved(a, b *multigraph, perm []int) bool {
	for u := 0; u < a.order; u++ {
		av := make([]string, len(a.out[u]))
		for i, grp := range a.out[u] {
			mapped := make([]int, len(grp.targets))
			for j, t := range grp.targets {
				mapped[j] = perm[t]
			}
			sort.Ints(mapped)
			av[i] = groupKey(mapped, grp.leaves)
		}
		bv := make([]string, len(b.out[perm[u]]))
		for i, grp := range b.out[perm[u]] {
			bv[i] = groupKey(grp.targets, grp.leaves)
		}
		sort.Strings(av)
		sort.Strings(bv)
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
	}
	return true
}

func groupKey(targets []int, leaves int) string {
	parts := make([]string, 0, len(targets)+1)
	for _, t := range targets {
		parts = append(parts, fmt.Sprintf("v%d", t))
	}
	parts = append(parts, fmt.Sprintf("leaves%d", leaves))
	return strings.Join(parts, "|")
}
