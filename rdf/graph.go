package rdf

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

// termComparer orders Term keys in the persistent index.
type termComparer struct{}

func (termComparer) Compare(a, b Term) int { return CompareTerms(a, b) }

// iriComparer orders IRI keys in the predicate level of the index.
type iriComparer struct{}

func (iriComparer) Compare(a, b IRI) int { return strings.Compare(a.Value, b.Value) }

type objectSet = immutable.SortedMap[Term, struct{}]

type predicateMap = immutable.SortedMap[IRI, *objectSet]

type subjectMap = immutable.SortedMap[Term, *predicateMap]

// TermFilter selects terms during Select. A nil filter accepts every term.
type TermFilter func(Term) bool

// Graph is an immutable, indexed collection of triples: a persistent
// subject -> predicate -> object-set index backed by balanced trees.
//
// A Graph is never mutated after construction, so any number of goroutines
// may query it concurrently without synchronization. Operations that would
// change content (Union) return a new Graph sharing unaffected substructure
// with the receiver.
//
// Invariant: every subject present in the index has at least one predicate,
// and every (subject, predicate) pair has at least one object.
type Graph struct {
	spo      *subjectMap
	size     int
	baseURL  string
	prefixes PrefixMappings
}

// NewGraph returns an empty graph with no base URL and an empty prefix table.
func NewGraph() *Graph {
	return &Graph{spo: immutable.NewSortedMap[Term, *predicateMap](termComparer{})}
}

// NewGraphFromTriples builds a graph from a batch of triples. Duplicates
// collapse and input order does not affect the result. The base URL and
// prefix table are fixed for the lifetime of the graph; baseURL may be empty
// and prefixes may be nil.
//
// Triples are assumed valid (see NewTriple); the graph performs no shape
// checks of its own.
func NewGraphFromTriples(triples []Triple, baseURL string, prefixes PrefixMappings) *Graph {
	g := NewGraph()
	g.baseURL = baseURL
	if len(prefixes) > 0 {
		g.prefixes = append(PrefixMappings(nil), prefixes...)
	}
	for _, t := range triples {
		g = g.withTriple(t)
	}
	return g
}

// withTriple returns a graph containing t in addition to the receiver's
// triples. The receiver is unchanged.
func (g *Graph) withTriple(t Triple) *Graph {
	pm, ok := g.spo.Get(t.S)
	if !ok {
		pm = immutable.NewSortedMap[IRI, *objectSet](iriComparer{})
	}
	objs, ok := pm.Get(t.P)
	if !ok {
		objs = immutable.NewSortedMap[Term, struct{}](termComparer{})
	}
	if _, dup := objs.Get(t.O); dup {
		return g
	}
	next := *g
	next.spo = g.spo.Set(t.S, pm.Set(t.P, objs.Set(t.O, struct{}{})))
	next.size++
	return &next
}

// Len returns the number of distinct triples stored.
func (g *Graph) Len() int { return g.size }

// BaseURL returns the graph's base URL, or the empty string if none was set.
func (g *Graph) BaseURL() string { return g.baseURL }

// Prefixes returns the graph's prefix table.
func (g *Graph) Prefixes() PrefixMappings { return g.prefixes }

// Triples enumerates every stored triple, iterating subjects, then
// predicates, then objects, each level in the term total order. The result
// is deterministic but unrelated to insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, g.size)
	sitr := g.spo.Iterator()
	for !sitr.Done() {
		s, pm, _ := sitr.Next()
		pitr := pm.Iterator()
		for !pitr.Done() {
			p, objs, _ := pitr.Next()
			oitr := objs.Iterator()
			for !oitr.Done() {
				o, _, _ := oitr.Next()
				out = append(out, Triple{S: s, P: p, O: o})
			}
		}
	}
	return out
}

// Contains reports whether t is stored in the graph.
func (g *Graph) Contains(t Triple) bool {
	pm, ok := g.spo.Get(t.S)
	if !ok {
		return false
	}
	objs, ok := pm.Get(t.P)
	if !ok {
		return false
	}
	_, ok = objs.Get(t.O)
	return ok
}

// Select emits every triple whose subject, predicate and object pass the
// given filters. A nil filter accepts everything, so Select(nil, nil, nil)
// enumerates the whole graph. Filters are opaque, so Select inspects stored
// entries linearly; use Query for exact-value lookups that can exploit the
// index.
func (g *Graph) Select(subject, predicate, object TermFilter) []Triple {
	var out []Triple
	sitr := g.spo.Iterator()
	for !sitr.Done() {
		s, pm, _ := sitr.Next()
		if subject != nil && !subject(s) {
			continue
		}
		pitr := pm.Iterator()
		for !pitr.Done() {
			p, objs, _ := pitr.Next()
			if predicate != nil && !predicate(p) {
				continue
			}
			oitr := objs.Iterator()
			for !oitr.Done() {
				o, _, _ := oitr.Next()
				if object != nil && !object(o) {
					continue
				}
				out = append(out, Triple{S: s, P: p, O: o})
			}
		}
	}
	return out
}

// Query emits every triple matching the given exact pattern. A nil argument
// is a wildcard. Unlike Select, each non-nil position is resolved with a
// single index lookup (subject and predicate by key, object by set
// membership) instead of a scan. A non-IRI predicate pattern matches nothing,
// since only IRIs occur in predicate position.
func (g *Graph) Query(subject, predicate, object Term) []Triple {
	var out []Triple

	emit := func(s Term, p IRI, objs *objectSet) {
		if object != nil {
			if _, ok := objs.Get(object); ok {
				out = append(out, Triple{S: s, P: p, O: object})
			}
			return
		}
		oitr := objs.Iterator()
		for !oitr.Done() {
			o, _, _ := oitr.Next()
			out = append(out, Triple{S: s, P: p, O: o})
		}
	}

	matchPredicates := func(s Term, pm *predicateMap) {
		if predicate != nil {
			p, ok := predicate.(IRI)
			if !ok {
				return
			}
			objs, ok := pm.Get(p)
			if !ok {
				return
			}
			emit(s, p, objs)
			return
		}
		pitr := pm.Iterator()
		for !pitr.Done() {
			p, objs, _ := pitr.Next()
			emit(s, p, objs)
		}
	}

	if subject != nil {
		pm, ok := g.spo.Get(subject)
		if !ok {
			return nil
		}
		matchPredicates(subject, pm)
		return out
	}
	sitr := g.spo.Iterator()
	for !sitr.Done() {
		s, pm, _ := sitr.Next()
		matchPredicates(s, pm)
	}
	return out
}

// Union returns a graph holding the receiver's triples plus other's triples.
// Both inputs are unchanged; the result shares substructure with the
// receiver and keeps the receiver's base URL and prefix table.
func (g *Graph) Union(other *Graph) *Graph {
	out := g
	for _, t := range other.Triples() {
		out = out.withTriple(t)
	}
	return out
}
