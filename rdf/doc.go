// Package rdf provides an in-memory, indexed RDF triple store with graph
// comparison utilities.
//
// It focuses on a small, type-safe surface over immutable values:
//   - Model: IRI, BlankNode and Literal terms with a total order, combined
//     into validated Triples.
//   - Store: Graph, a persistent subject -> predicate -> object-set index
//     built once from a batch of triples and queried thereafter.
//   - Queries: Triples() enumerates everything; Select() scans with opaque
//     filters; Query() answers exact patterns with per-level index lookups.
//   - Normalization: prefixed-name expansion (ExpandName, ExpandTriple) and
//     base-URL absolutization (ResolveTerm, ResolveTriple), combined by
//     Graph.ExpandTriples.
//   - Equivalence: Isomorphic compares facts modulo blank node identity;
//     GraphIsomorphic compares connectivity shape modulo all node identity.
//
// Graphs are immutable after construction: no operation mutates a Graph in
// place, and Union returns a new Graph sharing substructure with its
// receiver. Any number of goroutines may query a Graph concurrently without
// locking.
//
// Example:
//
//	ex := func(s string) rdf.IRI { return rdf.IRI{Value: "http://example.org/" + s} }
//	g := rdf.NewGraphFromTriples([]rdf.Triple{
//	    {S: ex("alice"), P: ex("knows"), O: ex("bob")},
//	    {S: ex("alice"), P: ex("name"), O: rdf.Literal{Lexical: "Alice"}},
//	}, "", nil)
//
//	for _, t := range g.Query(ex("alice"), nil, nil) {
//	    // process t
//	}
//
// Serialization formats are intentionally not implemented here. Parsers and
// writers are external collaborators that speak the TripleReader and
// TripleWriter interfaces and consume Triples()/NewGraphFromTriples.
package rdf
