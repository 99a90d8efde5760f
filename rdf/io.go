package rdf

import "io"

// TripleReader streams triples from an external source, typically a
// serialization-format parser. Next returns io.EOF after the final triple.
type TripleReader interface {
	Next() (Triple, error)
	Close() error
}

// TripleWriter streams triples to an external sink, typically a
// serialization-format writer.
type TripleWriter interface {
	Write(Triple) error
	Flush() error
	Close() error
}

// TripleHandler processes triples in push mode.
type TripleHandler func(Triple) error

// ReadGraph drains a TripleReader and builds a graph from the triples read,
// with the given base URL and prefix table. The reader is not closed.
func ReadGraph(r TripleReader, baseURL string, prefixes PrefixMappings) (*Graph, error) {
	var triples []Triple
	for {
		t, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		triples = append(triples, t)
	}
	return NewGraphFromTriples(triples, baseURL, prefixes), nil
}

// WriteGraph streams every stored triple to w in the graph's enumeration
// order and flushes. The writer is not closed.
func WriteGraph(g *Graph, w TripleWriter) error {
	for _, t := range g.Triples() {
		if err := w.Write(t); err != nil {
			return err
		}
	}
	return w.Flush()
}

// EachTriple invokes fn for every stored triple in enumeration order,
// stopping at the first error, which is returned.
func (g *Graph) EachTriple(fn TripleHandler) error {
	for _, t := range g.Triples() {
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}
