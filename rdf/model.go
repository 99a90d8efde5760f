package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// TermKind identifies RDF term types. The declaration order doubles as the
// cross-variant sort order used by CompareTerms.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// Triple is an RDF triple. The predicate is typed IRI because only an IRI may
// appear in predicate position.
type Triple struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}

// String returns the triple in subject-predicate-object order.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s", t.S, t.P.Value, t.O)
}

// NewTriple validates and builds a triple. The subject must be an IRI or
// blank node, the predicate a non-empty IRI, and the object any non-nil term.
// Graphs assume every triple they receive already passed this check.
func NewTriple(s Term, p IRI, o Term) (Triple, error) {
	if s == nil || s.Kind() == TermLiteral {
		return Triple{}, ErrInvalidSubject
	}
	if p.Value == "" {
		return Triple{}, ErrInvalidPredicate
	}
	if o == nil {
		return Triple{}, ErrInvalidObject
	}
	return Triple{S: s, P: p, O: o}, nil
}

// CompareTerms imposes a total order over terms: first by TermKind, then by
// payload. Literals order by lexical form, then language tag, then datatype.
// A nil term sorts before every non-nil term.
func CompareTerms(a, b Term) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}
		return 1
	}
	switch av := a.(type) {
	case IRI:
		return strings.Compare(av.Value, b.(IRI).Value)
	case BlankNode:
		return strings.Compare(av.ID, b.(BlankNode).ID)
	case Literal:
		bv := b.(Literal)
		if c := strings.Compare(av.Lexical, bv.Lexical); c != 0 {
			return c
		}
		if c := strings.Compare(av.Lang, bv.Lang); c != 0 {
			return c
		}
		return strings.Compare(av.Datatype.Value, bv.Datatype.Value)
	default:
		return 0
	}
}

// CompareTriples orders triples by subject, then predicate, then object.
func CompareTriples(a, b Triple) int {
	if c := CompareTerms(a.S, b.S); c != 0 {
		return c
	}
	if c := strings.Compare(a.P.Value, b.P.Value); c != 0 {
		return c
	}
	return CompareTerms(a.O, b.O)
}

// sortTriples sorts triples in place into the total order.
func sortTriples(triples []Triple) {
	sort.Slice(triples, func(i, j int) bool {
		return CompareTriples(triples[i], triples[j]) < 0
	})
}

// canonicalTriples sorts a copy of triples into the total order and drops
// duplicates.
func canonicalTriples(triples []Triple) []Triple {
	out := make([]Triple, len(triples))
	copy(out, triples)
	sortTriples(out)
	n := 0
	for i, t := range out {
		if i > 0 && CompareTriples(out[n-1], t) == 0 {
			continue
		}
		out[n] = t
		n++
	}
	return out[:n]
}
