package rdf

import (
	"errors"
	"testing"
)

func TestTermKindsAndStrings(t *testing.T) {
	iri := IRI{Value: "http://example.org/s"}
	if iri.Kind() != TermIRI {
		t.Fatalf("expected IRI kind")
	}
	if iri.String() != "http://example.org/s" {
		t.Fatalf("unexpected IRI string: %s", iri.String())
	}

	blank := BlankNode{ID: "b1"}
	if blank.Kind() != TermBlankNode {
		t.Fatalf("expected blank node kind")
	}
	if blank.String() != "_:b1" {
		t.Fatalf("unexpected blank node string: %s", blank.String())
	}

	litPlain := Literal{Lexical: "plain"}
	if litPlain.Kind() != TermLiteral {
		t.Fatalf("expected literal kind")
	}
	if litPlain.String() != "\"plain\"" {
		t.Fatalf("unexpected literal string: %s", litPlain.String())
	}

	litLang := Literal{Lexical: "hi", Lang: "en"}
	if litLang.String() != "\"hi\"@en" {
		t.Fatalf("unexpected lang literal: %s", litLang.String())
	}

	litDT := Literal{Lexical: "1", Datatype: IRI{Value: XSDInteger}}
	if litDT.String() != "\"1\"^^<http://www.w3.org/2001/XMLSchema#integer>" {
		t.Fatalf("unexpected datatype literal: %s", litDT.String())
	}
}

func TestCompareTermsTotalOrder(t *testing.T) {
	// Ascending: IRIs, then blank nodes, then literals; within a kind,
	// payload order.
	ordered := []Term{
		IRI{Value: "http://example.org/a"},
		IRI{Value: "http://example.org/b"},
		BlankNode{ID: "a"},
		BlankNode{ID: "b"},
		Literal{Lexical: "x"},
		Literal{Lexical: "x", Lang: "en"},
		Literal{Lexical: "x", Lang: "en", Datatype: IRI{Value: XSDString}},
		Literal{Lexical: "y"},
	}
	for i := range ordered {
		for j := range ordered {
			got := CompareTerms(ordered[i], ordered[j])
			switch {
			case i < j && got >= 0:
				t.Fatalf("expected %v < %v, got %d", ordered[i], ordered[j], got)
			case i > j && got <= 0:
				t.Fatalf("expected %v > %v, got %d", ordered[i], ordered[j], got)
			case i == j && got != 0:
				t.Fatalf("expected %v == %v, got %d", ordered[i], ordered[j], got)
			}
		}
	}

	if CompareTerms(nil, IRI{Value: "x"}) >= 0 {
		t.Fatal("nil must sort before any term")
	}
	if CompareTerms(nil, nil) != 0 {
		t.Fatal("nil must equal nil")
	}
}

func TestCompareTriples(t *testing.T) {
	s := IRI{Value: "http://example.org/s"}
	p := IRI{Value: "http://example.org/p"}
	q := IRI{Value: "http://example.org/q"}

	a := Triple{S: s, P: p, O: Literal{Lexical: "1"}}
	b := Triple{S: s, P: p, O: Literal{Lexical: "2"}}
	c := Triple{S: s, P: q, O: Literal{Lexical: "1"}}

	if CompareTriples(a, a) != 0 {
		t.Fatal("triple must equal itself")
	}
	if CompareTriples(a, b) >= 0 {
		t.Fatal("object order must break ties")
	}
	if CompareTriples(b, c) >= 0 {
		t.Fatal("predicate order must dominate object order")
	}
}

func TestNewTripleValidation(t *testing.T) {
	s := IRI{Value: "http://example.org/s"}
	p := IRI{Value: "http://example.org/p"}
	o := Literal{Lexical: "v"}

	if _, err := NewTriple(s, p, o); err != nil {
		t.Fatalf("valid triple rejected: %v", err)
	}
	if _, err := NewTriple(BlankNode{ID: "b"}, p, s); err != nil {
		t.Fatalf("blank subject rejected: %v", err)
	}

	if _, err := NewTriple(o, p, s); !errors.Is(err, ErrInvalidSubject) {
		t.Fatalf("expected ErrInvalidSubject, got %v", err)
	}
	if _, err := NewTriple(nil, p, s); !errors.Is(err, ErrInvalidSubject) {
		t.Fatalf("expected ErrInvalidSubject for nil subject, got %v", err)
	}
	if _, err := NewTriple(s, IRI{}, o); !errors.Is(err, ErrInvalidPredicate) {
		t.Fatalf("expected ErrInvalidPredicate, got %v", err)
	}
	if _, err := NewTriple(s, p, nil); !errors.Is(err, ErrInvalidObject) {
		t.Fatalf("expected ErrInvalidObject, got %v", err)
	}
}

func TestCanonicalTriples(t *testing.T) {
	p := IRI{Value: "http://example.org/p"}
	t1 := Triple{S: IRI{Value: "http://example.org/b"}, P: p, O: Literal{Lexical: "1"}}
	t2 := Triple{S: IRI{Value: "http://example.org/a"}, P: p, O: Literal{Lexical: "1"}}

	got := canonicalTriples([]Triple{t1, t2, t1, t2, t1})
	if len(got) != 2 {
		t.Fatalf("expected 2 triples after dedup, got %d", len(got))
	}
	if CompareTriples(got[0], t2) != 0 || CompareTriples(got[1], t1) != 0 {
		t.Fatalf("unexpected canonical order: %v", got)
	}
}
