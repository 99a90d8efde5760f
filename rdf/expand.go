package rdf

import (
	"fmt"
	"net/url"
	"strings"
)

// ExpandName expands a prefixed name against an ordered prefix table.
//
// The short name "a" always expands to RDFType, regardless of the table.
// Otherwise the table is scanned in order and the first entry whose prefix,
// followed by a colon, literally prefixes text wins: the "prefix:" segment is
// replaced by the entry's namespace. Precedence is strictly first-match in
// table order, not longest-prefix match. If no entry matches, text is
// returned unchanged.
func ExpandName(pm PrefixMappings, text string) string {
	if text == "a" {
		return RDFType
	}
	for _, m := range pm {
		if strings.HasPrefix(text, m.Prefix+":") {
			return m.Namespace + text[len(m.Prefix)+1:]
		}
	}
	return text
}

// ExpandTerm expands prefixed names in IRI terms. Blank nodes and literals
// pass through unchanged.
func ExpandTerm(pm PrefixMappings, t Term) Term {
	if iri, ok := t.(IRI); ok {
		return IRI{Value: ExpandName(pm, iri.Value)}
	}
	return t
}

// ExpandTriple expands prefixed names in all three triple positions.
func ExpandTriple(pm PrefixMappings, t Triple) Triple {
	return Triple{
		S: ExpandTerm(pm, t.S),
		P: IRI{Value: ExpandName(pm, t.P.Value)},
		O: ExpandTerm(pm, t.O),
	}
}

// resolveIRIRef resolves reference against base according to RFC 3986. An
// absolute reference is returned as-is. The base must parse as an absolute
// URL; failures are reported as *ResolveError.
func resolveIRIRef(base, reference string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", &ResolveError{Reference: reference, Err: fmt.Errorf("invalid base URL %q: %w", base, err)}
	}
	if !baseURL.IsAbs() {
		return "", &ResolveError{Reference: reference, Err: fmt.Errorf("base URL %q is not absolute", base)}
	}
	refURL, err := url.Parse(reference)
	if err != nil {
		return "", &ResolveError{Reference: reference, Err: err}
	}
	if refURL.IsAbs() {
		return reference, nil
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// ResolveTerm resolves the IRI reference held by an IRI term against base.
// An empty base means no absolutization: the term is returned unchanged.
// Blank nodes and literals pass through unchanged.
func ResolveTerm(base string, t Term) (Term, error) {
	if base == "" {
		return t, nil
	}
	iri, ok := t.(IRI)
	if !ok {
		return t, nil
	}
	resolved, err := resolveIRIRef(base, iri.Value)
	if err != nil {
		return nil, err
	}
	return IRI{Value: resolved}, nil
}

// ResolveTriple resolves IRI references in all three triple positions
// against base. An empty base returns t unchanged.
func ResolveTriple(base string, t Triple) (Triple, error) {
	if base == "" {
		return t, nil
	}
	s, err := ResolveTerm(base, t.S)
	if err != nil {
		return Triple{}, err
	}
	p, err := resolveIRIRef(base, t.P.Value)
	if err != nil {
		return Triple{}, err
	}
	o, err := ResolveTerm(base, t.O)
	if err != nil {
		return Triple{}, err
	}
	return Triple{S: s, P: IRI{Value: p}, O: o}, nil
}

// ExpandTriples returns the graph's triples in fully normalized form: every
// triple first has prefixed names expanded with the graph's prefix table,
// then has IRI references resolved against the graph's base URL. This is the
// required pre-step before comparing graphs built with different prefix
// tables or base URLs.
//
// A graph with no base URL performs no absolutization and never returns an
// error from this method.
func (g *Graph) ExpandTriples() ([]Triple, error) {
	triples := g.Triples()
	out := make([]Triple, 0, len(triples))
	for _, t := range triples {
		expanded := ExpandTriple(g.prefixes, t)
		resolved, err := ResolveTriple(g.baseURL, expanded)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}
