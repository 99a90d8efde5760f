package rdf

// Isomorphic reports whether two graphs state the same facts, tolerating
// differences in blank node identifiers. Both graphs are normalized with
// ExpandTriples, deduplicated and sorted into the triple total order, then
// compared position by position: aligned triples match when their predicates
// are identical and each of subject and object is either exactly equal or
// blank on both sides.
//
// Because each side is sorted independently, renaming a blank node so that it
// changes its sort position relative to other triples can defeat the
// positional alignment and report false for equivalent graphs. Callers that
// only care about shape can use GraphIsomorphic, which searches for a real
// vertex bijection.
//
// The only error source is normalization: a graph with no base URL cannot
// fail.
func Isomorphic(a, b *Graph) (bool, error) {
	ta, err := a.ExpandTriples()
	if err != nil {
		return false, err
	}
	tb, err := b.ExpandTriples()
	if err != nil {
		return false, err
	}
	ta = canonicalTriples(ta)
	tb = canonicalTriples(tb)
	if len(ta) != len(tb) {
		return false, nil
	}
	for i := range ta {
		if !triplesMatch(ta[i], tb[i]) {
			return false, nil
		}
	}
	return true, nil
}

// triplesMatch reports whether two normalized triples are equal up to blank
// node identity.
func triplesMatch(a, b Triple) bool {
	if a.P != b.P {
		return false
	}
	return termsMatch(a.S, b.S) && termsMatch(a.O, b.O)
}

func termsMatch(a, b Term) bool {
	if a.Kind() == TermBlankNode && b.Kind() == TermBlankNode {
		return true
	}
	return a == b
}
