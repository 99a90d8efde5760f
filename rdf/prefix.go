package rdf

// PrefixMapping associates a short prefix token with a namespace IRI.
type PrefixMapping struct {
	// Prefix is the short token, without the trailing colon.
	Prefix string
	// Namespace is the namespace IRI the prefix stands for.
	Namespace string
}

// PrefixMappings is an ordered prefix table. Order is significant: during
// expansion the first matching entry wins, so earlier entries shadow later
// ones. Duplicate prefixes are allowed.
type PrefixMappings []PrefixMapping

// Lookup returns the namespace bound to prefix, honoring shadowing: the first
// entry with that prefix wins.
func (pm PrefixMappings) Lookup(prefix string) (string, bool) {
	for _, m := range pm {
		if m.Prefix == prefix {
			return m.Namespace, true
		}
	}
	return "", false
}

// IsValidPrefix reports whether s is usable as a prefix token. The empty
// string is valid (the default prefix); otherwise the token must start with a
// letter or underscore and continue with name characters.
func IsValidPrefix(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return true
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}
