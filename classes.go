package clientdetect

import "strings"

// ClassAttribute returns the class attribute value Run writes to the root
// node: every emitted token prefixed with the configured class prefix,
// joined by single spaces. Setting it on a node replaces, not merges, any
// pre-existing class attribute.
func (d *Detector) ClassAttribute() string {
	return joinClasses(d.tokens, d.classPrefix)
}

func joinClasses(tokens []string, prefix string) string {
	if prefix == "" {
		return strings.Join(tokens, " ")
	}
	prefixed := make([]string, len(tokens))
	for i, token := range tokens {
		prefixed[i] = prefix + token
	}
	return strings.Join(prefixed, " ")
}
