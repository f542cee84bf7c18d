package clientdetect

import "strings"

// DefaultVendorPrefixes lists engine prefixes in resolution priority
// order, most specific first.
var DefaultVendorPrefixes = []string{"webkit", "moz", "o", "ms"}

// PrefixedCandidates builds the candidate list for a standard property
// name: every vendor-prefixed variant first, the standard name last.
// This is the ordering [Detector.ResolveProperty] expects.
func PrefixedCandidates(standard string) []string {
	candidates := make([]string, 0, len(DefaultVendorPrefixes)+1)
	for _, prefix := range DefaultVendorPrefixes {
		candidates = append(candidates, prefix+capitalize(standard))
	}
	return append(candidates, standard)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ResolveProperty scans candidates in the given order and records the
// first name present on target as the resolved property for capability,
// stopping immediately. Candidates must be ordered prefixed-first with
// the standard name last, so a vendor variant wins over the standard name
// when both exist. It returns false and records no mapping when no
// candidate is present.
func (d *Detector) ResolveProperty(target PropertyHolder, capability string, candidates []string) bool {
	for _, candidate := range candidates {
		if target.Has(candidate) {
			d.vendor[strings.ToLower(capability)] = candidate
			return true
		}
	}
	return false
}
