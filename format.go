package clientdetect

import (
	"fmt"
	"slices"
	"strings"
)

// String returns a human-readable summary of the report.
func (r *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Platform: %s\n", r.Platform)
	b.WriteString("\n")

	b.WriteString("Capabilities:\n")
	for _, name := range sortedKeys(r.Results) {
		writeSupport(&b, "  "+name, r.Results[name])
	}

	if len(r.Vendor) > 0 {
		b.WriteString("\n")
		b.WriteString("Vendor Properties:\n")
		for _, name := range sortedKeys(r.Vendor) {
			fmt.Fprintf(&b, "  %s: %s\n", name, r.Vendor[name])
		}
	}

	if r.ClassAttribute != "" {
		b.WriteString("\n")
		b.WriteString("Class Attribute:\n")
		fmt.Fprintf(&b, "  %s\n", r.ClassAttribute)
	}

	return b.String()
}

func writeSupport(b *strings.Builder, name string, supported bool) {
	status := "no"
	if supported {
		status = "yes"
	}
	fmt.Fprintf(b, "%s: %s\n", name, status)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
