package clientdetect

import (
	"maps"
	"slices"
	"strings"
)

// Detector holds an ordered collection of pending detections and, after
// [Detector.Run], their frozen results. Instances are independent; create
// one per target environment. A Detector is not safe for concurrent use:
// registration and the run phase belong to a single logical thread of
// control.
type Detector struct {
	pending []*Test
	results map[string]bool
	vendor  map[string]string
	tokens  []string

	root        Node
	classPrefix string

	frozen bool
}

// Option configures a [Detector].
type Option func(*Detector)

// WithRoot sets the node whose class attribute Run replaces with the
// emitted class tokens.
func WithRoot(root Node) Option {
	return func(d *Detector) {
		d.root = root
	}
}

// WithClassPrefix prepends prefix to every emitted class token.
func WithClassPrefix(prefix string) Option {
	return func(d *Detector) {
		d.classPrefix = prefix
	}
}

// New creates a Detector with no registered detections.
func New(opts ...Option) *Detector {
	d := &Detector{
		results: make(map[string]bool),
		vendor:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// TestOption configures a registered detection.
type TestOption func(*Test)

// Classed marks the detection for class token emission during Run.
func Classed() TestOption {
	return func(t *Test) {
		t.Classed = true
	}
}

// Register appends a detection to the pending list and returns its
// descriptor. The name is lowercased for canonical storage. Duplicate
// names are accepted; see [Detector.Run] for how duplicates resolve.
// Registering after the run has executed returns nil.
func (d *Detector) Register(name string, probe Probe, opts ...TestOption) *Test {
	if d.frozen {
		return nil
	}
	t := &Test{Name: strings.ToLower(name), Probe: probe}
	for _, opt := range opts {
		opt(t)
	}
	d.pending = append(d.pending, t)
	return t
}

// Run executes every pending detection exactly once and freezes the
// detector. Detections run newest-first, so when two registrations share
// a canonical name the first-registered one executes last and its result
// wins. Classed detections contribute a class token during the same pass:
// the capability name when supported, "no-" + name otherwise. When a root
// node was configured, the assembled token list replaces its class
// attribute.
//
// Run is a one-shot transition. Later calls are no-ops that return the
// frozen results without re-executing probes or re-emitting class tokens.
// The returned map is a copy.
func (d *Detector) Run() map[string]bool {
	if !d.frozen {
		for i := len(d.pending) - 1; i >= 0; i-- {
			t := d.pending[i]
			supported := evaluate(t.Probe)
			d.results[t.Name] = supported
			if t.Classed {
				token := t.Name
				if !supported {
					token = "no-" + t.Name
				}
				d.tokens = append(d.tokens, token)
			}
		}
		d.pending = nil
		d.frozen = true
		if d.root != nil {
			d.root.SetClassAttribute(d.ClassAttribute())
		}
	}
	return maps.Clone(d.results)
}

// evaluate resolves a probe outcome. Errors and panics downgrade to
// unsupported so a single broken probe cannot abort the run.
func evaluate(p Probe) (supported bool) {
	defer func() {
		if recover() != nil {
			supported = false
		}
	}()

	switch probe := p.(type) {
	case Literal:
		return bool(probe)
	case Computed:
		ok, err := probe()
		if err != nil {
			return false
		}
		return ok
	default:
		return false
	}
}

// List returns the canonical names of all executed detections, in no
// particular order.
func (d *Detector) List() []string {
	names := make([]string, 0, len(d.results))
	for name := range d.results {
		names = append(names, name)
	}
	return names
}

// Support reports the detection result for name. Lookup is
// case-insensitive. The second value is false when the name was never
// registered or the run has not executed yet.
func (d *Detector) Support(name string) (bool, bool) {
	supported, ok := d.results[strings.ToLower(name)]
	return supported, ok
}

// Prefixed returns the vendor-specific property name resolved for a
// capability, if one was recorded. Lookup is case-insensitive.
func (d *Detector) Prefixed(name string) (string, bool) {
	property, ok := d.vendor[strings.ToLower(name)]
	return property, ok
}

// ClassTokens returns the class tokens produced by Run, in emission order.
func (d *Detector) ClassTokens() []string {
	return slices.Clone(d.tokens)
}

// Require validates that every named capability was detected as supported
// and returns a *[CapabilityError] for the first unsatisfied name, or nil
// if all are met. It never triggers a run implicitly.
func (d *Detector) Require(names ...string) error {
	for _, name := range names {
		canonical := strings.ToLower(name)
		supported, known := d.Support(canonical)
		if !known {
			reason := "unknown capability"
			if !d.frozen {
				reason = "not detected yet; call Run first"
			}
			return &CapabilityError{Capability: canonical, Reason: reason}
		}
		if !supported {
			return &CapabilityError{Capability: canonical, Reason: "not supported by client environment"}
		}
	}
	return nil
}

// Report returns a snapshot of the detector's state. Maps and slices are
// copies; mutating the report does not affect the detector.
func (d *Detector) Report() *Report {
	return &Report{
		Results:        maps.Clone(d.results),
		Vendor:         maps.Clone(d.vendor),
		ClassTokens:    slices.Clone(d.tokens),
		ClassAttribute: d.ClassAttribute(),
		Platform:       hostPlatform(),
		Version:        Version,
	}
}
