package clientdetect

import "fmt"

// Probe determines whether a capability is supported.
//
// Built-in implementations include:
//   - [Literal]
//   - [Computed]
type Probe interface {
	isProbe()
}

// Literal is a probe with a fixed outcome, for capabilities known without
// inspecting the environment.
type Literal bool

// Computed is a probe evaluated exactly once during [Detector.Run].
// A non-nil error marks the capability unsupported; it is never surfaced
// to the caller of Run.
type Computed func() (bool, error)

func (Literal) isProbe()  {}
func (Computed) isProbe() {}

// Test describes a single registered detection. It is created by
// [Detector.Register] and immutable afterwards.
type Test struct {
	// Name is the canonical (lowercase) capability name.
	Name string
	// Probe determines the outcome.
	Probe Probe
	// Classed marks the detection for class token emission.
	Classed bool
}

// CapabilityError represents an error when a required client capability
// is unavailable.
type CapabilityError struct {
	Capability string
	Reason     string
	Err        error
}

func (e *CapabilityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("capability %s: %s: %v", e.Capability, e.Reason, e.Err)
	}
	return fmt.Sprintf("capability %s: %s", e.Capability, e.Reason)
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}

// Report is a frozen snapshot of a detector's outcome.
type Report struct {
	// Results maps canonical capability names to detection outcomes.
	Results map[string]bool `json:"results"`
	// Vendor maps capability names to resolved vendor property names.
	Vendor map[string]string `json:"vendor,omitempty"`
	// ClassTokens lists the emitted class tokens in emission order.
	ClassTokens []string `json:"class_tokens,omitempty"`
	// ClassAttribute is the exact string written to the root node.
	ClassAttribute string `json:"class_attribute,omitempty"`
	// Platform describes the host the detection ran on.
	Platform string `json:"platform"`
	// Version is the library version that produced the report.
	Version string `json:"version"`
}
