package clientdetect

import (
	"errors"
	"fmt"
	"testing"
)

func TestCapabilityError(t *testing.T) {
	t.Run("without underlying error", func(t *testing.T) {
		ce := &CapabilityError{Capability: "localstorage", Reason: "not supported by client environment"}
		want := "capability localstorage: not supported by client environment"
		if got := ce.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if ce.Unwrap() != nil {
			t.Error("Unwrap() should be nil")
		}
	})

	t.Run("with underlying error", func(t *testing.T) {
		inner := errors.New("quota exceeded")
		ce := &CapabilityError{Capability: "localstorage", Reason: "probe failed", Err: inner}
		want := "capability localstorage: probe failed: quota exceeded"
		if got := ce.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !errors.Is(ce, inner) {
			t.Error("errors.Is should match underlying error")
		}
	})

	t.Run("errors.As", func(t *testing.T) {
		ce := &CapabilityError{Capability: "touch", Reason: "not supported"}
		err := fmt.Errorf("gate failed: %w", ce)

		var target *CapabilityError
		if !errors.As(err, &target) {
			t.Fatal("errors.As should match CapabilityError")
		}
		if target.Capability != "touch" {
			t.Errorf("Capability = %q, want %q", target.Capability, "touch")
		}
	})
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		probe Probe
		want  bool
	}{
		{"literal true", Literal(true), true},
		{"literal false", Literal(false), false},
		{"computed true", Computed(func() (bool, error) { return true, nil }), true},
		{"computed false", Computed(func() (bool, error) { return false, nil }), false},
		{"computed error", Computed(func() (bool, error) { return true, errors.New("boom") }), false},
		{"computed panic", Computed(func() (bool, error) { panic("boom") }), false},
		{"nil probe", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evaluate(tt.probe); got != tt.want {
				t.Errorf("evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}
