package clientdetect

import (
	"reflect"
	"slices"
	"strings"
	"testing"
)

// capableEnvironment models a fully equipped client.
func capableEnvironment() *MapEnvironment {
	env := NewMapEnvironment()
	env.AddProperty("webkitRequestAnimationFrame", "requestFullscreen", "ontouchstart", "standalone")
	env.AddStyle("width", "calc(10px)")
	return env
}

func TestRegisterDefaults_CapableClient(t *testing.T) {
	d := New()
	RegisterDefaults(d, capableEnvironment())
	d.Run()

	for _, name := range DefaultDetectionNames() {
		got, known := d.Support(name)
		if !known {
			t.Errorf("Support(%s) missing", name)
			continue
		}
		if !got {
			t.Errorf("Support(%s) = false, want true", name)
		}
	}

	if got, _ := d.Prefixed(DetectionRequestAnimationFrame); got != "webkitRequestAnimationFrame" {
		t.Errorf("Prefixed(requestanimationframe) = %q, want %q", got, "webkitRequestAnimationFrame")
	}
	if got, _ := d.Prefixed(DetectionFullscreen); got != "requestFullscreen" {
		t.Errorf("Prefixed(fullscreen) = %q, want %q", got, "requestFullscreen")
	}
}

func TestRegisterDefaults_RestrictedClient(t *testing.T) {
	env := NewMapEnvironment()
	env.SetLocalStorage(FailingStorage{})
	env.SetSessionStorage(nil)

	d := New()
	RegisterDefaults(d, env)
	d.Run()

	for _, name := range DefaultDetectionNames() {
		got, known := d.Support(name)
		if !known {
			t.Errorf("Support(%s) missing", name)
			continue
		}
		if got {
			t.Errorf("Support(%s) = true, want false on a restricted client", name)
		}
	}

	if _, ok := d.Prefixed(DetectionRequestAnimationFrame); ok {
		t.Error("no vendor mapping should be recorded when nothing resolves")
	}

	tokens := d.ClassTokens()
	for _, want := range []string{"no-localstorage", "no-sessionstorage", "no-touch"} {
		if !slices.Contains(tokens, want) {
			t.Errorf("ClassTokens() = %v, missing %q", tokens, want)
		}
	}
}

func TestRegisterDefaults_ClassedSubset(t *testing.T) {
	d := New()
	RegisterDefaults(d, capableEnvironment())
	d.Run()

	tokens := d.ClassTokens()
	slices.Sort(tokens)
	want := []string{
		DetectionFullscreen,
		DetectionLocalStorage,
		DetectionRequestAnimationFrame,
		DetectionSessionStorage,
		DetectionTouch,
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("classed tokens = %v, want %v (csscalc and standalone stay out of the class list)", tokens, want)
	}
}

func TestStorageProbe_CleansUp(t *testing.T) {
	env := NewMapEnvironment()
	local := NewMemStorage()
	env.SetLocalStorage(local)

	d := New()
	RegisterDefaults(d, env)
	d.Run()

	if _, ok := local.Get(storageProbeKey); ok {
		t.Error("storage probe left its sentinel key behind")
	}
}

func TestDefaultDetectionNames(t *testing.T) {
	names := DefaultDetectionNames()
	if len(names) != 7 {
		t.Fatalf("got %d detections, want 7", len(names))
	}
	for _, name := range names {
		if name != strings.ToLower(name) {
			t.Errorf("detection name %q is not canonical lowercase", name)
		}
	}
}
