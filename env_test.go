package clientdetect

import (
	"errors"
	"testing"
)

func TestMapEnvironment(t *testing.T) {
	env := NewMapEnvironment()
	env.AddProperty("ontouchstart", "standalone")
	env.AddStyle("width", "calc(10px)")

	if !env.Has("ontouchstart") || !env.Has("standalone") {
		t.Error("added properties should be present")
	}
	if env.Has("requestAnimationFrame") {
		t.Error("unadded property should be absent")
	}
	if !env.StyleSupports("width", "calc(10px)") {
		t.Error("added style pair should be supported")
	}
	if env.StyleSupports("height", "calc(10px)") {
		t.Error("style support is keyed by property and value")
	}
	if env.LocalStorage() == nil || env.SessionStorage() == nil {
		t.Error("a fresh environment has working storage areas")
	}
}

func TestMemStorage(t *testing.T) {
	s := NewMemStorage()

	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, ok := s.Get("k"); !ok || v != "v" {
		t.Errorf("Get(k) = (%q, %v), want (v, true)", v, ok)
	}

	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok := s.Get("k"); ok {
		t.Error("removed key should be absent")
	}

	if err := s.Remove("never-set"); err != nil {
		t.Errorf("Remove() of an absent key should not fail: %v", err)
	}
}

func TestFailingStorage(t *testing.T) {
	t.Run("default error", func(t *testing.T) {
		s := FailingStorage{}
		if err := s.Set("k", "v"); !errors.Is(err, ErrStorageRestricted) {
			t.Errorf("Set() error = %v, want ErrStorageRestricted", err)
		}
		if err := s.Remove("k"); !errors.Is(err, ErrStorageRestricted) {
			t.Errorf("Remove() error = %v, want ErrStorageRestricted", err)
		}
	})

	t.Run("custom error", func(t *testing.T) {
		quota := errors.New("quota exceeded")
		s := FailingStorage{Err: quota}
		if err := s.Set("k", "v"); !errors.Is(err, quota) {
			t.Errorf("Set() error = %v, want custom error", err)
		}
	})
}
