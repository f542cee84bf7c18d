package clientdetect

// Canonical names of the built-in detection set.
const (
	DetectionLocalStorage          = "localstorage"
	DetectionSessionStorage        = "sessionstorage"
	DetectionRequestAnimationFrame = "requestanimationframe"
	DetectionFullscreen            = "fullscreen"
	DetectionCSSCalc               = "csscalc"
	DetectionTouch                 = "touch"
	DetectionStandalone            = "standalone"
)

// Sentinel key written and removed by the storage probes.
const storageProbeKey = "client-detect"

// DefaultDetectionNames returns the canonical names of the built-in
// detection set, in registration order.
func DefaultDetectionNames() []string {
	return []string{
		DetectionLocalStorage,
		DetectionSessionStorage,
		DetectionRequestAnimationFrame,
		DetectionFullscreen,
		DetectionCSSCalc,
		DetectionTouch,
		DetectionStandalone,
	}
}

// RegisterDefaults registers the built-in detection set against env.
// Storage probes tolerate failing storage areas: a restricted client
// marks only the affected capability unsupported.
func RegisterDefaults(d *Detector, env Environment) {
	d.Register(DetectionLocalStorage, storageProbe(env.LocalStorage), Classed())
	d.Register(DetectionSessionStorage, storageProbe(env.SessionStorage), Classed())
	d.Register(DetectionRequestAnimationFrame, Computed(func() (bool, error) {
		return d.ResolveProperty(env, DetectionRequestAnimationFrame, PrefixedCandidates("requestAnimationFrame")), nil
	}), Classed())
	d.Register(DetectionFullscreen, Computed(func() (bool, error) {
		return d.ResolveProperty(env, DetectionFullscreen, PrefixedCandidates("requestFullscreen")), nil
	}), Classed())
	d.Register(DetectionCSSCalc, Computed(func() (bool, error) {
		return env.StyleSupports("width", "calc(10px)"), nil
	}))
	d.Register(DetectionTouch, Computed(func() (bool, error) {
		return env.Has("ontouchstart"), nil
	}), Classed())
	d.Register(DetectionStandalone, Computed(func() (bool, error) {
		return env.Has("standalone"), nil
	}))
}

// storageProbe probes a storage area by writing and removing a sentinel
// key. A nil storage or any storage error means unsupported.
func storageProbe(area func() Storage) Computed {
	return func() (bool, error) {
		s := area()
		if s == nil {
			return false, nil
		}
		if err := s.Set(storageProbeKey, storageProbeKey); err != nil {
			return false, err
		}
		if err := s.Remove(storageProbeKey); err != nil {
			return false, err
		}
		return true, nil
	}
}
