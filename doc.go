// Package clientdetect provides capability detection for client
// (browser-like) environments.
//
// A [Detector] holds an ordered collection of named detections, executes
// every one of them exactly once during [Detector.Run], and exposes
// read-only queries afterwards. Detections probe the environment only
// through injected collaborators ([Environment], [Storage], [Node]), so
// instances are isolated and results are reproducible. The package reports
// capability; it never supplies missing behavior.
//
// # Quick Start
//
// Build an environment, register the built-in detection set, and run:
//
//	env := clientdetect.NewMapEnvironment()
//	env.AddProperty("ontouchstart", "webkitRequestAnimationFrame")
//
//	d := clientdetect.New(clientdetect.WithRoot(root), clientdetect.WithClassPrefix("js-"))
//	clientdetect.RegisterDefaults(d, env)
//	d.Run()
//
//	if ok, known := d.Support("touch"); known && ok {
//	    // touch input available
//	}
//
// # Custom Detections
//
// A probe is either a [Literal] outcome or a [Computed] function evaluated
// once during the run. Detections registered with [Classed] contribute a
// class token (the capability name when supported, "no-" + name otherwise)
// that Run writes to the root node's class attribute:
//
//	d.Register("widget", clientdetect.Literal(true), clientdetect.Classed())
//	d.Register("gadget", clientdetect.Computed(func() (bool, error) {
//	    return env.Has("gadget"), nil
//	}))
//
// A probe that returns an error or panics marks only its own capability
// unsupported; the run always completes.
//
// # Requirement Gate
//
// Validate that required capabilities are present after the run:
//
//	if err := d.Require("localstorage", "touch"); err != nil {
//	    var ce *clientdetect.CapabilityError
//	    if errors.As(err, &ce) {
//	        log.Fatalf("client not ready: %s — %s", ce.Capability, ce.Reason)
//	    }
//	    log.Fatal(err)
//	}
//
// # Vendor Prefixes
//
// [Detector.ResolveProperty] scans candidate property names in priority
// order (vendor-prefixed variants first, the standard name last) and
// records the first one present. [Detector.Prefixed] returns the recorded
// mapping:
//
//	if name, ok := d.Prefixed("requestanimationframe"); ok {
//	    fmt.Println("resolved as", name) // e.g. webkitRequestAnimationFrame
//	}
//
// # Types
//
// [Test] describes a single registered detection. [Report] is a frozen
// snapshot of a detector's outcome suitable for rendering or serializing.
// [Profile] is a recorded environment description loadable from YAML, used
// by the client-detect CLI to replay detections against captured clients.
package clientdetect
