//go:build !linux

package clientdetect

import "runtime"

// hostPlatform returns the host description recorded in reports.
func hostPlatform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
