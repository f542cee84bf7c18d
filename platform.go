//go:build linux

package clientdetect

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// hostPlatform returns the host description recorded in reports,
// e.g. "linux/amd64 6.1.0-13-generic".
func hostPlatform() string {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return runtime.GOOS + "/" + runtime.GOARCH
	}
	return runtime.GOOS + "/" + runtime.GOARCH + " " + unix.ByteSliceToString(uname.Release[:])
}
