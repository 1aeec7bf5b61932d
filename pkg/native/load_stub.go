//go:build !darwin && !linux && !freebsd

package native

import "fmt"

// load reports that no native backend exists for this platform.
// Tests can still run everywhere through SetLibrary.
func load() (Library, error) {
	return nil, fmt.Errorf("iup: loading libiup is not supported on this platform")
}
