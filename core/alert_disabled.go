//go:build noalerts

package core

// Entry pairs a device class with its per-class transfer limit. The
// alert subsystem is compiled out in this build; entries carry no alert
// member and no alert type exists anywhere in the package.
type Entry struct {
	Class   DeviceClass
	MaxSize uint8
}

func validateEntry(id int, e Entry) error { return nil }
