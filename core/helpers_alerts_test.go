//go:build !noalerts

package core

// testEntry composes a registry entry in the alert-enabled shape.
func testEntry(c *fakeClass, size uint8) Entry {
	return Entry{Class: c, Alert: c, MaxSize: size}
}
