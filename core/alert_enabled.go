//go:build !noalerts

package core

import (
	"errors"

	"owslave/protocol"
)

// AlertReporter is the out-of-band alert capability. It exists in the
// build only when the alert subsystem is compiled in; a `noalerts` build
// has no trace of it in the contract or the registry.
type AlertReporter interface {
	// AlertCheck reports whether the class has a pending alert
	// condition. It is polled across all classes, independent of any
	// channel-directed exchange.
	AlertCheck() bool

	// AlertFill serializes the pending alert payload into buf. It is
	// only called after a positive AlertCheck.
	AlertFill(buf *protocol.MsgBuffer)
}

// Entry pairs a device class with its alert reporter and per-class
// transfer limit.
type Entry struct {
	Class   DeviceClass
	Alert   AlertReporter
	MaxSize uint8
}

func validateEntry(id int, e Entry) error {
	if e.Alert == nil {
		return errors.New("registry: class " + itoa(id) + " missing alert reporter")
	}
	return nil
}

// ScanAlerts polls every class's alert condition in id order and calls
// fn for each positive one. The external alert poller drives this on its
// own schedule.
func (r *Registry) ScanAlerts(fn func(id uint8, a AlertReporter)) {
	for i := range r.entries {
		if r.entries[i].Alert.AlertCheck() {
			fn(uint8(i), r.entries[i].Alert)
		}
	}
}
