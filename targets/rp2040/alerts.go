//go:build rp2040 && !noalerts

package main

import (
	"owslave/core"
	"owslave/devices"
)

var alertsPending bool

// announceAlerts pulses the announce line when a device class starts
// reporting an alert. The pulse fires on the idle-to-pending edge only;
// the master acknowledges by reading the class, which clears the latch.
func announceAlerts(tbl *devices.Table, presence *presencePulse) {
	pending := false
	tbl.Registry.ScanAlerts(func(id uint8, a core.AlertReporter) {
		pending = true
	})

	if pending && !alertsPending {
		presence.Pulse(60)
	}
	alertsPending = pending
}
