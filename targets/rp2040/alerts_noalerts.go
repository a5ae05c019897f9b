//go:build rp2040 && noalerts

package main

import "owslave/devices"

// Alert scanning is compiled out; the announce line only carries the
// boot presence pulse.
func announceAlerts(tbl *devices.Table, presence *presencePulse) {}
