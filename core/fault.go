package core

import "errors"

// ErrCRCMismatch reports a failed completion handshake. It reaches the
// fault handler, never a normal error return.
var ErrCRCMismatch = errors.New("transmission CRC mismatch")

// FaultFunc escalates an unrecoverable bus fault. A mismatched CRC means
// the bus is in an inconsistent state that only a supervisor-level reset
// can resolve, so implementations must not return: on hardware this is a
// watchdog reset, in tests a panic the harness captures.
type FaultFunc func(err error)

// escalate hands err to the fault handler. If a misbehaved handler
// returns anyway, the panic below still keeps control off the normal
// path.
func escalate(fault FaultFunc, err error) {
	if fault != nil {
		fault(err)
	}
	panic(err)
}
