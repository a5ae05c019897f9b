// Package core implements the device-class dispatch layer of the slave:
// the uniform operation contract, the fixed class registry, the exchange
// dispatcher and the CRC completion handshake that seals every exchange.
package core

import (
	"errors"

	"owslave/protocol"
)

// Errors a device class may return from WriteCheck. The dispatcher maps
// any rejection to a single status byte on the wire; the distinction is
// for local callers and tests.
var (
	ErrLength   = errors.New("write length not accepted")
	ErrChannel  = errors.New("no such channel")
	ErrValue    = errors.New("invalid write value")
	ErrReadOnly = errors.New("class is read-only")
)

// DeviceClass is the operation contract every compiled-in device class
// implements. The bus master reaches a class only through the Registry;
// all seven operations must be usable on every registered class.
//
// The ordering obligations rest with the caller: ReadLen, Read, ReadDone
// in that order for reads, WriteCheck immediately before Write for
// writes. The contract does not police them.
type DeviceClass interface {
	// Init performs one-time setup. It is called once, before any other
	// operation on the class.
	Init()

	// Poll runs one cooperative work slice per scheduler tick. It must
	// not block.
	Poll()

	// ReadLen reports how many bytes the next Read on ch will produce.
	// The result never exceeds the class's registered maximum size.
	ReadLen(ch uint8) uint8

	// Read fills buf with exactly ReadLen(ch) bytes. Read must not
	// block: a class with no fresh data produces its best available
	// value instead of waiting.
	Read(ch uint8, buf *protocol.MsgBuffer)

	// ReadDone acknowledges that the value produced by Read was
	// consumed. Calling it after an abandoned Read is harmless and
	// leaves the class ready for the next ReadLen/Read cycle.
	ReadDone(ch uint8)

	// WriteCheck validates a proposed write before anything is
	// committed. A nil result accepts the write; any error rejects it
	// and Write must not be called for the same input.
	WriteCheck(ch uint8, data []byte) error

	// Write commits a write previously accepted by WriteCheck.
	Write(ch uint8, data []byte)
}
