// Package protocol implements the wire-level primitives of the 1-wire
// slave bus: the CRC16 used by the completion handshake, the bounded
// message window shared by every transfer, and the byte-level Wire
// abstraction the dispatcher talks through.
package protocol

// Version represents the owslave firmware version
const Version = "0.1.0"

// MaxMessage is the capacity of the message window. No single read or
// write transfer may exceed it, for any device class.
const MaxMessage = 32

// Exchange opcodes sent by the bus master.
const (
	OpRead  = 0x01
	OpWrite = 0x02
)

// Status bytes sent by the slave before the payload phase of an exchange.
const (
	StatusOK        = 0x00 // exchange proceeds
	StatusReject    = 0x01 // write rejected by the device class
	StatusBadClass  = 0x02 // no such device class
	StatusBadLength = 0x03 // length exceeds the message window
)
