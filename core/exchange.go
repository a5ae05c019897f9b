package core

import (
	"errors"

	"owslave/protocol"
)

// Dispatcher drives one bus exchange at a time: it resolves the class the
// master addressed, runs the read or write operation cycle against it and
// seals the exchange with the CRC completion handshake. Every byte that
// crosses the wire in either direction is folded into the running CRC.
//
// Execution is single-threaded and cooperative. ServeOne runs an exchange
// to completion; PollAll and alert scanning happen between exchanges,
// never during one.
type Dispatcher struct {
	reg   *Registry
	wire  protocol.Wire
	fault FaultFunc
	crc   uint16
}

// NewDispatcher creates a dispatcher over wire. fault is the abort
// collaborator invoked on a failed completion handshake; it must not
// return.
func NewDispatcher(reg *Registry, wire protocol.Wire, fault FaultFunc) *Dispatcher {
	return &Dispatcher{reg: reg, wire: wire, fault: fault}
}

func (d *Dispatcher) send(b byte) {
	d.wire.SendByte(b)
	d.crc = protocol.UpdateCRC16(d.crc, b)
}

func (d *Dispatcher) recv() byte {
	b := d.wire.RecvByte()
	d.crc = protocol.UpdateCRC16(d.crc, b)
	return b
}

// ServeOne handles a single exchange from opcode to completion. Locally
// rejected exchanges (unknown opcode or class, oversize or invalid
// writes) return an error after a status byte; the master is expected to
// abandon the exchange and start over. A failed completion handshake
// does not return here at all: it escalates through the fault handler.
func (d *Dispatcher) ServeOne() error {
	d.crc = 0

	op := d.recv()
	switch op {
	case protocol.OpRead:
		return d.serveRead()
	case protocol.OpWrite:
		return d.serveWrite()
	}
	return errors.New("exchange: unknown opcode " + itoa(int(op)))
}

func (d *Dispatcher) serveRead() error {
	class := d.recv()
	ch := d.recv()

	e, ok := d.reg.Lookup(class)
	if !ok {
		d.send(protocol.StatusBadClass)
		return errors.New("exchange: unknown class " + itoa(int(class)))
	}
	d.send(protocol.StatusOK)

	n := e.Class.ReadLen(ch)
	var buf protocol.MsgBuffer
	e.Class.Read(ch, &buf)

	d.send(n)
	payload := buf.Bytes()[:n]
	for _, b := range payload {
		d.send(b)
	}

	EndTransmission(d.wire, d.fault, d.crc)

	// Committed: the master has acknowledged the data.
	e.Class.ReadDone(ch)
	return nil
}

func (d *Dispatcher) serveWrite() error {
	class := d.recv()
	ch := d.recv()
	n := d.recv()

	if int(n) > protocol.MaxMessage {
		d.send(protocol.StatusBadLength)
		return errors.New("exchange: write length " + itoa(int(n)) + " exceeds message window")
	}

	// The payload is already on the wire; consume it before judging the
	// write so both ends stay in step.
	var buf protocol.MsgBuffer
	_ = buf.SetLen(int(n))
	payload := buf.Bytes()
	for i := range payload {
		payload[i] = d.recv()
	}

	e, ok := d.reg.Lookup(class)
	if !ok {
		d.send(protocol.StatusBadClass)
		return errors.New("exchange: unknown class " + itoa(int(class)))
	}
	if n > e.MaxSize {
		d.send(protocol.StatusReject)
		return ErrLength
	}
	if err := e.Class.WriteCheck(ch, payload); err != nil {
		d.send(protocol.StatusReject)
		return err
	}
	d.send(protocol.StatusOK)

	EndTransmission(d.wire, d.fault, d.crc)

	// Committed only now: a write that fails the handshake never lands.
	e.Class.Write(ch, payload)
	return nil
}

// EndTransmission closes an exchange: crc goes out on the wire and the
// master must answer with its bitwise complement. On a match the
// exchange is committed and control returns normally. On anything else
// the bus state is inconsistent and control does not come back: the
// fault handler takes over and is expected to reset the device.
func EndTransmission(w protocol.Wire, fault FaultFunc, crc uint16) {
	protocol.SendWord(w, crc)
	echo := protocol.RecvWord(w)
	if echo != ^crc {
		escalate(fault, ErrCRCMismatch)
	}
}
