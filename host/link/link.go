// Package link implements the bus-master side of an exchange. It
// mirrors the slave dispatcher's framing byte for byte and closes every
// exchange with the complement handshake the slave demands.
package link

import (
	"errors"
	"fmt"
	"io"

	"owslave/protocol"
)

// ErrCRC reports that the slave's closing CRC did not match the
// master's own view of the exchange. The master answers such a CRC with
// a non-complement echo, so the slave escalates on its side too and the
// whole exchange is abandoned.
var ErrCRC = errors.New("link: CRC mismatch")

// ErrRejected reports a write the slave refused before commit.
var ErrRejected = errors.New("link: write rejected")

// Master drives exchanges against a slave over a byte stream, typically
// a serial bridge. It is not safe for concurrent use; the bus carries
// one exchange at a time.
type Master struct {
	rw  io.ReadWriter
	crc uint16
}

func NewMaster(rw io.ReadWriter) *Master {
	return &Master{rw: rw}
}

func (m *Master) sendByte(b byte) error {
	if _, err := m.rw.Write([]byte{b}); err != nil {
		return fmt.Errorf("link: write failed: %w", err)
	}
	m.crc = protocol.UpdateCRC16(m.crc, b)
	return nil
}

func (m *Master) recvByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(m.rw, b[:]); err != nil {
		return 0, fmt.Errorf("link: read failed: %w", err)
	}
	m.crc = protocol.UpdateCRC16(m.crc, b[0])
	return b[0], nil
}

// The handshake words travel outside the CRC accumulation.

func (m *Master) recvWordRaw() (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(m.rw, b[:]); err != nil {
		return 0, fmt.Errorf("link: read failed: %w", err)
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

func (m *Master) sendWordRaw(v uint16) error {
	if _, err := m.rw.Write([]byte{byte(v), byte(v >> 8)}); err != nil {
		return fmt.Errorf("link: write failed: %w", err)
	}
	return nil
}

// Read performs one read exchange against class/ch and returns the
// payload the slave committed.
func (m *Master) Read(class, ch uint8) ([]byte, error) {
	m.crc = 0
	for _, b := range []byte{protocol.OpRead, class, ch} {
		if err := m.sendByte(b); err != nil {
			return nil, err
		}
	}

	status, err := m.recvByte()
	if err != nil {
		return nil, err
	}
	if status != protocol.StatusOK {
		return nil, statusError(status)
	}

	n, err := m.recvByte()
	if err != nil {
		return nil, err
	}
	if int(n) > protocol.MaxMessage {
		return nil, fmt.Errorf("link: slave announced %d bytes, window is %d", n, protocol.MaxMessage)
	}

	payload := make([]byte, n)
	for i := range payload {
		if payload[i], err = m.recvByte(); err != nil {
			return nil, err
		}
	}

	if err := m.finish(); err != nil {
		return nil, err
	}
	return payload, nil
}

// Write performs one write exchange. The payload lands on the slave
// only if it passes the class's validation and the closing handshake.
func (m *Master) Write(class, ch uint8, data []byte) error {
	if len(data) > protocol.MaxMessage {
		return fmt.Errorf("link: %d bytes exceed the message window", len(data))
	}

	m.crc = 0
	header := []byte{protocol.OpWrite, class, ch, byte(len(data))}
	for _, b := range append(header, data...) {
		if err := m.sendByte(b); err != nil {
			return err
		}
	}

	status, err := m.recvByte()
	if err != nil {
		return err
	}
	if status != protocol.StatusOK {
		return statusError(status)
	}

	return m.finish()
}

// finish closes the exchange. A slave CRC matching our own accumulation
// is acknowledged with its complement; anything else gets a deliberately
// wrong echo so neither side commits.
func (m *Master) finish() error {
	crc := m.crc
	got, err := m.recvWordRaw()
	if err != nil {
		return err
	}
	if got != crc {
		_ = m.sendWordRaw(got) // never equals its own complement
		return fmt.Errorf("%w: slave sent 0x%04X, expected 0x%04X", ErrCRC, got, crc)
	}
	return m.sendWordRaw(^crc)
}

func statusError(status byte) error {
	switch status {
	case protocol.StatusReject:
		return ErrRejected
	case protocol.StatusBadClass:
		return errors.New("link: no such device class")
	case protocol.StatusBadLength:
		return errors.New("link: length exceeds the message window")
	}
	return fmt.Errorf("link: unexpected status 0x%02X", status)
}
