package protocol

import "errors"

// ErrTooLong reports an attempt to size a transfer past the message window.
var ErrTooLong = errors.New("message exceeds buffer capacity")

// MsgBuffer is the fixed transfer window every read and write operation
// works through. The backing array is MaxMessage bytes; the valid region
// is tracked by an explicit length that can never exceed the capacity.
type MsgBuffer struct {
	buf [MaxMessage]byte
	n   int
}

// Len returns the length of the valid region.
func (m *MsgBuffer) Len() int { return m.n }

// Cap returns the fixed capacity of the window.
func (m *MsgBuffer) Cap() int { return MaxMessage }

// Bytes returns the valid region. The slice aliases the backing array;
// it stays valid until the next Fill, SetLen or Reset.
func (m *MsgBuffer) Bytes() []byte { return m.buf[:m.n] }

// SetLen resizes the valid region without touching its contents.
func (m *MsgBuffer) SetLen(n int) error {
	if n < 0 || n > MaxMessage {
		return ErrTooLong
	}
	m.n = n
	return nil
}

// Fill replaces the window contents with data.
func (m *MsgBuffer) Fill(data []byte) error {
	if len(data) > MaxMessage {
		return ErrTooLong
	}
	m.n = copy(m.buf[:], data)
	return nil
}

// Reset empties the window.
func (m *MsgBuffer) Reset() { m.n = 0 }
