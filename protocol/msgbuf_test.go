package protocol

import "testing"

func TestMsgBufferFill(t *testing.T) {
	var m MsgBuffer

	if m.Cap() != MaxMessage {
		t.Errorf("Expected capacity %d, got %d", MaxMessage, m.Cap())
	}

	data := []byte{1, 2, 3, 4}
	if err := m.Fill(data); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if m.Len() != 4 {
		t.Errorf("Expected length 4, got %d", m.Len())
	}

	b := m.Bytes()
	for i := range data {
		if b[i] != data[i] {
			t.Errorf("Byte %d: expected %d, got %d", i, data[i], b[i])
		}
	}
}

func TestMsgBufferOverflow(t *testing.T) {
	var m MsgBuffer

	big := make([]byte, MaxMessage+1)
	if err := m.Fill(big); err != ErrTooLong {
		t.Errorf("Expected ErrTooLong for %d-byte fill, got %v", len(big), err)
	}
	if err := m.SetLen(MaxMessage + 1); err != ErrTooLong {
		t.Errorf("Expected ErrTooLong for oversize SetLen, got %v", err)
	}
	if err := m.SetLen(-1); err != ErrTooLong {
		t.Errorf("Expected ErrTooLong for negative SetLen, got %v", err)
	}

	// A full window is still legal
	if err := m.Fill(big[:MaxMessage]); err != nil {
		t.Errorf("Full-window fill failed: %v", err)
	}
	if m.Len() != MaxMessage {
		t.Errorf("Expected length %d, got %d", MaxMessage, m.Len())
	}
}

func TestMsgBufferReset(t *testing.T) {
	var m MsgBuffer

	_ = m.Fill([]byte{9, 9, 9})
	m.Reset()
	if m.Len() != 0 {
		t.Errorf("After reset, expected length 0, got %d", m.Len())
	}
}
