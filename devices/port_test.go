package devices

import (
	"errors"
	"testing"

	"owslave/core"
	"owslave/protocol"
)

func TestPortReadLevels(t *testing.T) {
	pins := NewSimPins(4)
	p := NewPort(pins)
	p.Init()

	pins.Set(2, true)
	p.Poll()

	var buf protocol.MsgBuffer
	p.Read(2, &buf)
	if buf.Len() != 1 || buf.Bytes()[0] != 1 {
		t.Errorf("Pin 2 read %v, expected [1]", buf.Bytes())
	}

	p.Read(0, &buf)
	if buf.Bytes()[0] != 0 {
		t.Errorf("Pin 0 read %v, expected [0]", buf.Bytes())
	}

	// Out-of-range channel reads as low rather than faulting.
	p.Read(9, &buf)
	if buf.Bytes()[0] != 0 {
		t.Errorf("Out-of-range read %v, expected [0]", buf.Bytes())
	}
}

func TestPortWriteValidation(t *testing.T) {
	pins := NewSimPins(4)
	p := NewPort(pins)
	p.Init()

	testCases := []struct {
		ch   uint8
		data []byte
		want error
	}{
		{ch: 9, data: []byte{1}, want: core.ErrChannel},
		{ch: 0, data: []byte{1, 0}, want: core.ErrLength},
		{ch: 0, data: []byte{}, want: core.ErrLength},
		{ch: 0, data: []byte{2}, want: core.ErrValue},
		{ch: 0, data: []byte{1}, want: nil},
	}

	for i, tc := range testCases {
		err := p.WriteCheck(tc.ch, tc.data)
		if !errors.Is(err, tc.want) {
			t.Errorf("Test case %d: WriteCheck = %v, expected %v", i, err, tc.want)
		}
	}
}

func TestPortWriteDrivesPin(t *testing.T) {
	pins := NewSimPins(4)
	p := NewPort(pins)
	p.Init()

	data := []byte{1}
	if err := p.WriteCheck(3, data); err != nil {
		t.Fatalf("WriteCheck rejected a valid write: %v", err)
	}
	p.Write(3, data)

	if !pins.Get(3) {
		t.Error("Write did not drive pin 3 high")
	}
}

func TestPortReadLenWithinLimit(t *testing.T) {
	p := NewPort(NewSimPins(4))
	for ch := uint8(0); ch < 6; ch++ {
		if n := p.ReadLen(ch); n != PortMaxSize {
			t.Errorf("ReadLen(%d) = %d, expected %d", ch, n, PortMaxSize)
		}
	}
}
