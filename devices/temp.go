package devices

import (
	"owslave/core"
	"owslave/protocol"
)

// Sensor abstracts the temperature source behind the temp class. The
// two-phase shape keeps Poll non-blocking: Trigger starts a conversion,
// Collect fetches the result once one is ready.
type Sensor interface {
	Trigger()
	// Collect returns the completed sample in deci-degrees Celsius.
	// ok is false while no conversion has finished.
	Collect() (deciC int16, ok bool)
}

// Temp is the temperature class. Read never waits for the sensor: it
// always returns the last completed sample, big-endian deci-Celsius,
// and the zero sample before the first conversion lands. Writing two
// bytes to channel 0 arms the alert threshold.
type Temp struct {
	sensor Sensor

	busy         bool
	last         int16
	fresh        bool
	threshold    int16
	hasThreshold bool
}

func NewTemp(sensor Sensor) *Temp {
	return &Temp{sensor: sensor}
}

func (t *Temp) Init() {}

func (t *Temp) Poll() {
	if !t.busy {
		t.sensor.Trigger()
		t.busy = true
		return
	}
	if v, ok := t.sensor.Collect(); ok {
		t.last = v
		t.fresh = true
		t.busy = false
	}
}

func (t *Temp) ReadLen(ch uint8) uint8 { return 2 }

func (t *Temp) Read(ch uint8, buf *protocol.MsgBuffer) {
	v := uint16(t.last)
	_ = buf.Fill([]byte{byte(v >> 8), byte(v)})
}

func (t *Temp) ReadDone(ch uint8) {
	t.fresh = false
}

func (t *Temp) WriteCheck(ch uint8, data []byte) error {
	if ch != 0 {
		return core.ErrChannel
	}
	if len(data) != 2 {
		return core.ErrLength
	}
	return nil
}

func (t *Temp) Write(ch uint8, data []byte) {
	t.threshold = int16(uint16(data[0])<<8 | uint16(data[1]))
	t.hasThreshold = true
}

// SimSensor produces a deterministic ramp for host builds and tests.
type SimSensor struct {
	Start int16
	Step  int16

	pending int16
	armed   bool
}

func (s *SimSensor) Trigger() {
	s.pending = s.Start
	s.Start += s.Step
	s.armed = true
}

func (s *SimSensor) Collect() (int16, bool) {
	if !s.armed {
		return 0, false
	}
	s.armed = false
	return s.pending, true
}
