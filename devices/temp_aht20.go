package devices

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/aht20"
)

// AHT20Sensor adapts the AHT20 temperature/humidity part to the Sensor
// contract. The part takes ~80ms per conversion and the driver's Read
// waits that window out, so Collect runs it once per trigger and the
// poll cadence bounds the stall. A failed conversion stays armed and is
// retried on the next poll slice.
type AHT20Sensor struct {
	dev   aht20.Device
	armed bool
}

// NewAHT20Sensor wraps an AHT20 on bus. The I2C bus must already be
// configured.
func NewAHT20Sensor(bus drivers.I2C) *AHT20Sensor {
	d := aht20.New(bus)
	d.Configure()
	return &AHT20Sensor{dev: d}
}

func (s *AHT20Sensor) Trigger() { s.armed = true }

func (s *AHT20Sensor) Collect() (int16, bool) {
	if !s.armed {
		return 0, false
	}
	if err := s.dev.Read(); err != nil {
		return 0, false
	}
	s.armed = false
	return int16(s.dev.DeciCelsius()), true
}
