package devices

import (
	"owslave/core"
	"owslave/protocol"
)

// Class ids in table order. Config is always class 0; the master reads
// the rest of the layout through it.
const (
	ClassConfig uint8 = iota
	ClassConsole
	ClassPort
	ClassTemp
)

// Per-class transfer limits.
const (
	ConfigMaxSize  = 2
	ConsoleMaxSize = protocol.MaxMessage
	PortMaxSize    = 1
	TempMaxSize    = 2
)

// Table is the composed device-class set plus the registry built over
// it. The concrete classes stay reachable for application code (console
// output, input draining).
type Table struct {
	Config   *Config
	Console  *Console
	Port     *Port
	Temp     *Temp
	Registry *core.Registry
}

// BuildRegistry composes the compiled-in table over the supplied
// hardware drivers and freezes it into a registry.
func BuildRegistry(pins PinDriver, sensor Sensor) (*Table, error) {
	t := &Table{
		Config:  &Config{},
		Console: NewConsole(),
		Temp:    NewTemp(sensor),
	}
	t.Port = NewPort(pins)

	entries := buildEntries(t)

	sizes := make([]uint8, len(entries))
	for i, e := range entries {
		sizes[i] = e.MaxSize
	}
	t.Config.bind(sizes)

	reg, err := core.NewRegistry(entries)
	if err != nil {
		return nil, err
	}
	t.Registry = reg
	return t, nil
}
