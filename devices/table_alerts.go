//go:build !noalerts

package devices

import "owslave/core"

func buildEntries(t *Table) []core.Entry {
	return []core.Entry{
		ClassConfig:  {Class: t.Config, Alert: t.Config, MaxSize: ConfigMaxSize},
		ClassConsole: {Class: t.Console, Alert: t.Console, MaxSize: ConsoleMaxSize},
		ClassPort:    {Class: t.Port, Alert: t.Port, MaxSize: PortMaxSize},
		ClassTemp:    {Class: t.Temp, Alert: t.Temp, MaxSize: TempMaxSize},
	}
}
