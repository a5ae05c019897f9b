//go:build noalerts

package devices

import "owslave/core"

func buildEntries(t *Table) []core.Entry {
	return []core.Entry{
		ClassConfig:  {Class: t.Config, MaxSize: ConfigMaxSize},
		ClassConsole: {Class: t.Console, MaxSize: ConsoleMaxSize},
		ClassPort:    {Class: t.Port, MaxSize: PortMaxSize},
		ClassTemp:    {Class: t.Temp, MaxSize: TempMaxSize},
	}
}
