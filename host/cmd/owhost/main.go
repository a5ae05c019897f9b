package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"owslave/devices"
	"owslave/host/link"
	"owslave/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate of the bridge UART")
)

func main() {
	flag.Parse()

	fmt.Printf("Connecting to slave on %s...\n", *device)
	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	m := link.NewMaster(port)

	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]

		switch cmd {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()

		case "config":
			if err := dumpConfig(m); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "read":
			if err := rawRead(m, parts[1:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "write":
			if err := rawWrite(m, parts[1:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "console":
			if err := drainConsole(m); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "send":
			if len(parts) < 2 {
				fmt.Println("Usage: send <text>")
				continue
			}
			text := strings.TrimSpace(strings.TrimPrefix(line, "send"))
			if err := m.Write(devices.ClassConsole, 0, []byte(text)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "temp":
			if err := readTemp(m); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "port":
			if err := portCmd(m, parts[1:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", cmd)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  help                     - Show this help message")
	fmt.Println("  config                   - Dump the slave's device table")
	fmt.Println("  read <class> <ch>        - Raw read, payload printed as hex")
	fmt.Println("  write <class> <ch> <b..> - Raw write, bytes in hex")
	fmt.Println("  console                  - Drain and print console output")
	fmt.Println("  send <text>              - Queue text as console input")
	fmt.Println("  temp                     - Read the temperature channel")
	fmt.Println("  port <pin> [0|1]         - Read or drive a pin")
	fmt.Println("  quit/exit/q              - Exit the program")
	fmt.Println()
}

// dumpConfig walks the config class: channel 0 carries the class count
// and message window, channel n the size limit of class n-1.
func dumpConfig(m *link.Master) error {
	meta, err := m.Read(devices.ClassConfig, 0)
	if err != nil {
		return err
	}
	if len(meta) != 2 {
		return fmt.Errorf("config channel 0 returned %d bytes", len(meta))
	}
	count, window := meta[0], meta[1]
	fmt.Printf("%d device classes, message window %d bytes\n", count, window)

	for id := uint8(0); id < count; id++ {
		size, err := m.Read(devices.ClassConfig, 1+id)
		if err != nil {
			return err
		}
		fmt.Printf("  class %d: max %d bytes\n", id, size[0])
	}
	return nil
}

func rawRead(m *link.Master, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: read <class> <ch>")
	}
	class, ch, err := parseAddr(args[0], args[1])
	if err != nil {
		return err
	}
	payload, err := m.Read(class, ch)
	if err != nil {
		return err
	}
	fmt.Printf("%d bytes: % X\n", len(payload), payload)
	return nil
}

func rawWrite(m *link.Master, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: write <class> <ch> <byte...>")
	}
	class, ch, err := parseAddr(args[0], args[1])
	if err != nil {
		return err
	}
	data := make([]byte, 0, len(args)-2)
	for _, s := range args[2:] {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return fmt.Errorf("bad byte %q: %w", s, err)
		}
		data = append(data, byte(v))
	}
	if err := m.Write(class, ch, data); err != nil {
		return err
	}
	fmt.Printf("Wrote %d bytes to class %d channel %d\n", len(data), class, ch)
	return nil
}

func drainConsole(m *link.Master) error {
	for {
		payload, err := m.Read(devices.ClassConsole, 0)
		if err != nil {
			return err
		}
		if len(payload) == 0 {
			return nil
		}
		os.Stdout.Write(payload)
	}
}

func readTemp(m *link.Master) error {
	payload, err := m.Read(devices.ClassTemp, 0)
	if err != nil {
		return err
	}
	if len(payload) != 2 {
		return fmt.Errorf("temp channel returned %d bytes", len(payload))
	}
	deciC := int16(uint16(payload[0])<<8 | uint16(payload[1]))
	fmt.Printf("%d.%d degC\n", deciC/10, abs(int(deciC))%10)
	return nil
}

func portCmd(m *link.Master, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: port <pin> [0|1]")
	}
	pin, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("bad pin %q: %w", args[0], err)
	}

	if len(args) == 2 {
		level, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil || level > 1 {
			return fmt.Errorf("level must be 0 or 1")
		}
		return m.Write(devices.ClassPort, uint8(pin), []byte{byte(level)})
	}

	payload, err := m.Read(devices.ClassPort, uint8(pin))
	if err != nil {
		return err
	}
	fmt.Printf("pin %d: %d\n", pin, payload[0])
	return nil
}

func parseAddr(classArg, chArg string) (uint8, uint8, error) {
	class, err := strconv.ParseUint(classArg, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("bad class %q: %w", classArg, err)
	}
	ch, err := strconv.ParseUint(chArg, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("bad channel %q: %w", chArg, err)
	}
	return uint8(class), uint8(ch), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
