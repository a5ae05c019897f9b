//go:build !noalerts

package devices

import (
	"testing"

	"owslave/core"
	"owslave/protocol"
)

func TestConsoleAlert(t *testing.T) {
	c := NewConsole()
	c.Init()

	if c.AlertCheck() {
		t.Error("Idle console reports an alert")
	}

	c.Output().Write([]byte("hi"))
	if !c.AlertCheck() {
		t.Fatal("Console with pending output reports no alert")
	}

	var buf protocol.MsgBuffer
	c.AlertFill(&buf)
	if buf.Len() != 1 || buf.Bytes()[0] != 2 {
		t.Errorf("Alert payload %v, expected [2]", buf.Bytes())
	}

	c.ReadLen(0)
	c.ReadDone(0)
	if c.AlertCheck() {
		t.Error("Drained console still reports an alert")
	}
}

func TestPortAlertOnChange(t *testing.T) {
	pins := NewSimPins(4)
	p := NewPort(pins)
	p.Init()

	p.Poll()
	if p.AlertCheck() {
		t.Error("Unchanged port reports an alert")
	}

	pins.Set(1, true)
	p.Poll()
	if !p.AlertCheck() {
		t.Fatal("Changed pin raised no alert")
	}

	var buf protocol.MsgBuffer
	p.AlertFill(&buf)
	if buf.Len() != 1 || buf.Bytes()[0] != 0x02 {
		t.Errorf("Change bitmap %v, expected [02]", buf.Bytes())
	}

	// Acknowledging pin 1 clears the latch.
	p.ReadDone(1)
	if p.AlertCheck() {
		t.Error("Acknowledged change still reports an alert")
	}
}

func TestTempAlertThreshold(t *testing.T) {
	tc := NewTemp(&SimSensor{Start: 310, Step: 0})
	tc.Init()

	tc.Write(0, []byte{0x01, 0x2C}) // threshold 300
	tc.Poll()
	tc.Poll()

	if !tc.AlertCheck() {
		t.Fatal("Sample above threshold raised no alert")
	}

	var buf protocol.MsgBuffer
	tc.AlertFill(&buf)
	b := buf.Bytes()
	if got := int16(uint16(b[0])<<8 | uint16(b[1])); got != 310 {
		t.Errorf("Alert payload %d, expected 310", got)
	}

	tc.ReadDone(0)
	if tc.AlertCheck() {
		t.Error("Consumed sample still reports an alert")
	}
}

func TestTableAlertScan(t *testing.T) {
	tbl, err := BuildRegistry(NewSimPins(2), &SimSensor{})
	if err != nil {
		t.Fatalf("BuildRegistry failed: %v", err)
	}
	reg := tbl.Registry
	reg.Init()

	tbl.Console.Output().Write([]byte("!"))

	var ids []uint8
	reg.ScanAlerts(func(id uint8, a core.AlertReporter) {
		ids = append(ids, id)
	})

	if len(ids) != 1 || ids[0] != ClassConsole {
		t.Errorf("Alerting classes %v, expected [%d]", ids, ClassConsole)
	}
}
