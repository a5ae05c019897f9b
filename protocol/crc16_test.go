package protocol

import "testing"

func TestCRC16KnownVectors(t *testing.T) {
	testCases := []struct {
		data     []byte
		expected uint16
	}{
		{data: []byte{}, expected: 0x0000},
		{data: []byte("123456789"), expected: 0xBB3D}, // standard ARC check value
		{data: []byte{0x00}, expected: 0x0000},
		{data: []byte{0x01}, expected: 0xC0C1},
	}

	for i, tc := range testCases {
		result := CRC16(tc.data)
		if result != tc.expected {
			t.Errorf("Test case %d: CRC16(%v) = 0x%04X, expected 0x%04X", i, tc.data, result, tc.expected)
		}
	}
}

func TestCRC16Incremental(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02}

	var crc uint16
	for _, b := range data {
		crc = UpdateCRC16(crc, b)
	}

	if block := CRC16(data); crc != block {
		t.Errorf("Incremental CRC 0x%04X does not match block CRC 0x%04X", crc, block)
	}
}

func TestCRC16Different(t *testing.T) {
	// Test that a single-bit difference produces a different checksum
	data1 := []byte{0x01, 0x02, 0x03}
	data2 := []byte{0x01, 0x02, 0x02}

	crc1 := CRC16(data1)
	crc2 := CRC16(data2)

	if crc1 == crc2 {
		t.Errorf("CRC16 collision: both inputs produced %04X", crc1)
	}
}
