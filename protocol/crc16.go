package protocol

// CRC16 on this bus is the Dallas/Maxim variant: polynomial 0x8005,
// bit-reflected (0xA001), zero initial value, no final xor. The slave
// accumulates it byte by byte over a whole exchange and the master must
// acknowledge its bitwise complement.

// UpdateCRC16 folds one byte into a running CRC.
func UpdateCRC16(crc uint16, b byte) uint16 {
	crc ^= uint16(b)
	for i := 0; i < 8; i++ {
		if crc&1 != 0 {
			crc = crc>>1 ^ 0xA001
		} else {
			crc >>= 1
		}
	}
	return crc
}

// CRC16 calculates the checksum of data in one pass.
func CRC16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc = UpdateCRC16(crc, b)
	}
	return crc
}
