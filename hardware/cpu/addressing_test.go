package cpu_test

import (
	"testing"
)

// TestDirectPageAddressing round-trips a byte through direct page $10 via
// AdrDp, with the direct-page register at its reset value of zero.
func TestDirectPageAddressing(t *testing.T) {
	program := []uint8{
		0xa9, 0x7f, // LDA #$7f (8-bit, from the forced-emulation reset state)
		0x85, 0x10, // STA $10
		0xa5, 0x10, // LDA $10
	}
	c, _ := newTestCPU(t, program)
	c.RunOpcode() // reset
	c.RunOpcode() // LDA #$7f
	c.RunOpcode() // STA $10
	c.RunOpcode() // LDA $10
	assertEqual(t, c.GetDebugState().A&0xff, uint16(0x7f), "round-trip through direct page $10")
}

// TestAbsoluteIndexedStoreAndLoad stores and reloads a byte with STA/LDA
// absolute,X, checking that the effective address is the base plus X.
func TestAbsoluteIndexedStoreAndLoad(t *testing.T) {
	program := []uint8{
		0xa2, 0xff, // LDX #$ff
		0xa9, 0x42, // LDA #$42
		0x9d, 0x00, 0x90, // STA $9000,X -> $90FF
		0xa9, 0x00, // LDA #$00
		0xbd, 0x00, 0x90, // LDA $9000,X -> reload from $90FF
	}
	c, mem := newTestCPU(t, program)
	c.RunOpcode() // reset
	c.RunOpcode() // LDX #$ff
	c.RunOpcode() // LDA #$42
	c.RunOpcode() // STA $9000,X
	assertEqual(t, mem.data[0x90ff], uint8(0x42), "STA absolute,X landed at the indexed address")
	c.RunOpcode() // LDA #$00
	c.RunOpcode() // LDA $9000,X
	assertEqual(t, c.GetDebugState().A&0xff, uint16(0x42), "LDA absolute,X re-read the same byte")
}
