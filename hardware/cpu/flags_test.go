package cpu_test

import "testing"

// TestSetFlagsEmulationForcesWidths checks the cross-cutting behaviour that
// belongs to the CPU rather than the registers package: in emulation mode
// SetFlags forces M and Xf true regardless of the bits supplied. The reset
// sequence re-applies a flag byte whose M and X bits are clear after a hard
// reset, so both must come out true. X/Y masking is checked separately by
// TestSetFlagsMasksIndexRegistersOnXfSet.
func TestSetFlagsEmulationForcesWidths(t *testing.T) {
	program := []uint8{
		0xa2, 0xef, 0x01, // LDX #$01EF; not executed, the test stops after reset
	}
	c, _ := newTestCPU(t, program)
	c.RunOpcode() // reset leaves E=1

	state := c.GetDebugState()
	assertEqual(t, state.E, true, "still in emulation mode")
	assertEqual(t, state.M, true, "M forced true in emulation mode")
	assertEqual(t, state.Xf, true, "Xf forced true in emulation mode")
}

// TestSetFlagsMasksIndexRegistersOnXfSet exercises REP/SEP around a 16-bit
// load, then forces Xf back on and checks X/Y lose their high bytes.
func TestSetFlagsMasksIndexRegistersOnXfSet(t *testing.T) {
	program := []uint8{
		0x18,             // CLC
		0xfb,             // XCE -> native mode
		0xc2, 0x10,       // REP #$10 (Xf = 0, 16-bit index regs)
		0xa2, 0x34, 0x12, // LDX #$1234
		0xe2, 0x10,       // SEP #$10 (Xf = 1, forces X/Y to 8 bit)
	}
	c, _ := newTestCPU(t, program)
	c.RunOpcode() // reset
	c.RunOpcode() // CLC
	c.RunOpcode() // XCE
	c.RunOpcode() // REP #$10
	c.RunOpcode() // LDX #$1234
	assertEqual(t, c.GetDebugState().X, uint16(0x1234), "X loaded as a full word")

	c.RunOpcode() // SEP #$10
	assertEqual(t, c.GetDebugState().X, uint16(0x0034), "X masked to 8 bits when Xf set")
}
