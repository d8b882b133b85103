package cpu_test

import (
	"testing"

	"github.com/birchlane-systems/w65c816/hardware/cpu"
)

// mockMem is a flat 64KB memory harness, the same shape as the fixture the
// reference core was validated against: a plain byte slice addressed
// through the low 16 bits, with idle cycles discarded.
type mockMem struct {
	data [0x10000]uint8
}

func (m *mockMem) read(address uint32) uint8        { return m.data[address&0xffff] }
func (m *mockMem) write(address uint32, value uint8) { m.data[address&0xffff] = value }
func (m *mockMem) idle(waiting bool)                 {}

func newTestCPU(t *testing.T, program []uint8) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := &mockMem{}
	mem.data[0xfffc] = 0x00
	mem.data[0xfffd] = 0x80
	copy(mem.data[0x8000:], program)

	c := cpu.NewCPU(mem.read, mem.write, mem.idle)
	c.Reset(true)
	return c, mem
}

func assertEqual(t *testing.T, got, want interface{}, what string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", what, got, want)
	}
}

// TestResetAndBootSequence walks through the CLC/XCE/SEI/REP/SEP/LDX/TXS/BRK
// program, checking the same register and flag transitions at each step.
func TestResetAndBootSequence(t *testing.T) {
	program := []uint8{
		0x18,             // CLC
		0xfb,             // XCE
		0x78,             // SEI
		0xc2, 0x18,       // REP #$18
		0xe2, 0x20,       // SEP #$20
		0xa2, 0xef, 0x01, // LDX #$01EF
		0x9a,             // TXS
		0x00,             // BRK
	}
	c, _ := newTestCPU(t, program)

	c.RunOpcode() // perform the reset sequence
	state := c.GetDebugState()
	assertEqual(t, state.PC, uint16(0x8000), "PC after reset")
	assertEqual(t, state.E, true, "E after reset")
	assertEqual(t, state.M, true, "M after reset")
	assertEqual(t, state.Xf, true, "Xf after reset")
	assertEqual(t, state.SP, uint16(0x01fd), "SP after reset")

	c.RunOpcode() // CLC
	assertEqual(t, c.GetDebugState().C, false, "C after CLC")

	c.RunOpcode() // XCE
	state = c.GetDebugState()
	assertEqual(t, state.E, false, "E after XCE")
	assertEqual(t, state.C, true, "C after XCE carries the old E")
	assertEqual(t, state.M, false, "M cleared on leaving emulation mode")
	assertEqual(t, state.Xf, false, "Xf cleared on leaving emulation mode")

	c.RunOpcode() // SEI
	assertEqual(t, c.GetDebugState().I, true, "I after SEI")

	c.RunOpcode() // REP #$18
	state = c.GetDebugState()
	assertEqual(t, state.D, false, "D after REP #$18")
	assertEqual(t, state.Xf, false, "Xf after REP #$18")

	c.RunOpcode() // SEP #$20
	assertEqual(t, c.GetDebugState().M, true, "M after SEP #$20")

	c.RunOpcode() // LDX #$01EF
	assertEqual(t, c.GetDebugState().X, uint16(0x01ef), "X after 16-bit LDX immediate")

	c.RunOpcode() // TXS
	assertEqual(t, c.GetDebugState().SP, uint16(0x01ef), "SP after TXS in native mode")

	c.RunOpcode() // BRK
	assertEqual(t, c.GetDebugState().SP, uint16(0x01eb), "SP after native BRK pushes K/PC/flags")
}

func TestAdcBinaryAndDecimal(t *testing.T) {
	// A is already 8-bit in emulation mode after reset (SEP #$20 leaves M
	// unchanged there), then two ADCs: one binary, one BCD.
	program := []uint8{
		0xe2, 0x20, // SEP #$20 (no effect in emulation mode; M stays 1)
		0xa9, 0x09, // LDA #$09
		0x18,       // CLC
		0x69, 0x05, // ADC #$05 -> 0x0e, no decimal
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x09, // LDA #$09
		0x69, 0x01, // ADC #$01 (decimal) -> 0x10
	}
	c, _ := newTestCPU(t, program)
	c.RunOpcode() // reset
	c.RunOpcode() // SEP
	c.RunOpcode() // LDA
	c.RunOpcode() // CLC
	c.RunOpcode() // ADC binary
	assertEqual(t, c.GetDebugState().A&0xff, uint16(0x0e), "binary ADC result")

	c.RunOpcode() // SED
	c.RunOpcode() // CLC
	c.RunOpcode() // LDA
	c.RunOpcode() // ADC decimal
	assertEqual(t, c.GetDebugState().A&0xff, uint16(0x10), "decimal ADC result")
}

func TestIrqAndNmiVectorSelection(t *testing.T) {
	program := []uint8{0xea} // NOP, the CPU will be interrupted before it runs
	c, mem := newTestCPU(t, program)
	mem.data[0xfffe] = 0x00
	mem.data[0xffff] = 0x90 // IRQ/BRK vector -> $9000
	mem.data[0xfffa] = 0x00
	mem.data[0xfffb] = 0xa0 // NMI vector -> $A000

	c.RunOpcode() // reset, lands at $8000 with I=1

	c.SetIrq(true)
	c.RunOpcode() // I is set after reset, so the IRQ should NOT be serviced yet
	assertEqual(t, c.GetDebugState().PC, uint16(0x8001), "IRQ ignored while I flag set")

	c.Nmi()
	c.RunOpcode() // NMI is unmaskable; it should be serviced immediately
	assertEqual(t, c.GetDebugState().PC, uint16(0xa000), "NMI vectors to $A000")
}

func TestWaiParksUntilInterrupt(t *testing.T) {
	program := []uint8{0xcb} // WAI
	c, mem := newTestCPU(t, program)
	mem.data[0xfffa] = 0x34
	mem.data[0xfffb] = 0x12

	c.RunOpcode() // reset
	c.RunOpcode() // WAI

	c.RunOpcode() // still parked, no interrupt pending
	assertEqual(t, c.GetDebugState().PC, uint16(0x8001), "PC unchanged while waiting")

	c.Nmi()
	c.RunOpcode() // wakes from WAI and polls the pending interrupt
	c.RunOpcode() // services it on the following step
	assertEqual(t, c.GetDebugState().PC, uint16(0x1234), "PC after waking on NMI")
}
