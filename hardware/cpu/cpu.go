// This file is part of w65c816.
//
// w65c816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// w65c816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with w65c816.  If not, see <https://www.gnu.org/licenses/>.

// Package cpu implements a cycle-stepped core for the 65C816 16-bit CISC
// processor, binary compatible with the WDC 65C816 family used in the SNES
// and a handful of other home computers. The core owns no memory of its
// own: every byte it touches passes through the three callbacks supplied at
// construction, in exactly the order real hardware would assert them.
package cpu

import (
	"github.com/birchlane-systems/w65c816/bus"
	"github.com/birchlane-systems/w65c816/hardware/cpu/registers"
)

// ReadFunc supplies one byte from the given 24-bit address.
type ReadFunc func(address uint32) uint8

// WriteFunc stores one byte at the given 24-bit address.
type WriteFunc func(address uint32, value uint8)

// IdleFunc is called once per internal cycle that does not touch the bus.
// waiting is true while the core is parked on WAI or STP.
type IdleFunc func(waiting bool)

// DebugState is a snapshot of the register file and flags, returned by
// GetDebugState. It never aliases the CPU's internal state.
type DebugState struct {
	A, X, Y, SP, PC, DP uint16
	K, DB               uint8
	N, V, M, Xf, D, I, Z, C bool
	E                       bool
}

// CPU is the 65C816 core. It is driven entirely by calls to RunOpcode; it
// never spawns goroutines and never blocks.
type CPU struct {
	read  ReadFunc
	write WriteFunc
	idle  IdleFunc

	a, x, y, sp, pc, dp registers.Wide
	k, db               registers.Byte
	status              registers.Status
	e                   bool

	waiting, stopped bool

	irqWanted, nmiWanted, intWanted, resetWanted bool
}

// NewCPU constructs a core driven by the three bus callbacks, matching the
// original hardware constructor signature one-for-one.
func NewCPU(read ReadFunc, write WriteFunc, idle IdleFunc) *CPU {
	c := &CPU{
		read:  read,
		write: write,
		idle:  idle,
		a:     registers.NewWide("A", 0),
		x:     registers.NewWide("X", 0),
		y:     registers.NewWide("Y", 0),
		sp:    registers.NewWide("SP", 0),
		pc:    registers.NewWide("PC", 0),
		dp:    registers.NewWide("DP", 0),
		k:     registers.NewByte("K", 0),
		db:    registers.NewByte("DB", 0),
	}
	c.Reset(true)
	return c
}

// NewCPUFromBus constructs a core over a single bus.Bus collaborator, for
// hosts that would rather implement one interface than wire three closures.
func NewCPUFromBus(b bus.Bus) *CPU {
	return NewCPU(b.Read, b.Write, b.Idle)
}

// Reset arranges for the next RunOpcode to perform the reset sequence. If
// hard, every register and flag is zeroed and the IRQ latch is cleared;
// either way waiting, stopped and nmiWanted are cleared and resetWanted is
// set, so a soft reset only rearms the sequence.
func (c *CPU) Reset(hard bool) {
	if hard {
		c.a.Load(0)
		c.x.Load(0)
		c.y.Load(0)
		c.sp.Load(0)
		c.pc.Load(0)
		c.dp.Load(0)
		c.k.Load(0)
		c.db.Load(0)
		c.status = registers.Status{}
		c.e = false
		c.irqWanted = false
	}
	c.waiting = false
	c.stopped = false
	c.nmiWanted = false
	c.intWanted = false
	c.resetWanted = true
}

// Nmi latches a non-maskable interrupt request. It is a one-shot edge: the
// core clears it once serviced.
func (c *CPU) Nmi() { c.nmiWanted = true }

// SetIrq sets the level-triggered IRQ line. The host must hold it true
// until the interrupt is serviced, then lower it.
func (c *CPU) SetIrq(state bool) { c.irqWanted = state }

// GetDebugState takes a snapshot of the register file and flags.
func (c *CPU) GetDebugState() DebugState {
	return DebugState{
		A: c.a.Value(), X: c.x.Value(), Y: c.y.Value(), SP: c.sp.Value(), PC: c.pc.Value(), DP: c.dp.Value(),
		K: c.k.Value(), DB: c.db.Value(),
		N: c.status.N, V: c.status.V, M: c.status.M, Xf: c.status.Xf,
		D: c.status.D, I: c.status.I, Z: c.status.Z, C: c.status.C,
		E: c.e,
	}
}

// RunOpcode advances the core by exactly one instruction, or instead runs the
// pending reset sequence, services one interrupt, leaves WAI, or emits one
// waiting idle tick while parked on WAI or STP. The gate order is: reset service,
// then stopped, then waiting, then the normal fetch-and-dispatch path.
func (c *CPU) RunOpcode() {
	if c.resetWanted {
		c.doReset()
		return
	}

	if c.stopped {
		c.idleWait()
		return
	}

	if c.waiting {
		if c.irqWanted || c.nmiWanted {
			c.waiting = false
			c.Idle()
			c.checkInterrupts()
			c.Idle()
		} else {
			c.idleWait()
		}
		return
	}

	c.checkInterrupts()
	if c.intWanted {
		c.Read((uint32(c.k.Value()) << 16) | uint32(c.pc.Value()))
		c.doInterrupt()
	} else {
		opcode := c.readOpcode()
		c.doOpcode(opcode)
	}
}

func (c *CPU) doReset() {
	c.resetWanted = false
	c.Read((uint32(c.k.Value()) << 16) | uint32(c.pc.Value()))
	c.Idle()
	sp := c.sp.Value()
	c.Read(0x100 | uint32(sp&0xff))
	sp--
	c.Read(0x100 | uint32(sp&0xff))
	sp--
	c.Read(0x100 | uint32(sp&0xff))
	sp--
	c.sp.Load((sp & 0xff) | 0x100)
	c.e = true
	c.status.I = true
	c.status.D = false
	c.SetFlags(c.GetFlags())
	c.k.Load(0)
	c.pc.Load(c.ReadWord(0xfffc, 0xfffd, false))
}

// Read performs one bus read.
func (c *CPU) Read(address uint32) uint8 { return c.read(address) }

// Write performs one bus write.
func (c *CPU) Write(address uint32, value uint8) { c.write(address, value) }

// Idle reports one internal cycle that did not touch the bus.
func (c *CPU) Idle() { c.idle(false) }

func (c *CPU) idleWait() { c.idle(true) }

func (c *CPU) checkInterrupts() {
	c.intWanted = c.nmiWanted || (c.irqWanted && !c.status.I)
}

func (c *CPU) readOpcode() uint8 {
	addr := (uint32(c.k.Value()) << 16) | uint32(c.pc.Value())
	c.pc.Add(1)
	return c.Read(addr)
}

// ReadOpcodeWord reads two sequential bytes from the program stream,
// little-endian, with an interrupt poll optionally sandwiched between the
// two byte fetches (matching the half-fetched-operand poll point real
// hardware exposes).
func (c *CPU) ReadOpcodeWord(intCheck bool) uint16 {
	low := uint16(c.readOpcode())
	if intCheck {
		c.checkInterrupts()
	}
	high := uint16(c.readOpcode())
	return low | (high << 8)
}

// GetFlags packs the eight status bits into the wire byte. The E flag is
// never part of it.
func (c *CPU) GetFlags() uint8 { return c.status.Value() }

// SetFlags unpacks val into the status bits. In emulation mode M and X are
// forced true regardless of bits 5 and 4; whenever X ends up true, the
// upper bytes of X and Y are masked to zero, since an 8-bit index register
// cannot hold them.
func (c *CPU) SetFlags(val uint8) {
	c.status.N = val&0x80 != 0
	c.status.V = val&0x40 != 0
	c.status.D = val&0x08 != 0
	c.status.I = val&0x04 != 0
	c.status.Z = val&0x02 != 0
	c.status.C = val&0x01 != 0

	if !c.e {
		c.status.M = val&0x20 != 0
		c.status.Xf = val&0x10 != 0
	} else {
		c.status.M = true
		c.status.Xf = true
	}

	if c.status.Xf {
		c.x.MaskHigh()
		c.y.MaskHigh()
	}
}

// SetZnFlags derives Z and N from value, respecting isByte (8-bit operand)
// versus the full 16-bit width.
func (c *CPU) SetZnFlags(value uint16, isByte bool) {
	if isByte {
		c.status.Z = value&0xff == 0
		c.status.N = value&0x80 != 0
	} else {
		c.status.Z = value == 0
		c.status.N = value&0x8000 != 0
	}
}

// PushByte pushes one byte and decrements SP, wrapping SP to page $01 in
// emulation mode.
func (c *CPU) PushByte(value uint8) {
	c.Write(uint32(c.sp.Value()), value)
	c.sp.Add(0xffff) // -1 mod 2^16
	if c.e {
		c.sp.Load((c.sp.Value() & 0xff) | 0x100)
	}
}

// PullByte increments SP (wrapping to page $01 in emulation mode) and
// returns the byte it now points at.
func (c *CPU) PullByte() uint8 {
	c.sp.Add(1)
	if c.e {
		c.sp.Load((c.sp.Value() & 0xff) | 0x100)
	}
	return c.Read(uint32(c.sp.Value()))
}

// PushWord pushes a 16-bit value high-byte-first, with an optional
// interrupt poll between the two byte pushes.
func (c *CPU) PushWord(value uint16, intCheck bool) {
	c.PushByte(uint8(value >> 8))
	if intCheck {
		c.checkInterrupts()
	}
	c.PushByte(uint8(value))
}

// PullWord pulls a 16-bit value low-byte-first, with an optional interrupt
// poll between the two byte pulls.
func (c *CPU) PullWord(intCheck bool) uint16 {
	low := uint16(c.PullByte())
	if intCheck {
		c.checkInterrupts()
	}
	high := uint16(c.PullByte())
	return low | (high << 8)
}

// ReadWord reads a little-endian word from two addresses that need not be
// adjacent (bank-wrapped addressing modes compute them independently), with
// an optional interrupt poll between the two reads.
func (c *CPU) ReadWord(adrL, adrH uint32, intCheck bool) uint16 {
	low := uint16(c.Read(adrL))
	if intCheck {
		c.checkInterrupts()
	}
	high := uint16(c.Read(adrH))
	return low | (high << 8)
}

// WriteWord writes a little-endian word across two addresses. reversed
// writes the high byte first, matching read-modify-write instructions that
// must preserve the real hardware's byte order; intCheck optionally polls
// interrupts between the two writes.
func (c *CPU) WriteWord(adrL, adrH uint32, value uint16, reversed, intCheck bool) {
	if reversed {
		c.Write(adrH, uint8(value>>8))
		if intCheck {
			c.checkInterrupts()
		}
		c.Write(adrL, uint8(value))
	} else {
		c.Write(adrL, uint8(value))
		if intCheck {
			c.checkInterrupts()
		}
		c.Write(adrH, uint8(value>>8))
	}
}

// DoBranch reads the branch displacement and, if condition holds, polls
// interrupts, burns an idle cycle and applies the signed displacement to
// PC. If condition does not hold, the interrupt poll happens before the
// displacement is even fetched, matching the hardware's early decode.
func (c *CPU) DoBranch(condition bool) {
	if !condition {
		c.checkInterrupts()
	}
	value := c.readOpcode()
	if condition {
		c.checkInterrupts()
		c.Idle()
		c.pc.Add(uint16(int16(int8(value))))
	}
}

func (c *CPU) doInterrupt() {
	c.Idle()
	if !c.e {
		c.PushByte(c.k.Value())
	}
	c.PushWord(c.pc.Value(), false)
	flags := c.GetFlags() &^ 0x10
	c.PushByte(flags)

	c.status.I = true
	c.status.D = false
	c.k.Load(0)
	c.intWanted = false

	var vectorL, vectorH uint32
	if c.e {
		if c.nmiWanted {
			vectorL, vectorH = 0xfffa, 0xfffb
		} else {
			vectorL, vectorH = 0xfffe, 0xffff
		}
	} else {
		if c.nmiWanted {
			vectorL, vectorH = 0xffea, 0xffeb
		} else {
			vectorL, vectorH = 0xffee, 0xffef
		}
	}

	c.nmiWanted = false
	c.pc.Load(c.ReadWord(vectorL, vectorH, false))
}
