package cpu

// The operand-logic methods below take the (low, high) address pair an
// addressing-mode calculator produced and perform the instruction's memory
// access and arithmetic. Each branches on the relevant width flag (M for
// accumulator/memory ops, X for index-register ops) since every general
// register on this chip can independently be 8 or 16 bits wide.

func (c *CPU) And(low, high uint32) {
	if c.status.M {
		c.checkInterrupts()
		value := uint16(c.Read(low))
		c.a.LoadLow(uint8(c.a.Value()) & uint8(value))
	} else {
		value := c.ReadWord(low, high, true)
		c.a.Load(c.a.Value() & value)
	}
	c.SetZnFlags(c.a.Value(), c.status.M)
}

func (c *CPU) Ora(low, high uint32) {
	if c.status.M {
		c.checkInterrupts()
		value := c.Read(low)
		c.a.LoadLow(uint8(c.a.Value()) | value)
	} else {
		value := c.ReadWord(low, high, true)
		c.a.Load(c.a.Value() | value)
	}
	c.SetZnFlags(c.a.Value(), c.status.M)
}

func (c *CPU) Eor(low, high uint32) {
	if c.status.M {
		c.checkInterrupts()
		value := c.Read(low)
		c.a.LoadLow(uint8(c.a.Value()) ^ value)
	} else {
		value := c.ReadWord(low, high, true)
		c.a.Load(c.a.Value() ^ value)
	}
	c.SetZnFlags(c.a.Value(), c.status.M)
}

func boolToU16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

func (c *CPU) Adc(low, high uint32) {
	carry := boolToU16(c.status.C)
	if c.status.M {
		c.checkInterrupts()
		value := uint16(c.Read(low))
		a := c.a.Value() & 0xff
		var result uint16
		if c.status.D {
			result = (a & 0xf) + (value & 0xf) + carry
			if result > 0x9 {
				result = ((result + 0x6) & 0xf) + 0x10
			}
			result = (a & 0xf0) + (value & 0xf0) + result
		} else {
			result = a + value + carry
		}
		c.status.V = ((a^value)&0x80 == 0) && ((a^result)&0x80 != 0)
		if c.status.D && result > 0x9f {
			result += 0x60
		}
		c.status.C = result > 0xff
		c.a.LoadLow(uint8(result))
	} else {
		value := c.ReadWord(low, high, true)
		a := c.a.Value()
		var result uint32
		if c.status.D {
			r := uint32(a&0xf) + uint32(value&0xf) + uint32(carry)
			if r > 0x9 {
				r = ((r + 0x6) & 0xf) + 0x10
			}
			r = uint32(a&0xf0) + uint32(value&0xf0) + r
			if r > 0x9f {
				r = ((r + 0x60) & 0xff) + 0x100
			}
			r = uint32(a&0xf00) + uint32(value&0xf00) + r
			if r > 0x9ff {
				r = ((r + 0x600) & 0xfff) + 0x1000
			}
			r = uint32(a&0xf000) + uint32(value&0xf000) + r
			result = r
		} else {
			result = uint32(a) + uint32(value) + uint32(carry)
		}
		c.status.V = ((uint32(a)^uint32(value))&0x8000 == 0) && ((uint32(a)^result)&0x8000 != 0)
		if c.status.D && result > 0x9fff {
			result += 0x6000
		}
		c.status.C = result > 0xffff
		c.a.Load(uint16(result))
	}
	c.SetZnFlags(c.a.Value(), c.status.M)
}

func (c *CPU) Sbc(low, high uint32) {
	borrowComplement := boolToU16(c.status.C)
	if c.status.M {
		c.checkInterrupts()
		operand := c.Read(low)
		aVal := uint8(c.a.Value())
		result := uint16(aVal) - uint16(operand) - (1 - borrowComplement)
		c.status.V = ((uint16(aVal)^uint16(operand))&(uint16(aVal)^result))&0x80 != 0
		if c.status.D {
			temp := (uint16(aVal) & 0x0f) - (uint16(operand) & 0x0f) - (1 - borrowComplement)
			if temp&0x10 != 0 {
				temp -= 6
			}
			temp = (uint16(aVal) & 0xf0) - (uint16(operand) & 0xf0) + temp
			if temp&0x100 != 0 {
				temp -= 0x60
			}
			result = temp
		}
		c.status.C = result&0xff00 == 0
		c.a.LoadLow(uint8(result))
	} else {
		operand := c.ReadWord(low, high, true)
		aVal := c.a.Value()
		result := uint32(aVal) - uint32(operand) - uint32(1-borrowComplement)
		c.status.V = ((uint32(aVal)^uint32(operand))&(uint32(aVal)^result))&0x8000 != 0
		if c.status.D {
			temp := uint32(aVal&0x000f) - uint32(operand&0x000f) - uint32(1-borrowComplement)
			if temp&0x10 != 0 {
				temp -= 6
			}
			temp = uint32(aVal&0x00f0) - uint32(operand&0x00f0) + temp
			if temp&0x100 != 0 {
				temp -= 0x60
			}
			temp = uint32(aVal&0x0f00) - uint32(operand&0x0f00) + temp
			if temp&0x1000 != 0 {
				temp -= 0x600
			}
			temp = uint32(aVal&0xf000) - uint32(operand&0xf000) + temp
			if temp&0x10000 != 0 {
				temp -= 0x6000
			}
			result = temp
		}
		c.status.C = result&0xffff0000 == 0
		c.a.Load(uint16(result))
	}
	c.SetZnFlags(c.a.Value(), c.status.M)
}

func (c *CPU) Cmp(low, high uint32) {
	var result uint32
	if c.status.M {
		c.checkInterrupts()
		value := uint32(c.Read(low))
		result = (uint32(c.a.Value()&0xff) - value) & 0xffffffff
		c.status.C = result < 0x100
	} else {
		value := uint32(c.ReadWord(low, high, true))
		result = (uint32(c.a.Value()) - value) & 0xffffffff
		c.status.C = result < 0x10000
	}
	c.SetZnFlags(uint16(result), c.status.M)
}

func (c *CPU) Cpx(low, high uint32) {
	var result uint32
	if c.status.Xf {
		c.checkInterrupts()
		value := uint32(c.Read(low))
		result = (uint32(c.x.Value()&0xff) - value) & 0xffffffff
		c.status.C = result < 0x100
	} else {
		value := uint32(c.ReadWord(low, high, true))
		result = (uint32(c.x.Value()) - value) & 0xffffffff
		c.status.C = result < 0x10000
	}
	c.SetZnFlags(uint16(result), c.status.Xf)
}

func (c *CPU) Cpy(low, high uint32) {
	var result uint32
	if c.status.Xf {
		c.checkInterrupts()
		value := uint32(c.Read(low))
		result = (uint32(c.y.Value()&0xff) - value) & 0xffffffff
		c.status.C = result < 0x100
	} else {
		value := uint32(c.ReadWord(low, high, true))
		result = (uint32(c.y.Value()) - value) & 0xffffffff
		c.status.C = result < 0x10000
	}
	c.SetZnFlags(uint16(result), c.status.Xf)
}

func (c *CPU) Bit(low, high uint32) {
	if c.status.M {
		c.checkInterrupts()
		value := c.Read(low)
		c.status.Z = (uint8(c.a.Value())&value) == 0
		c.status.N = value&0x80 != 0
		c.status.V = value&0x40 != 0
	} else {
		value := c.ReadWord(low, high, true)
		c.status.Z = (c.a.Value() & value) == 0
		c.status.N = value&0x8000 != 0
		c.status.V = value&0x4000 != 0
	}
}

func (c *CPU) Lda(low, high uint32) {
	if c.status.M {
		c.checkInterrupts()
		c.a.LoadLow(c.Read(low))
	} else {
		c.a.Load(c.ReadWord(low, high, true))
	}
	c.SetZnFlags(c.a.Value(), c.status.M)
}

func (c *CPU) Ldx(low, high uint32) {
	if c.status.Xf {
		c.checkInterrupts()
		c.x.Load(uint16(c.Read(low)))
	} else {
		c.x.Load(c.ReadWord(low, high, true))
	}
	c.SetZnFlags(c.x.Value(), c.status.Xf)
}

func (c *CPU) Ldy(low, high uint32) {
	if c.status.Xf {
		c.checkInterrupts()
		c.y.Load(uint16(c.Read(low)))
	} else {
		c.y.Load(c.ReadWord(low, high, true))
	}
	c.SetZnFlags(c.y.Value(), c.status.Xf)
}

func (c *CPU) Sta(low, high uint32) {
	if c.status.M {
		c.checkInterrupts()
		c.Write(low, uint8(c.a.Value()))
	} else {
		c.WriteWord(low, high, c.a.Value(), false, true)
	}
}

func (c *CPU) Stx(low, high uint32) {
	if c.status.Xf {
		c.checkInterrupts()
		c.Write(low, uint8(c.x.Value()))
	} else {
		c.WriteWord(low, high, c.x.Value(), false, true)
	}
}

func (c *CPU) Sty(low, high uint32) {
	if c.status.Xf {
		c.checkInterrupts()
		c.Write(low, uint8(c.y.Value()))
	} else {
		c.WriteWord(low, high, c.y.Value(), false, true)
	}
}

func (c *CPU) Stz(low, high uint32) {
	if c.status.M {
		c.checkInterrupts()
		c.Write(low, 0)
	} else {
		c.WriteWord(low, high, 0, false, true)
	}
}

func (c *CPU) Ror(low, high uint32) {
	var carry bool
	var result uint16
	if c.status.M {
		value := c.Read(low)
		c.Idle()
		carry = value&1 != 0
		result = uint16(value>>1) | uint16(boolToU16(c.status.C)<<7)
		c.checkInterrupts()
		c.Write(low, uint8(result))
	} else {
		value := c.ReadWord(low, high, false)
		c.Idle()
		carry = value&1 != 0
		result = (value >> 1) | (boolToU16(c.status.C) << 15)
		c.WriteWord(low, high, result, true, true)
	}
	c.SetZnFlags(result, c.status.M)
	c.status.C = carry
}

func (c *CPU) Rol(low, high uint32) {
	var result uint32
	if c.status.M {
		result = (uint32(c.Read(low)) << 1) | uint32(boolToU16(c.status.C))
		c.Idle()
		c.status.C = result&0x100 != 0
		c.checkInterrupts()
		c.Write(low, uint8(result))
	} else {
		result = (uint32(c.ReadWord(low, high, false)) << 1) | uint32(boolToU16(c.status.C))
		c.Idle()
		c.status.C = result&0x10000 != 0
		c.WriteWord(low, high, uint16(result), true, true)
	}
	c.SetZnFlags(uint16(result), c.status.M)
}

func (c *CPU) Lsr(low, high uint32) {
	var result uint16
	if c.status.M {
		value := c.Read(low)
		c.Idle()
		c.status.C = value&1 != 0
		result = uint16(value >> 1)
		c.checkInterrupts()
		c.Write(low, uint8(result))
	} else {
		value := c.ReadWord(low, high, false)
		c.Idle()
		c.status.C = value&1 != 0
		result = value >> 1
		c.WriteWord(low, high, result, true, true)
	}
	c.SetZnFlags(result, c.status.M)
}

func (c *CPU) Asl(low, high uint32) {
	var result uint32
	if c.status.M {
		result = uint32(c.Read(low)) << 1
		c.Idle()
		c.status.C = result&0x100 != 0
		c.checkInterrupts()
		c.Write(low, uint8(result))
	} else {
		result = uint32(c.ReadWord(low, high, false)) << 1
		c.Idle()
		c.status.C = result&0x10000 != 0
		c.WriteWord(low, high, uint16(result), true, true)
	}
	c.SetZnFlags(uint16(result), c.status.M)
}

func (c *CPU) Inc(low, high uint32) {
	var result uint16
	if c.status.M {
		result = uint16(c.Read(low)) + 1
		c.Idle()
		c.checkInterrupts()
		c.Write(low, uint8(result))
	} else {
		result = c.ReadWord(low, high, false) + 1
		c.Idle()
		c.WriteWord(low, high, result, true, true)
	}
	c.SetZnFlags(result, c.status.M)
}

func (c *CPU) Dec(low, high uint32) {
	var result uint16
	if c.status.M {
		result = uint16(c.Read(low)) - 1
		c.Idle()
		c.checkInterrupts()
		c.Write(low, uint8(result))
	} else {
		result = c.ReadWord(low, high, false) - 1
		c.Idle()
		c.WriteWord(low, high, result, true, true)
	}
	c.SetZnFlags(result, c.status.M)
}

func (c *CPU) Tsb(low, high uint32) {
	if c.status.M {
		value := c.Read(low)
		c.Idle()
		c.status.Z = (uint8(c.a.Value()) & value) == 0
		c.checkInterrupts()
		c.Write(low, value|uint8(c.a.Value()))
	} else {
		value := c.ReadWord(low, high, false)
		c.Idle()
		c.status.Z = (c.a.Value() & value) == 0
		c.WriteWord(low, high, value|c.a.Value(), true, true)
	}
}

func (c *CPU) Trb(low, high uint32) {
	if c.status.M {
		value := c.Read(low)
		c.Idle()
		c.status.Z = (uint8(c.a.Value()) & value) == 0
		c.checkInterrupts()
		c.Write(low, value&^uint8(c.a.Value()))
	} else {
		value := c.ReadWord(low, high, false)
		c.Idle()
		c.status.Z = (c.a.Value() & value) == 0
		c.WriteWord(low, high, value&^c.a.Value(), true, true)
	}
}
