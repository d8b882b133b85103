package cpu

// doOpcode dispatches a single fetched opcode byte to its addressing-mode
// calculator and operand logic. The switch mirrors the chip's own flat
// opcode table: there is no grouping by instruction family beyond what the
// table itself imposes, since several opcodes that "belong together"
// (e.g. the shift group) use different combinations of addressing modes
// per row.
func (c *CPU) doOpcode(opcode uint8) {
	switch opcode {
	case 0x00: // BRK
		c.readOpcode()
		if !c.e {
			c.PushByte(c.k.Value())
		}
		c.PushWord(c.pc.Value(), false)
		c.PushByte(c.GetFlags() | 0x10)
		c.status.I = true
		c.status.D = false
		c.k.Load(0)
		vector := uint32(0xFFE6)
		if c.e {
			vector = 0xFFFE
		}
		c.pc.Load(c.ReadWord(vector, vector+1, true))
	case 0x01:
		low, high := c.AdrIdx()
		c.Ora(low, high)
	case 0x02: // COP
		c.readOpcode()
		if !c.e {
			c.PushByte(c.k.Value())
		}
		c.PushWord(c.pc.Value(), false)
		c.PushByte(c.GetFlags())
		c.status.I = true
		c.status.D = false
		c.k.Load(0)
		vectorL, vectorH := uint32(0xffe4), uint32(0xffe5)
		if c.e {
			vectorL, vectorH = 0xfff4, 0xfff5
		}
		c.pc.Load(c.ReadWord(vectorL, vectorH, true))
	case 0x03:
		low, high := c.AdrSr()
		c.Ora(low, high)
	case 0x04:
		low, high := c.AdrDp()
		c.Tsb(low, high)
	case 0x05:
		low, high := c.AdrDp()
		c.Ora(low, high)
	case 0x06:
		low, high := c.AdrDp()
		c.Asl(low, high)
	case 0x07:
		low, high := c.AdrIdl()
		c.Ora(low, high)
	case 0x08: // PHP
		c.AdrImp()
		c.PushByte(c.GetFlags())
	case 0x09:
		low, high := c.AdrImm(false)
		c.Ora(low, high)
	case 0x0a: // ASL A
		c.AdrImp()
		if c.status.M {
			c.status.C = c.a.Value()&0x80 != 0
			c.a.LoadLow(uint8(c.a.Value() << 1))
		} else {
			c.status.C = c.a.Value()&0x8000 != 0
			c.a.Load(c.a.Value() << 1)
		}
		c.SetZnFlags(c.a.Value(), c.status.M)
	case 0x0b: // PHD
		c.AdrImp()
		c.PushWord(c.dp.Value(), true)
	case 0x0c:
		low, high := c.AdrAbs()
		c.Tsb(low, high)
	case 0x0d:
		low, high := c.AdrAbs()
		c.Ora(low, high)
	case 0x0e:
		low, high := c.AdrAbs()
		c.Asl(low, high)
	case 0x0f:
		low, high := c.AdrAbl()
		c.Ora(low, high)
	case 0x10:
		c.DoBranch(!c.status.N)
	case 0x11:
		low, high := c.AdrIdy(false)
		c.Ora(low, high)
	case 0x12:
		low, high := c.AdrIdp()
		c.Ora(low, high)
	case 0x13:
		low, high := c.AdrIsy()
		c.Ora(low, high)
	case 0x14:
		low, high := c.AdrDp()
		c.Trb(low, high)
	case 0x15:
		low, high := c.AdrDpx()
		c.Ora(low, high)
	case 0x16:
		low, high := c.AdrDpx()
		c.Asl(low, high)
	case 0x17:
		low, high := c.AdrIly()
		c.Ora(low, high)
	case 0x18: // CLC
		c.AdrImp()
		c.status.C = false
	case 0x19:
		low, high := c.AdrAby(false)
		c.Ora(low, high)
	case 0x1a: // INC A
		c.AdrImp()
		if c.status.M {
			c.a.LoadLow(uint8(c.a.Value() + 1))
		} else {
			c.a.Add(1)
		}
		c.SetZnFlags(c.a.Value(), c.status.M)
	case 0x1b: // TCS
		c.AdrImp()
		c.sp.Load(c.a.Value())
		if c.e {
			c.sp.Load((c.sp.Value() & 0xff) | 0x100)
		}
	case 0x1c:
		low, high := c.AdrAbs()
		c.Trb(low, high)
	case 0x1d:
		low, high := c.AdrAbx(false)
		c.Ora(low, high)
	case 0x1e:
		low, high := c.AdrAbx(true)
		c.Asl(low, high)
	case 0x1f:
		low, high := c.AdrAlx()
		c.Ora(low, high)
	case 0x20: // JSR abs
		value := c.ReadOpcodeWord(false)
		c.Idle()
		c.PushWord(c.pc.Value()-1, true)
		c.pc.Load(value)
	case 0x21:
		low, high := c.AdrIdx()
		c.And(low, high)
	case 0x22: // JSL
		value := uint32(c.ReadOpcodeWord(false))
		value |= uint32(c.readOpcode()) << 16
		c.PushByte(c.k.Value())
		c.Idle()
		c.PushWord(c.pc.Value()-1, true)
		c.k.Load(uint8(value >> 16))
		c.pc.Load(uint16(value))
	case 0x23:
		low, high := c.AdrSr()
		c.And(low, high)
	case 0x24:
		low, high := c.AdrDp()
		c.Bit(low, high)
	case 0x25:
		low, high := c.AdrDp()
		c.And(low, high)
	case 0x26:
		low, high := c.AdrDp()
		c.Rol(low, high)
	case 0x27:
		low, high := c.AdrIdl()
		c.And(low, high)
	case 0x28: // PLP
		c.AdrImp()
		c.Idle()
		c.SetFlags(c.PullByte())
	case 0x29:
		low, high := c.AdrImm(false)
		c.And(low, high)
	case 0x2a: // ROL A
		c.AdrImp()
		result := (uint32(c.a.Value()) << 1) | uint32(boolToU16(c.status.C))
		if c.status.M {
			c.status.C = result&0x100 != 0
			c.a.LoadLow(uint8(result))
		} else {
			c.status.C = result&0x10000 != 0
			c.a.Load(uint16(result))
		}
		c.SetZnFlags(c.a.Value(), c.status.M)
	case 0x2b: // PLD
		c.AdrImp()
		c.Idle()
		c.dp.Load(c.PullWord(true))
		c.SetZnFlags(c.dp.Value(), false)
	case 0x2c:
		low, high := c.AdrAbs()
		c.Bit(low, high)
	case 0x2d:
		low, high := c.AdrAbs()
		c.And(low, high)
	case 0x2e:
		low, high := c.AdrAbs()
		c.Rol(low, high)
	case 0x2f:
		low, high := c.AdrAbl()
		c.And(low, high)
	case 0x30:
		c.DoBranch(c.status.N)
	case 0x31:
		low, high := c.AdrIdy(false)
		c.And(low, high)
	case 0x32:
		low, high := c.AdrIdp()
		c.And(low, high)
	case 0x33:
		low, high := c.AdrIsy()
		c.And(low, high)
	case 0x34:
		low, high := c.AdrDpx()
		c.Bit(low, high)
	case 0x35:
		low, high := c.AdrDpx()
		c.And(low, high)
	case 0x36:
		low, high := c.AdrDpx()
		c.Rol(low, high)
	case 0x37:
		low, high := c.AdrIly()
		c.And(low, high)
	case 0x38: // SEC
		c.AdrImp()
		c.status.C = true
	case 0x39:
		low, high := c.AdrAby(false)
		c.And(low, high)
	case 0x3a: // DEC A
		c.AdrImp()
		if c.status.M {
			c.a.LoadLow(uint8(c.a.Value() - 1))
		} else {
			c.a.Add(0xffff)
		}
		c.SetZnFlags(c.a.Value(), c.status.M)
	case 0x3b: // TSC
		c.AdrImp()
		c.a.Load(c.sp.Value())
		c.SetZnFlags(c.a.Value(), false)
	case 0x3c:
		low, high := c.AdrAbx(false)
		c.Bit(low, high)
	case 0x3d:
		low, high := c.AdrAbx(false)
		c.And(low, high)
	case 0x3e:
		low, high := c.AdrAbx(true)
		c.Rol(low, high)
	case 0x3f:
		low, high := c.AdrAlx()
		c.And(low, high)
	case 0x40: // RTI
		c.AdrImp()
		c.Idle()
		c.SetFlags(c.PullByte())
		c.pc.Load(c.PullWord(false))
		if !c.e {
			c.k.Load(c.PullByte())
		}
	case 0x41:
		low, high := c.AdrIdx()
		c.Eor(low, high)
	case 0x42: // WDM
		c.readOpcode()
	case 0x43:
		low, high := c.AdrSr()
		c.Eor(low, high)
	case 0x44: // MVP
		dest := c.readOpcode()
		src := c.readOpcode()
		c.db.Load(dest)
		c.Write((uint32(dest)<<16)|uint32(c.y.Value()), c.Read((uint32(src)<<16)|uint32(c.x.Value())))
		c.a.Add(0xffff)
		c.x.Add(0xffff)
		c.y.Add(0xffff)
		if c.a.Value() != 0xffff {
			c.pc.Add(0xfffd) // pc -= 3
		}
		if c.status.Xf {
			c.x.MaskHigh()
			c.y.MaskHigh()
		}
		c.Idle()
		c.checkInterrupts()
		c.Idle()
	case 0x45:
		low, high := c.AdrDp()
		c.Eor(low, high)
	case 0x46:
		low, high := c.AdrDp()
		c.Lsr(low, high)
	case 0x47:
		low, high := c.AdrIdl()
		c.Eor(low, high)
	case 0x48: // PHA
		c.AdrImp()
		if c.status.M {
			c.PushByte(uint8(c.a.Value()))
		} else {
			c.PushWord(c.a.Value(), true)
		}
	case 0x49:
		low, high := c.AdrImm(false)
		c.Eor(low, high)
	case 0x4a: // LSR A
		c.AdrImp()
		c.status.C = c.a.Value()&1 != 0
		if c.status.M {
			c.a.LoadLow(uint8((c.a.Value() >> 1) & 0x7f))
		} else {
			c.a.Load(c.a.Value() >> 1)
		}
		c.SetZnFlags(c.a.Value(), c.status.M)
	case 0x4b: // PHK
		c.AdrImp()
		c.PushByte(c.k.Value())
	case 0x4c: // JMP abs
		c.pc.Load(c.ReadOpcodeWord(true))
	case 0x4d:
		low, high := c.AdrAbs()
		c.Eor(low, high)
	case 0x4e:
		low, high := c.AdrAbs()
		c.Lsr(low, high)
	case 0x4f:
		low, high := c.AdrAbl()
		c.Eor(low, high)
	case 0x50:
		c.DoBranch(!c.status.V)
	case 0x51:
		low, high := c.AdrIdy(false)
		c.Eor(low, high)
	case 0x52:
		low, high := c.AdrIdp()
		c.Eor(low, high)
	case 0x53:
		low, high := c.AdrIsy()
		c.Eor(low, high)
	case 0x54: // MVN
		dest := c.readOpcode()
		src := c.readOpcode()
		c.db.Load(dest)
		c.Write((uint32(dest)<<16)|uint32(c.y.Value()), c.Read((uint32(src)<<16)|uint32(c.x.Value())))
		c.a.Add(0xffff)
		c.x.Add(1)
		c.y.Add(1)
		if c.a.Value() != 0xffff {
			c.pc.Add(0xfffd)
		}
		if c.status.Xf {
			c.x.MaskHigh()
			c.y.MaskHigh()
		}
		c.Idle()
		c.checkInterrupts()
		c.Idle()
	case 0x55:
		low, high := c.AdrDpx()
		c.Eor(low, high)
	case 0x56:
		low, high := c.AdrDpx()
		c.Lsr(low, high)
	case 0x57:
		low, high := c.AdrIly()
		c.Eor(low, high)
	case 0x58: // CLI
		c.AdrImp()
		c.status.I = false
	case 0x59:
		low, high := c.AdrAby(false)
		c.Eor(low, high)
	case 0x5a: // PHY
		c.AdrImp()
		if c.status.Xf {
			c.PushByte(uint8(c.y.Value()))
		} else {
			c.PushWord(c.y.Value(), true)
		}
	case 0x5b: // TCD
		c.AdrImp()
		c.dp.Load(c.a.Value())
		c.SetZnFlags(c.dp.Value(), false)
	case 0x5c: // JML abs long
		value := c.ReadOpcodeWord(false)
		c.checkInterrupts()
		c.k.Load(c.readOpcode())
		c.pc.Load(value)
	case 0x5d:
		low, high := c.AdrAbx(false)
		c.Eor(low, high)
	case 0x5e:
		low, high := c.AdrAbx(true)
		c.Lsr(low, high)
	case 0x5f:
		low, high := c.AdrAlx()
		c.Eor(low, high)
	case 0x60: // RTS
		c.Idle()
		c.Idle()
		c.pc.Load(c.PullWord(false) + 1)
		c.checkInterrupts()
		c.Idle()
	case 0x61:
		low, high := c.AdrIdx()
		c.Adc(low, high)
	case 0x62: // PER
		value := c.ReadOpcodeWord(false)
		c.Idle()
		c.PushWord(c.pc.Value()+value, true)
	case 0x63:
		low, high := c.AdrSr()
		c.Adc(low, high)
	case 0x64:
		low, high := c.AdrDp()
		c.Stz(low, high)
	case 0x65:
		low, high := c.AdrDp()
		c.Adc(low, high)
	case 0x66:
		low, high := c.AdrDp()
		c.Ror(low, high)
	case 0x67:
		low, high := c.AdrIdl()
		c.Adc(low, high)
	case 0x68: // PLA
		c.AdrImp()
		c.Idle()
		if c.status.M {
			c.a.LoadLow(c.PullByte())
		} else {
			c.a.Load(c.PullWord(true))
		}
		c.SetZnFlags(c.a.Value(), c.status.M)
	case 0x69:
		low, high := c.AdrImm(false)
		c.Adc(low, high)
	case 0x6a: // ROR A
		c.AdrImp()
		carry := c.a.Value()&1 != 0
		if c.status.M {
			c.a.LoadLow(uint8((c.a.Value()>>1)&0x7f) | uint8(boolToU16(c.status.C)<<7))
		} else {
			c.a.Load((c.a.Value() >> 1) | (boolToU16(c.status.C) << 15))
		}
		c.status.C = carry
		c.SetZnFlags(c.a.Value(), c.status.M)
	case 0x6b: // RTL
		c.Idle()
		c.Idle()
		c.pc.Load(c.PullWord(false) + 1)
		c.checkInterrupts()
		c.k.Load(c.PullByte())
	case 0x6c: // JMP (abs)
		adr := c.ReadOpcodeWord(false)
		var adrH uint16
		if c.e && adr&0xff == 0xff {
			adrH = adr & 0xff00
		} else {
			adrH = adr + 1
		}
		c.pc.Load(c.ReadWord(uint32(adr), uint32(adrH), true))
	case 0x6d:
		low, high := c.AdrAbs()
		c.Adc(low, high)
	case 0x6e:
		low, high := c.AdrAbs()
		c.Ror(low, high)
	case 0x6f:
		low, high := c.AdrAbl()
		c.Adc(low, high)
	case 0x70:
		c.DoBranch(c.status.V)
	case 0x71:
		low, high := c.AdrIdy(false)
		c.Adc(low, high)
	case 0x72:
		low, high := c.AdrIdp()
		c.Adc(low, high)
	case 0x73:
		low, high := c.AdrIsy()
		c.Adc(low, high)
	case 0x74:
		low, high := c.AdrDpx()
		c.Stz(low, high)
	case 0x75:
		low, high := c.AdrDpx()
		c.Adc(low, high)
	case 0x76:
		low, high := c.AdrDpx()
		c.Ror(low, high)
	case 0x77:
		low, high := c.AdrIly()
		c.Adc(low, high)
	case 0x78: // SEI
		c.AdrImp()
		c.status.I = true
	case 0x79:
		low, high := c.AdrAby(false)
		c.Adc(low, high)
	case 0x7a: // PLY
		c.AdrImp()
		c.Idle()
		if c.status.Xf {
			c.y.Load(uint16(c.PullByte()))
		} else {
			c.y.Load(c.PullWord(true))
		}
		c.SetZnFlags(c.y.Value(), c.status.Xf)
	case 0x7b: // TDC
		c.AdrImp()
		c.a.Load(c.dp.Value())
		c.SetZnFlags(c.a.Value(), false)
	case 0x7c: // JMP (abs,X)
		adr := c.ReadOpcodeWord(false)
		c.Idle()
		base := (uint32(c.k.Value()) << 16) | uint32(adr)
		c.pc.Load(c.ReadWord(base+uint32(c.x.Value()), base+uint32(c.x.Value())+1, true))
	case 0x7d:
		low, high := c.AdrAbx(false)
		c.Adc(low, high)
	case 0x7e:
		low, high := c.AdrAbx(true)
		c.Ror(low, high)
	case 0x7f:
		low, high := c.AdrAlx()
		c.Adc(low, high)
	case 0x80: // BRA
		c.DoBranch(true)
	case 0x81:
		low, high := c.AdrIdx()
		c.Sta(low, high)
	case 0x82: // BRL
		c.pc.Add(c.ReadOpcodeWord(false))
		c.checkInterrupts()
		c.Idle()
	case 0x83:
		low, high := c.AdrSr()
		c.Sta(low, high)
	case 0x84:
		low, high := c.AdrDp()
		c.Sty(low, high)
	case 0x85:
		low, high := c.AdrDp()
		c.Sta(low, high)
	case 0x86:
		low, high := c.AdrDp()
		c.Stx(low, high)
	case 0x87:
		low, high := c.AdrIdl()
		c.Sta(low, high)
	case 0x88: // DEY
		c.AdrImp()
		if c.status.Xf {
			c.y.Load((c.y.Value() - 1) & 0xff)
		} else {
			c.y.Add(0xffff)
		}
		c.SetZnFlags(c.y.Value(), c.status.Xf)
	case 0x89: // BIT imm
		if c.status.M {
			c.checkInterrupts()
			c.status.Z = (uint8(c.a.Value()) & c.readOpcode()) == 0
		} else {
			c.status.Z = (c.a.Value() & c.ReadOpcodeWord(true)) == 0
		}
	case 0x8a: // TXA
		c.AdrImp()
		if c.status.M {
			c.a.LoadLow(uint8(c.x.Value()))
		} else {
			c.a.Load(c.x.Value())
		}
		c.SetZnFlags(c.a.Value(), c.status.M)
	case 0x8b: // PHB
		c.AdrImp()
		c.PushByte(c.db.Value())
	case 0x8c:
		low, high := c.AdrAbs()
		c.Sty(low, high)
	case 0x8d:
		low, high := c.AdrAbs()
		c.Sta(low, high)
	case 0x8e:
		low, high := c.AdrAbs()
		c.Stx(low, high)
	case 0x8f:
		low, high := c.AdrAbl()
		c.Sta(low, high)
	case 0x90:
		c.DoBranch(!c.status.C)
	case 0x91:
		low, high := c.AdrIdy(true)
		c.Sta(low, high)
	case 0x92:
		low, high := c.AdrIdp()
		c.Sta(low, high)
	case 0x93:
		low, high := c.AdrIsy()
		c.Sta(low, high)
	case 0x94:
		low, high := c.AdrDpx()
		c.Sty(low, high)
	case 0x95:
		low, high := c.AdrDpx()
		c.Sta(low, high)
	case 0x96:
		low, high := c.AdrDpy()
		c.Stx(low, high)
	case 0x97:
		low, high := c.AdrIly()
		c.Sta(low, high)
	case 0x98: // TYA
		c.AdrImp()
		if c.status.M {
			c.a.LoadLow(uint8(c.y.Value()))
		} else {
			c.a.Load(c.y.Value())
		}
		c.SetZnFlags(c.a.Value(), c.status.M)
	case 0x99:
		low, high := c.AdrAby(true)
		c.Sta(low, high)
	case 0x9a: // TXS
		c.AdrImp()
		if c.e {
			c.sp.Load((c.sp.Value() & 0xff00) | (c.x.Value() & 0x00ff))
		} else {
			c.sp.Load(c.x.Value())
		}
	case 0x9b: // TXY
		c.AdrImp()
		if c.status.Xf {
			c.y.Load(c.x.Value() & 0xff)
		} else {
			c.y.Load(c.x.Value())
		}
		c.SetZnFlags(c.y.Value(), c.status.Xf)
	case 0x9c:
		low, high := c.AdrAbs()
		c.Stz(low, high)
	case 0x9d:
		low, high := c.AdrAbx(true)
		c.Sta(low, high)
	case 0x9e:
		low, high := c.AdrAbx(true)
		c.Stz(low, high)
	case 0x9f:
		low, high := c.AdrAlx()
		c.Sta(low, high)
	case 0xa0:
		low, high := c.AdrImm(true)
		c.Ldy(low, high)
	case 0xa1:
		low, high := c.AdrIdx()
		c.Lda(low, high)
	case 0xa2:
		low, high := c.AdrImm(true)
		c.Ldx(low, high)
	case 0xa3:
		low, high := c.AdrSr()
		c.Lda(low, high)
	case 0xa4:
		low, high := c.AdrDp()
		c.Ldy(low, high)
	case 0xa5:
		low, high := c.AdrDp()
		c.Lda(low, high)
	case 0xa6:
		low, high := c.AdrDp()
		c.Ldx(low, high)
	case 0xa7:
		low, high := c.AdrIdl()
		c.Lda(low, high)
	case 0xa8: // TAY
		c.AdrImp()
		if c.status.Xf {
			c.y.Load(c.a.Value() & 0xff)
		} else {
			c.y.Load(c.a.Value())
		}
		c.SetZnFlags(c.y.Value(), c.status.Xf)
	case 0xa9:
		low, high := c.AdrImm(false)
		c.Lda(low, high)
	case 0xaa: // TAX
		c.AdrImp()
		if c.status.Xf {
			c.x.Load(c.a.Value() & 0xff)
		} else {
			c.x.Load(c.a.Value())
		}
		c.SetZnFlags(c.x.Value(), c.status.Xf)
	case 0xab: // PLB
		c.AdrImp()
		c.Idle()
		c.db.Load(c.PullByte())
		c.SetZnFlags(uint16(c.db.Value()), true)
	case 0xac:
		low, high := c.AdrAbs()
		c.Ldy(low, high)
	case 0xad:
		low, high := c.AdrAbs()
		c.Lda(low, high)
	case 0xae:
		low, high := c.AdrAbs()
		c.Ldx(low, high)
	case 0xaf:
		low, high := c.AdrAbl()
		c.Lda(low, high)
	case 0xb0:
		c.DoBranch(c.status.C)
	case 0xb1:
		low, high := c.AdrIdy(false)
		c.Lda(low, high)
	case 0xb2:
		low, high := c.AdrIdp()
		c.Lda(low, high)
	case 0xb3:
		low, high := c.AdrIsy()
		c.Lda(low, high)
	case 0xb4:
		low, high := c.AdrDpx()
		c.Ldy(low, high)
	case 0xb5:
		low, high := c.AdrDpx()
		c.Lda(low, high)
	case 0xb6:
		low, high := c.AdrDpy()
		c.Ldx(low, high)
	case 0xb7:
		low, high := c.AdrIly()
		c.Lda(low, high)
	case 0xb8: // CLV
		c.AdrImp()
		c.status.V = false
	case 0xb9:
		low, high := c.AdrAby(false)
		c.Lda(low, high)
	case 0xba: // TSX
		c.AdrImp()
		if c.status.Xf {
			c.x.Load(c.sp.Value() & 0xff)
		} else {
			c.x.Load(c.sp.Value())
		}
		c.SetZnFlags(c.x.Value(), c.status.Xf)
	case 0xbb: // TYX
		c.AdrImp()
		if c.status.Xf {
			c.x.Load(c.y.Value() & 0xff)
		} else {
			c.x.Load(c.y.Value())
		}
		c.SetZnFlags(c.x.Value(), c.status.Xf)
	case 0xbc:
		low, high := c.AdrAbx(false)
		c.Ldy(low, high)
	case 0xbd:
		low, high := c.AdrAbx(false)
		c.Lda(low, high)
	case 0xbe:
		low, high := c.AdrAby(false)
		c.Ldx(low, high)
	case 0xbf:
		low, high := c.AdrAlx()
		c.Lda(low, high)
	case 0xc0:
		low, high := c.AdrImm(true)
		c.Cpy(low, high)
	case 0xc1:
		low, high := c.AdrIdx()
		c.Cmp(low, high)
	case 0xc2: // REP
		valToClear := c.readOpcode()
		c.checkInterrupts()
		if c.e {
			valToClear &^= 0x30
		}
		c.SetFlags(c.GetFlags() &^ valToClear)
		c.Idle()
	case 0xc3:
		low, high := c.AdrSr()
		c.Cmp(low, high)
	case 0xc4:
		low, high := c.AdrDp()
		c.Cpy(low, high)
	case 0xc5:
		low, high := c.AdrDp()
		c.Cmp(low, high)
	case 0xc6:
		low, high := c.AdrDp()
		c.Dec(low, high)
	case 0xc7:
		low, high := c.AdrIdl()
		c.Cmp(low, high)
	case 0xc8: // INY
		c.AdrImp()
		if c.status.Xf {
			c.y.Load((c.y.Value() + 1) & 0xff)
		} else {
			c.y.Add(1)
		}
		c.SetZnFlags(c.y.Value(), c.status.Xf)
	case 0xc9:
		low, high := c.AdrImm(false)
		c.Cmp(low, high)
	case 0xca: // DEX
		c.AdrImp()
		if c.status.Xf {
			c.x.Load((c.x.Value() - 1) & 0xff)
		} else {
			c.x.Add(0xffff)
		}
		c.SetZnFlags(c.x.Value(), c.status.Xf)
	case 0xcb: // WAI
		c.waiting = true
		c.Idle()
		c.Idle()
	case 0xcc:
		low, high := c.AdrAbs()
		c.Cpy(low, high)
	case 0xcd:
		low, high := c.AdrAbs()
		c.Cmp(low, high)
	case 0xce:
		low, high := c.AdrAbs()
		c.Dec(low, high)
	case 0xcf:
		low, high := c.AdrAbl()
		c.Cmp(low, high)
	case 0xd0:
		c.DoBranch(!c.status.Z)
	case 0xd1:
		low, high := c.AdrIdy(false)
		c.Cmp(low, high)
	case 0xd2:
		low, high := c.AdrIdp()
		c.Cmp(low, high)
	case 0xd3:
		low, high := c.AdrIsy()
		c.Cmp(low, high)
	case 0xd4: // PEI
		low, high := c.AdrDp()
		c.PushWord(c.ReadWord(low, high, false), true)
	case 0xd5:
		low, high := c.AdrDpx()
		c.Cmp(low, high)
	case 0xd6:
		low, high := c.AdrDpx()
		c.Dec(low, high)
	case 0xd7:
		low, high := c.AdrIly()
		c.Cmp(low, high)
	case 0xd8: // CLD
		c.AdrImp()
		c.status.D = false
	case 0xd9:
		low, high := c.AdrAby(false)
		c.Cmp(low, high)
	case 0xda: // PHX
		c.AdrImp()
		if c.status.Xf {
			c.PushByte(uint8(c.x.Value()))
		} else {
			c.PushWord(c.x.Value(), true)
		}
	case 0xdb: // STP
		c.stopped = true
		c.Idle()
		c.Idle()
	case 0xdc: // JML [abs]
		adr := c.ReadOpcodeWord(false)
		c.pc.Load(c.ReadWord(uint32(adr), uint32((adr+1)&0xffff), false))
		c.checkInterrupts()
		c.k.Load(c.Read(uint32((adr + 2) & 0xffff)))
	case 0xdd:
		low, high := c.AdrAbx(false)
		c.Cmp(low, high)
	case 0xde:
		low, high := c.AdrAbx(true)
		c.Dec(low, high)
	case 0xdf:
		low, high := c.AdrAlx()
		c.Cmp(low, high)
	case 0xe0:
		low, high := c.AdrImm(true)
		c.Cpx(low, high)
	case 0xe1:
		low, high := c.AdrIdx()
		c.Sbc(low, high)
	case 0xe2: // SEP
		val := c.readOpcode()
		c.checkInterrupts()
		if c.e {
			val &^= 0x30
		}
		c.SetFlags(c.GetFlags() | val)
		c.Idle()
	case 0xe3:
		low, high := c.AdrSr()
		c.Sbc(low, high)
	case 0xe4:
		low, high := c.AdrDp()
		c.Cpx(low, high)
	case 0xe5:
		low, high := c.AdrDp()
		c.Sbc(low, high)
	case 0xe6:
		low, high := c.AdrDp()
		c.Inc(low, high)
	case 0xe7:
		low, high := c.AdrIdl()
		c.Sbc(low, high)
	case 0xe8: // INX
		c.AdrImp()
		if c.status.Xf {
			c.x.Load((c.x.Value() + 1) & 0xff)
		} else {
			c.x.Add(1)
		}
		c.SetZnFlags(c.x.Value(), c.status.Xf)
	case 0xe9:
		low, high := c.AdrImm(false)
		c.Sbc(low, high)
	case 0xea: // NOP
		c.AdrImp()
	case 0xeb: // XBA
		c.AdrImp()
		high := uint8(c.a.Value() >> 8)
		c.a.Load((c.a.Value() << 8) | uint16(high))
		c.SetZnFlags(c.a.Value(), true)
	case 0xec:
		low, high := c.AdrAbs()
		c.Cpx(low, high)
	case 0xed:
		low, high := c.AdrAbs()
		c.Sbc(low, high)
	case 0xee:
		low, high := c.AdrAbs()
		c.Inc(low, high)
	case 0xef:
		low, high := c.AdrAbl()
		c.Sbc(low, high)
	case 0xf0:
		c.DoBranch(c.status.Z)
	case 0xf1:
		low, high := c.AdrIdy(false)
		c.Sbc(low, high)
	case 0xf2:
		low, high := c.AdrIdp()
		c.Sbc(low, high)
	case 0xf3:
		low, high := c.AdrIsy()
		c.Sbc(low, high)
	case 0xf4: // PEA
		c.PushWord(c.ReadOpcodeWord(false), true)
	case 0xf5:
		low, high := c.AdrDpx()
		c.Sbc(low, high)
	case 0xf6:
		low, high := c.AdrDpx()
		c.Inc(low, high)
	case 0xf7:
		low, high := c.AdrIly()
		c.Sbc(low, high)
	case 0xf8: // SED
		c.AdrImp()
		c.status.D = true
	case 0xf9:
		low, high := c.AdrAby(false)
		c.Sbc(low, high)
	case 0xfa: // PLX
		c.AdrImp()
		c.Idle()
		if c.status.Xf {
			c.x.Load(uint16(c.PullByte()))
		} else {
			c.x.Load(c.PullWord(true))
		}
		c.SetZnFlags(c.x.Value(), c.status.Xf)
	case 0xfb: // XCE
		c.AdrImp()
		oldE := c.e
		c.e, c.status.C = c.status.C, oldE
		if c.e != oldE {
			if c.e {
				c.status.M = true
				c.status.Xf = true
				c.sp.Load((c.sp.Value() & 0x00ff) | 0x0100)
				c.x.MaskHigh()
				c.y.MaskHigh()
			} else {
				c.status.M = false
				c.status.Xf = false
			}
		}
	case 0xfc: // JSR (abs,X)
		adr := c.ReadOpcodeWord(false)
		c.PushWord(c.pc.Value()-1, false)
		c.Idle()
		base := (uint32(c.k.Value()) << 16) | uint32(adr)
		c.pc.Load(c.ReadWord(base+uint32(c.x.Value()), base+uint32(c.x.Value())+1, true))
	case 0xfd:
		low, high := c.AdrAbx(false)
		c.Sbc(low, high)
	case 0xfe:
		low, high := c.AdrAbx(true)
		c.Inc(low, high)
	case 0xff:
		low, high := c.AdrAlx()
		c.Sbc(low, high)
	default:
		c.AdrImp()
	}
}
