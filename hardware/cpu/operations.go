// This file is part of Gopherbeeb.
//
// Gopherbeeb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbeeb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbeeb.  If not, see <https://www.gnu.org/licenses/>.

package cpu

// the operations are called by the cycle sequences at the point the
// instruction takes effect. read instructions find their operand in the data
// field. write instructions place the value to be written in the data field.
// read-modify-write instructions change the data field in place.

func (mc *CPU) nop() {
}

func (mc *CPU) adc() {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(mc.data, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(mc.data, mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) sbc() {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(mc.data, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(mc.data, mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) adcCMOS() {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimalCMOS(mc.data, mc.Status.Carry)
		return
	}
	mc.adc()
}

func (mc *CPU) sbcCMOS() {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimalCMOS(mc.data, mc.Status.Carry)
		return
	}
	mc.sbc()
}

func (mc *CPU) and() {
	mc.A.AND(mc.data)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) eor() {
	mc.A.EOR(mc.data)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) ora() {
	mc.A.ORA(mc.data)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) bit() {
	mc.Status.Zero = mc.A.Value()&mc.data == 0
	mc.Status.Sign = mc.data&0x80 == 0x80
	mc.Status.Overflow = mc.data&0x40 == 0x40
}

// the immediate form of BIT on the 65C02 only affects the zero flag
func (mc *CPU) bitImmediate() {
	mc.Status.Zero = mc.A.Value()&mc.data == 0
}

func (mc *CPU) cmp() {
	var r uint8
	mc.Status.Carry, r = mc.A.Compare(mc.data)
	mc.Status.SetZN(r)
}

func (mc *CPU) cpx() {
	var r uint8
	mc.Status.Carry, r = mc.X.Compare(mc.data)
	mc.Status.SetZN(r)
}

func (mc *CPU) cpy() {
	var r uint8
	mc.Status.Carry, r = mc.Y.Compare(mc.data)
	mc.Status.SetZN(r)
}

func (mc *CPU) lda() {
	mc.A.Load(mc.data)
	mc.Status.SetZN(mc.data)
}

func (mc *CPU) ldx() {
	mc.X.Load(mc.data)
	mc.Status.SetZN(mc.data)
}

func (mc *CPU) ldy() {
	mc.Y.Load(mc.data)
	mc.Status.SetZN(mc.data)
}

func (mc *CPU) sta() {
	mc.data = mc.A.Value()
}

func (mc *CPU) stx() {
	mc.data = mc.X.Value()
}

func (mc *CPU) sty() {
	mc.data = mc.Y.Value()
}

func (mc *CPU) stz() {
	mc.data = 0
}

func (mc *CPU) clc() { mc.Status.Carry = false }
func (mc *CPU) sec() { mc.Status.Carry = true }
func (mc *CPU) cli() { mc.Status.InterruptDisable = false }
func (mc *CPU) sei() { mc.Status.InterruptDisable = true }
func (mc *CPU) cld() { mc.Status.DecimalMode = false }
func (mc *CPU) sed() { mc.Status.DecimalMode = true }
func (mc *CPU) clv() { mc.Status.Overflow = false }

func (mc *CPU) tax() {
	mc.X.Load(mc.A.Value())
	mc.Status.SetZN(mc.X.Value())
}

func (mc *CPU) tay() {
	mc.Y.Load(mc.A.Value())
	mc.Status.SetZN(mc.Y.Value())
}

func (mc *CPU) txa() {
	mc.A.Load(mc.X.Value())
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) tya() {
	mc.A.Load(mc.Y.Value())
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) tsx() {
	mc.X.Load(mc.SP.Value())
	mc.Status.SetZN(mc.X.Value())
}

// TXS does not affect the flags
func (mc *CPU) txs() {
	mc.SP.Load(mc.X.Value())
}

func (mc *CPU) inx() {
	mc.X.Load(mc.X.Value() + 1)
	mc.Status.SetZN(mc.X.Value())
}

func (mc *CPU) iny() {
	mc.Y.Load(mc.Y.Value() + 1)
	mc.Status.SetZN(mc.Y.Value())
}

func (mc *CPU) dex() {
	mc.X.Load(mc.X.Value() - 1)
	mc.Status.SetZN(mc.X.Value())
}

func (mc *CPU) dey() {
	mc.Y.Load(mc.Y.Value() - 1)
	mc.Status.SetZN(mc.Y.Value())
}

func (mc *CPU) asl() {
	mc.acc8.Load(mc.data)
	mc.Status.Carry = mc.acc8.ASL()
	mc.data = mc.acc8.Value()
	mc.Status.SetZN(mc.data)
}

func (mc *CPU) lsr() {
	mc.acc8.Load(mc.data)
	mc.Status.Carry = mc.acc8.LSR()
	mc.data = mc.acc8.Value()
	mc.Status.SetZN(mc.data)
}

func (mc *CPU) rol() {
	mc.acc8.Load(mc.data)
	mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
	mc.data = mc.acc8.Value()
	mc.Status.SetZN(mc.data)
}

func (mc *CPU) ror() {
	mc.acc8.Load(mc.data)
	mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
	mc.data = mc.acc8.Value()
	mc.Status.SetZN(mc.data)
}

func (mc *CPU) inc() {
	mc.data++
	mc.Status.SetZN(mc.data)
}

func (mc *CPU) dec() {
	mc.data--
	mc.Status.SetZN(mc.data)
}

func (mc *CPU) trb() {
	mc.Status.Zero = mc.A.Value()&mc.data == 0
	mc.data &^= mc.A.Value()
}

func (mc *CPU) tsb() {
	mc.Status.Zero = mc.A.Value()&mc.data == 0
	mc.data |= mc.A.Value()
}

func (mc *CPU) aslA() {
	mc.Status.Carry = mc.A.ASL()
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) lsrA() {
	mc.Status.Carry = mc.A.LSR()
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) rolA() {
	mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) rorA() {
	mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) incA() {
	mc.A.Load(mc.A.Value() + 1)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) decA() {
	mc.A.Load(mc.A.Value() - 1)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) pha() {
	mc.data = mc.A.Value()
}

// PHP always pushes the flags with the B bit set
func (mc *CPU) php() {
	mc.data = mc.Status.Value()
}

func (mc *CPU) phx() {
	mc.data = mc.X.Value()
}

func (mc *CPU) phy() {
	mc.data = mc.Y.Value()
}

func (mc *CPU) pla() {
	mc.lda()
}

func (mc *CPU) plp() {
	mc.Status.FromValue(mc.data)
}

func (mc *CPU) plx() {
	mc.ldx()
}

func (mc *CPU) ply() {
	mc.ldy()
}

func (mc *CPU) bpl() { mc.branchTaken = !mc.Status.Sign }
func (mc *CPU) bmi() { mc.branchTaken = mc.Status.Sign }
func (mc *CPU) bvc() { mc.branchTaken = !mc.Status.Overflow }
func (mc *CPU) bvs() { mc.branchTaken = mc.Status.Overflow }
func (mc *CPU) bcc() { mc.branchTaken = !mc.Status.Carry }
func (mc *CPU) bcs() { mc.branchTaken = mc.Status.Carry }
func (mc *CPU) bne() { mc.branchTaken = !mc.Status.Zero }
func (mc *CPU) beq() { mc.branchTaken = mc.Status.Zero }
func (mc *CPU) bra() { mc.branchTaken = true }

// undocumented NMOS instructions. results follow the "NMOS 6510 Unintended
// Opcodes" document where the functional tests do not say otherwise

func (mc *CPU) slo() {
	mc.asl()
	mc.ora()
}

func (mc *CPU) rla() {
	mc.rol()
	mc.and()
}

func (mc *CPU) sre() {
	mc.lsr()
	mc.eor()
}

func (mc *CPU) rra() {
	mc.ror()
	mc.adc()
}

func (mc *CPU) dcp() {
	mc.data--
	mc.cmp()
}

func (mc *CPU) isc() {
	mc.data++
	mc.sbc()
}

func (mc *CPU) sax() {
	mc.data = mc.A.Value() & mc.X.Value()
}

func (mc *CPU) lax() {
	mc.lda()
	mc.X.Load(mc.data)
}

func (mc *CPU) alr() {
	mc.A.AND(mc.data)
	mc.lsrA()
}

func (mc *CPU) anc() {
	mc.and()
	mc.Status.Carry = mc.Status.Sign
}

func (mc *CPU) arr() {
	t := mc.A.Value() & mc.data

	r := t >> 1
	if mc.Status.Carry {
		r |= 0x80
	}

	if !mc.Status.DecimalMode {
		mc.A.Load(r)
		mc.Status.SetZN(r)
		mc.Status.Carry = r&0x40 == 0x40
		mc.Status.Overflow = (r^(r<<1))&0x40 == 0x40
		return
	}

	mc.Status.Sign = mc.Status.Carry
	mc.Status.Zero = r == 0
	mc.Status.Overflow = (t^r)&0x40 == 0x40

	lo := t & 0x0f
	hi := t >> 4

	if lo+(lo&1) > 5 {
		r = r&0xf0 | (r+6)&0x0f
	}

	mc.Status.Carry = hi+(hi&1) > 5
	if mc.Status.Carry {
		r += 0x60
	}

	mc.A.Load(r)
}

// the magic constant is the one most commonly seen on real hardware
const xaaMagic = 0xee

func (mc *CPU) xaa() {
	mc.A.Load((mc.A.Value() | xaaMagic) & mc.X.Value() & mc.data)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) lxa() {
	v := (mc.A.Value() | xaaMagic) & mc.data
	mc.A.Load(v)
	mc.X.Load(v)
	mc.Status.SetZN(v)
}

func (mc *CPU) axs() {
	var r uint8
	mc.acc8.Load(mc.A.Value() & mc.X.Value())
	mc.Status.Carry, r = mc.acc8.Compare(mc.data)
	mc.X.Load(r)
	mc.Status.SetZN(r)
}

func (mc *CPU) las() {
	v := mc.data & mc.SP.Value()
	mc.A.Load(v)
	mc.X.Load(v)
	mc.SP.Load(v)
	mc.Status.SetZN(v)
}

// the high byte of the base address plus one
func (mc *CPU) h1() uint8 {
	return uint8(mc.ad>>8) + 1
}

func (mc *CPU) ahx() {
	mc.data = mc.A.Value() & mc.X.Value() & mc.h1()
}

func (mc *CPU) shx() {
	mc.data = mc.X.Value() & mc.h1()
}

func (mc *CPU) shy() {
	mc.data = mc.Y.Value() & mc.h1()
}

func (mc *CPU) tas() {
	mc.SP.Load(mc.A.Value() & mc.X.Value())
	mc.data = mc.SP.Value() & mc.h1()
}
