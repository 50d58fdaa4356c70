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

package registers

// the decimal functions return information about the zero and sign bits in
// addition to the carry and overflow. the cpu uses these values to set the
// status flags directly. this is different to binary addition/subtraction
// which only returns information for the carry and overflow flags.
//
// the NMOS versions reproduce the flag behaviour described in "Flags on
// Decimal mode in the NMOS 6502" by Jorge Cwik. the CMOS versions are
// modelled on results captured from a real 65C02.

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// AddDecimal adds value to register as though both values are BCD, in the
// manner of the NMOS 6502. Returns new carry, zero, overflow and sign states.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	a := int(r.value)
	b := int(val)
	c := bit(carry)

	// "The Z flag is computed before performing any decimal adjust."
	zero = uint8(a+b+c) == 0

	al := (a & 0x0f) + (b & 0x0f) + c
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}

	// "The N and V flags are computed after a decimal adjust of the low
	// nibble, but before adjusting the high nibble."
	tmp := (a & 0xf0) + (b & 0xf0) + al
	sign = tmp&0x80 == 0x80
	overflow = (a^tmp)&^(a^b)&0x80 == 0x80

	if tmp >= 0xa0 {
		tmp += 0x60
	}
	rcarry = tmp >= 0x100

	r.value = uint8(tmp)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both values are
// BCD, in the manner of the NMOS 6502. All flags are the same as for the
// binary subtraction. Returns new carry, zero, overflow and sign states.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	a := int(r.value)
	b := int(val)
	c := bit(carry)

	bin := r.value - val - uint8(1-c)
	rcarry = a-b-(1-c) >= 0
	zero = bin == 0
	sign = bin&0x80 == 0x80
	overflow = (a^b)&(a^int(bin))&0x80 == 0x80

	al := (a & 0x0f) - (b & 0x0f) + c - 1
	if al < 0 {
		al = ((al - 0x06) & 0x0f) - 0x10
	}

	tmp := (a & 0xf0) - (b & 0xf0) + al
	if tmp < 0 {
		tmp -= 0x60
	}

	r.value = uint8(tmp)

	return rcarry, zero, overflow, sign
}

// AddDecimalCMOS adds value to register as though both values are BCD, in
// the manner of the 65C02. The zero and sign flags are valid for the decimal
// result. Returns new carry, zero, overflow and sign states.
func (r *Register) AddDecimalCMOS(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	a := int(r.value)
	b := int(val)

	tmp := (a & 0x0f) + (b & 0x0f) + bit(carry)
	if tmp > 9 {
		tmp += 6
	}

	if tmp <= 0x0f {
		tmp = (tmp & 0x0f) + (a & 0xf0) + (b & 0xf0)
	} else {
		tmp = (tmp & 0x0f) + (a & 0xf0) + (b & 0xf0) + 0x10
	}

	overflow = (a^tmp)&^(a^b)&0x80 == 0x80

	if tmp&0x1f0 > 0x90 {
		tmp += 0x60
		rcarry = true
	}

	r.value = uint8(tmp)

	return rcarry, r.value == 0, overflow, r.IsNegative()
}

// SubtractDecimalCMOS subtracts value from register as though both values
// are BCD, in the manner of the 65C02. The zero and sign flags are valid for
// the decimal result. Returns new carry, zero, overflow and sign states.
func (r *Register) SubtractDecimalCMOS(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	a := int(r.value)
	b := int(val)
	borrow := 1 - bit(carry)

	al := (a & 0x0f) - (b & 0x0f) - borrow
	tmp := a - b - borrow

	overflow = (a^b)&(a^(tmp&0xff))&0x80 == 0x80
	rcarry = tmp >= 0

	if tmp < 0 {
		tmp -= 0x60
	}
	if al < 0 {
		tmp -= 0x06
	}

	r.value = uint8(tmp)

	return rcarry, r.value == 0, overflow, r.IsNegative()
}
