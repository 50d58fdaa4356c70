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

// instructions with timing that doesn't fit the sequence tables

func (mc *CPU) startBRK() {
	mc.brk = true
	mc.beginSequence(seqInterrupt)
}

// relative branches take two cycles when not taken, three when taken and
// four when taken across a page boundary. the taken branch that doesn't cross
// a page does not poll for interrupts in its final cycle
func (mc *CPU) branch() {
	mc.abus = mc.PC.Increment()
	mc.read = ReadInstruction
	mc.checkForInterrupts()
	mc.tfn = (*CPU).branchOffset
}

func (mc *CPU) branchOffset() {
	mc.data = mc.dbus
	mc.ifn(mc)

	if !mc.branchTaken {
		mc.nextInstruction()
		return
	}

	mc.abus = mc.PC.Address()
	mc.read = ReadUninteresting
	mc.tfn = (*CPU).branchTaken1
}

func (mc *CPU) branchTaken1() {
	pc := mc.PC.Address()
	mc.ad = pc + uint16(int8(mc.data))

	if mc.ad&0xff00 == pc&0xff00 {
		mc.PC.Load(mc.ad)
		mc.nextInstruction()
		return
	}

	mc.PC.LoadLo(uint8(mc.ad))
	mc.abus = mc.PC.Address()
	mc.read = ReadUninteresting
	mc.checkForInterrupts()
	mc.tfn = (*CPU).branchTaken2
}

func (mc *CPU) branchTaken2() {
	mc.PC.Load(mc.ad)
	mc.nextInstruction()
}

// the Rockwell BBR and BBS instructions read the zero page value, re-read it
// and then fetch the branch offset. the branch itself is the same as for the
// relative branches
func (mc *CPU) bbx() {
	mc.abus = mc.PC.Increment()
	mc.read = ReadInstruction
	mc.tfn = (*CPU).bbxAddress
}

func (mc *CPU) bbxAddress() {
	mc.ad = uint16(mc.dbus)
	mc.abus = mc.ad
	mc.read = ReadData
	mc.tfn = (*CPU).bbxData
}

func (mc *CPU) bbxData() {
	mc.zpData = mc.dbus
	mc.abus = mc.ad
	mc.read = ReadUninteresting
	mc.tfn = (*CPU).bbxOffset
}

func (mc *CPU) bbxOffset() {
	mc.abus = mc.PC.Increment()
	mc.read = ReadInstruction
	mc.checkForInterrupts()
	mc.tfn = (*CPU).branchOffset
}

// the NMOS halt instructions lock the CPU until the next reset. the program
// counter stays on the halting opcode
func (mc *CPU) halt() {
	mc.halted = true
	mc.PC.Load(mc.opcodePC)
	mc.abus = 0xffff
	mc.read = ReadUninteresting
	mc.tfn = (*CPU).halt
}
