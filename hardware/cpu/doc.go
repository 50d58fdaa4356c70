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

// Package cpu emulates the 6502 and 65C02 microprocessors found in the BBC
// Micro family. Three variants are supported: the NMOS 6502 including the
// undocumented instructions, the CMOS 65C02 and the Rockwell 65C02 with the
// additional bit manipulation instructions.
//
// Unlike an instruction level emulation, the CPU is advanced one bus cycle at
// a time with the Step() function. Every instruction is broken into a
// sequence of cycles, each of which describes the address to put on the bus,
// whether the cycle is a read or a write, and where the data goes.
//
// The CPU does not access memory. After every call to Step() the host
// completes the bus access:
//
//	mc := cpu.NewCPU(cpu.NewConfig(instructions.CMOS))
//
//	for {
//		mc.Step()
//		if mc.Read() == cpu.Write {
//			mem[mc.ABus()] = mc.DBus()
//		} else {
//			mc.SetDBus(mem[mc.ABus()])
//		}
//	}
//
// Because the host is in control of every cycle it can stretch cycles,
// observe the type of each read (see the ReadType type) and change the
// interrupt lines between any two cycles. The BBC Micro emulation uses this
// to slow the CPU to 1MHz for accesses to some of the memory mapped devices.
//
// Interrupts are requested by devices with the SetDeviceIRQ() and
// SetDeviceNMI() functions. Each device has its own bit in the mask. IRQ is
// level triggered and NMI is edge triggered. Interrupts are polled at the
// start of the final cycle of each instruction, which reproduces the one
// instruction delay of CLI, SEI and PLP.
//
// The Config type contains the decode table for the CPU variant. A Config can
// be cloned and individual opcodes replaced with a host function. This is
// used by test programs to provide services to the emulated program.
package cpu
