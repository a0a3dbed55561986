// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package cpu implements the CHIP-8 interpreter loop: fetch, decode and
// execute.
//
// One call to Step() executes exactly one instruction. The decode stage is
// delegated to the instructions package; everything the instruction touches
// (memory, display, keypad, timers) is reached through the references given
// to NewCPU().
//
// The instruction set has no notion of an illegal instruction trap. Opcodes
// with no decoding execute as no-ops and the program counter moves on. What
// the CPU does fault on is resource exhaustion: subroutine calls nested more
// than StackDepth deep, returns with no call outstanding, and memory access
// outside of the 4096 byte space. The instruction set references leave these
// conditions undefined so a choice had to be made - this implementation
// fails the Step() rather than silently corrupting machine state.
package cpu

import (
	"fmt"
	"strings"

	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/hardware/cpu/instructions"
	"github.com/hazzlik/gopher8/hardware/input"
	"github.com/hazzlik/gopher8/hardware/memory"
	"github.com/hazzlik/gopher8/hardware/timer"
	"github.com/hazzlik/gopher8/hardware/video"
	"github.com/hazzlik/gopher8/random"
)

// NumRegisters is the number of general purpose registers. The last
// register, VF, doubles as the flag register for the arithmetic, shift and
// draw instructions.
const NumRegisters = 16

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Sentinal errors returned by Step().
const (
	StackOverflow  = "cpu: stack overflow (more than 16 nested subroutine calls)"
	StackUnderflow = "cpu: stack underflow (return with no subroutine call outstanding)"
)

// CPU implements the CHIP-8 interpreter.
type CPU struct {
	V  [NumRegisters]uint8
	I  uint16
	PC uint16

	Stack [StackDepth]uint16
	SP    uint8

	// LastResult is the most recently executed instruction. used by the
	// debugger's step display
	LastResult instructions.Instruction

	mem    *memory.Memory
	vid    *video.Video
	keypad *input.Keypad
	tmr    *timer.Timer
	rnd    *random.Random
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory, vid *video.Video, keypad *input.Keypad, tmr *timer.Timer, rnd *random.Random) *CPU {
	cpu := &CPU{
		mem:    mem,
		vid:    vid,
		keypad: keypad,
		tmr:    tmr,
		rnd:    rnd,
	}
	cpu.Reset()
	return cpu
}

// Reset the CPU. All registers are zeroed and the program counter is set to
// the cartridge origin. The memory, display, keypad and timers attached to
// the CPU are not touched; resetting the machine as a whole is the job of
// the hardware package.
func (cpu *CPU) Reset() {
	for i := range cpu.V {
		cpu.V[i] = 0
	}
	for i := range cpu.Stack {
		cpu.Stack[i] = 0
	}
	cpu.I = 0
	cpu.PC = memory.OriginCart
	cpu.SP = 0
	cpu.LastResult = instructions.Instruction{}
}

func (cpu *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x I=%#04x SP=%d\n", cpu.PC, cpu.I, cpu.SP))
	for i := 0; i < NumRegisters; i++ {
		s.WriteString(fmt.Sprintf("V%X=%02x ", i, cpu.V[i]))
		if i == 7 {
			s.WriteString("\n")
		}
	}
	return strings.TrimSpace(s.String())
}

// Step executes one instruction: fetch the opcode at PC, advance PC by two,
// and execute. Every instruction that refers to "the next instruction" (the
// skips, CALL, the key wait) does so relative to the already advanced PC.
func (cpu *CPU) Step() error {
	hi, err := cpu.mem.Read(cpu.PC)
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	lo, err := cpu.mem.Read(cpu.PC + 1)
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}

	cpu.PC += 2

	ins := instructions.Decode(uint16(hi)<<8 | uint16(lo))
	cpu.LastResult = ins

	return cpu.execute(ins)
}

func (cpu *CPU) execute(ins instructions.Instruction) error {
	switch ins.Operation {
	case instructions.Illegal:
		// no trap for unrecognised opcodes. execution continues at the
		// already advanced PC

	case instructions.Sys:
		// machine code call on the original hardware. never implemented by
		// interpreters

	case instructions.Clear:
		cpu.vid.Clear()

	case instructions.Return:
		if cpu.SP == 0 {
			return curated.Errorf(StackUnderflow)
		}
		cpu.SP--
		cpu.PC = cpu.Stack[cpu.SP]

	case instructions.Jump:
		cpu.PC = ins.NNN

	case instructions.Call:
		if cpu.SP >= StackDepth {
			return curated.Errorf(StackOverflow)
		}
		cpu.Stack[cpu.SP] = cpu.PC
		cpu.SP++
		cpu.PC = ins.NNN

	case instructions.SkipEqual:
		if cpu.V[ins.X] == ins.NN {
			cpu.PC += 2
		}

	case instructions.SkipNotEqual:
		if cpu.V[ins.X] != ins.NN {
			cpu.PC += 2
		}

	case instructions.SkipEqualRegister:
		if cpu.V[ins.X] == cpu.V[ins.Y] {
			cpu.PC += 2
		}

	case instructions.Load:
		cpu.V[ins.X] = ins.NN

	case instructions.Add:
		// no carry flag for the immediate form of ADD
		cpu.V[ins.X] += ins.NN

	case instructions.LoadRegister:
		cpu.V[ins.X] = cpu.V[ins.Y]

	case instructions.Or:
		cpu.V[ins.X] |= cpu.V[ins.Y]

	case instructions.And:
		cpu.V[ins.X] &= cpu.V[ins.Y]

	case instructions.Xor:
		cpu.V[ins.X] ^= cpu.V[ins.Y]

	case instructions.AddRegister:
		// the flag write comes after the result write, which matters when X
		// selects the flag register itself
		sum := uint16(cpu.V[ins.X]) + uint16(cpu.V[ins.Y])
		cpu.V[ins.X] = uint8(sum)
		if sum > 0xff {
			cpu.V[0xf] = 1
		} else {
			cpu.V[0xf] = 0
		}

	case instructions.SubRegister:
		// here the flag write comes first. again, the order is observable
		// when X selects the flag register
		if cpu.V[ins.X] >= cpu.V[ins.Y] {
			cpu.V[0xf] = 1
		} else {
			cpu.V[0xf] = 0
		}
		cpu.V[ins.X] -= cpu.V[ins.Y]

	case instructions.ShiftRight:
		cpu.V[0xf] = cpu.V[ins.X] & 0x01
		cpu.V[ins.X] >>= 1

	case instructions.SubRegisterReverse:
		if cpu.V[ins.Y] >= cpu.V[ins.X] {
			cpu.V[0xf] = 1
		} else {
			cpu.V[0xf] = 0
		}
		cpu.V[ins.X] = cpu.V[ins.Y] - cpu.V[ins.X]

	case instructions.ShiftLeft:
		cpu.V[0xf] = cpu.V[ins.X] >> 7
		cpu.V[ins.X] <<= 1

	case instructions.SkipNotEqualRegister:
		if cpu.V[ins.X] != cpu.V[ins.Y] {
			cpu.PC += 2
		}

	case instructions.LoadIndex:
		cpu.I = ins.NNN

	case instructions.JumpOffset:
		cpu.PC = ins.NNN + uint16(cpu.V[0])

	case instructions.Random:
		cpu.V[ins.X] = cpu.rnd.Byte() & ins.NN

	case instructions.Draw:
		cpu.V[0xf] = 0
		sprite := make([]uint8, ins.N)
		for row := uint16(0); row < uint16(ins.N); row++ {
			b, err := cpu.mem.Read(cpu.I + row)
			if err != nil {
				return curated.Errorf("cpu: %v", err)
			}
			sprite[row] = b
		}
		if cpu.vid.DrawSprite(cpu.V[ins.X], cpu.V[ins.Y], sprite) {
			cpu.V[0xf] = 1
		}

	case instructions.SkipKeyPressed:
		if cpu.keypad.IsPressed(cpu.V[ins.X]) {
			cpu.PC += 2
		}

	case instructions.SkipKeyNotPressed:
		if !cpu.keypad.IsPressed(cpu.V[ins.X]) {
			cpu.PC += 2
		}

	case instructions.LoadFromDelay:
		cpu.V[ins.X] = cpu.tmr.Delay

	case instructions.WaitKey:
		// the scan does not stop at the first pressed key, so when more than
		// one key is down the highest numbered key wins. interpreters have
		// disagreed on this for decades; this one keeps the behaviour
		// consistent with its ancestors rather than picking a new answer
		pressed := false
		for k := uint8(0); k < input.NumKeys; k++ {
			if cpu.keypad.IsPressed(k) {
				cpu.V[ins.X] = k
				pressed = true
			}
		}
		if !pressed {
			// rewind PC so the instruction runs again on the next Step().
			// the machine stalls here, cooperatively, until the input
			// collaborator presses a key
			cpu.PC -= 2
		}

	case instructions.LoadDelay:
		cpu.tmr.Delay = cpu.V[ins.X]

	case instructions.LoadSound:
		cpu.tmr.Sound = cpu.V[ins.X]

	case instructions.AddIndex:
		// no overflow flag. an index pushed beyond addressable space will
		// fault on the next instruction that dereferences it
		cpu.I += uint16(cpu.V[ins.X])

	case instructions.LoadGlyph:
		cpu.I = memory.GlyphAddress(cpu.V[ins.X])

	case instructions.StoreDigits:
		v := cpu.V[ins.X]
		for i, digit := range []uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := cpu.mem.Write(cpu.I+uint16(i), digit); err != nil {
				return curated.Errorf("cpu: %v", err)
			}
		}

	case instructions.StoreRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			if err := cpu.mem.Write(cpu.I+i, cpu.V[i]); err != nil {
				return curated.Errorf("cpu: %v", err)
			}
		}
		cpu.I += uint16(ins.X) + 1

	case instructions.LoadRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			b, err := cpu.mem.Read(cpu.I + i)
			if err != nil {
				return curated.Errorf("cpu: %v", err)
			}
			cpu.V[i] = b
		}
		cpu.I += uint16(ins.X) + 1
	}

	return nil
}
