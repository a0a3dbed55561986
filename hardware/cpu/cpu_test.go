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

package cpu_test

import (
	"testing"

	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/hardware/cpu"
	"github.com/hazzlik/gopher8/hardware/input"
	"github.com/hazzlik/gopher8/hardware/memory"
	"github.com/hazzlik/gopher8/hardware/timer"
	"github.com/hazzlik/gopher8/hardware/video"
	"github.com/hazzlik/gopher8/random"
)

type testMachine struct {
	mc     *cpu.CPU
	mem    *memory.Memory
	vid    *video.Video
	keypad *input.Keypad
	tmr    *timer.Timer
}

func newTestMachine() *testMachine {
	tm := &testMachine{
		mem:    memory.NewMemory(),
		vid:    video.NewVideo(),
		keypad: input.NewKeypad(),
		tmr:    timer.NewTimer(),
	}

	rnd := random.NewRandom()
	rnd.ZeroSeed = true

	tm.mc = cpu.NewCPU(tm.mem, tm.vid, tm.keypad, tm.tmr, rnd)

	return tm
}

// poke a sequence of opcodes into memory, starting at the cartridge origin
func (tm *testMachine) poke(opcodes ...uint16) {
	addr := memory.OriginCart
	for _, opcode := range opcodes {
		_ = tm.mem.Write(addr, uint8(opcode>>8))
		_ = tm.mem.Write(addr+1, uint8(opcode))
		addr += 2
	}
}

func (tm *testMachine) step(t *testing.T) {
	t.Helper()
	if err := tm.mc.Step(); err != nil {
		t.Fatalf("unexpected error during step: %v", err)
	}
}

func TestAddRegisterCarry(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0x8014) // ADD V0, V1

	// exhaustive: VF records carry if and only if the 16 bit sum exceeds 255
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			tm.mc.Reset()
			tm.mc.V[0] = uint8(a)
			tm.mc.V[1] = uint8(b)
			tm.step(t)

			if tm.mc.V[0] != uint8(a+b) {
				t.Fatalf("ADD %d+%d gave wrong sum %d", a, b, tm.mc.V[0])
			}
			carry := uint8(0)
			if a+b > 255 {
				carry = 1
			}
			if tm.mc.V[0xf] != carry {
				t.Fatalf("ADD %d+%d gave wrong carry %d", a, b, tm.mc.V[0xf])
			}
		}
	}
}

func TestSubRegisterBorrow(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0x8015) // SUB V0, V1

	// exhaustive: VF is 1 if and only if Vx >= Vy
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			tm.mc.Reset()
			tm.mc.V[0] = uint8(a)
			tm.mc.V[1] = uint8(b)
			tm.step(t)

			if tm.mc.V[0] != uint8(a-b) {
				t.Fatalf("SUB %d-%d gave wrong result %d", a, b, tm.mc.V[0])
			}
			flag := uint8(0)
			if a >= b {
				flag = 1
			}
			if tm.mc.V[0xf] != flag {
				t.Fatalf("SUB %d-%d gave wrong flag %d", a, b, tm.mc.V[0xf])
			}
		}
	}
}

func TestAddImmediateNoCarry(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0x70ff) // ADD V0, $ff

	tm.mc.V[0] = 0x02
	tm.mc.V[0xf] = 0
	tm.step(t)

	// the sum truncates but the carry flag is untouched
	if tm.mc.V[0] != 0x01 {
		t.Errorf("immediate ADD gave wrong sum %d", tm.mc.V[0])
	}
	if tm.mc.V[0xf] != 0 {
		t.Errorf("immediate ADD must not set the carry flag")
	}
}

func TestShifts(t *testing.T) {
	tm := newTestMachine()

	// SHR takes the flag from the low bit before the shift
	tm.poke(0x8016) // SHR V0
	tm.mc.V[0] = 0x05
	tm.step(t)
	if tm.mc.V[0] != 0x02 || tm.mc.V[0xf] != 1 {
		t.Errorf("SHR gave %d flag %d", tm.mc.V[0], tm.mc.V[0xf])
	}

	// SHL takes the flag from the high bit before the shift. the value of
	// the Y nibble is irrelevant to both shifts
	tm.poke(0x80fe) // SHL V0 (with a non-zero Y nibble)
	tm.mc.Reset()
	tm.mc.V[0] = 0x81
	tm.mc.V[0xf] = 0
	tm.step(t)
	if tm.mc.V[0] != 0x02 || tm.mc.V[0xf] != 1 {
		t.Errorf("SHL gave %d flag %d", tm.mc.V[0], tm.mc.V[0xf])
	}
}

func TestStoreDigits(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0xf033) // LD B, V0

	tm.mc.V[0] = 255
	tm.mc.I = 0x300
	tm.step(t)

	for i, want := range []uint8{2, 5, 5} {
		d, _ := tm.mem.Read(0x300 + uint16(i))
		if d != want {
			t.Errorf("digit %d is %d, wanted %d", i, d, want)
		}
	}
}

func TestCallReturn(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0x2300) // CALL $300 at $200

	tm.step(t)
	if tm.mc.PC != 0x300 {
		t.Fatalf("CALL did not jump (PC=%#04x)", tm.mc.PC)
	}
	if tm.mc.SP != 1 {
		t.Fatalf("CALL did not push (SP=%d)", tm.mc.SP)
	}

	// a RET at the subroutine target returns to the instruction after the
	// original CALL
	_ = tm.mem.Write(0x300, 0x00)
	_ = tm.mem.Write(0x301, 0xee)
	tm.step(t)
	if tm.mc.PC != 0x202 {
		t.Fatalf("RET returned to %#04x, wanted 0x202", tm.mc.PC)
	}
	if tm.mc.SP != 0 {
		t.Fatalf("RET did not pop (SP=%d)", tm.mc.SP)
	}
}

func TestStackExhaustion(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0x2200) // CALL $200 - calls itself forever

	for i := 0; i < cpu.StackDepth; i++ {
		tm.step(t)
	}

	err := tm.mc.Step()
	if !curated.Is(err, cpu.StackOverflow) {
		t.Errorf("expected stack overflow, got %v", err)
	}

	// underflow on a RET with an empty stack
	tm.mc.Reset()
	tm.poke(0x00ee)
	err = tm.mc.Step()
	if !curated.Is(err, cpu.StackUnderflow) {
		t.Errorf("expected stack underflow, got %v", err)
	}
}

func TestSkips(t *testing.T) {
	tm := newTestMachine()

	// SE skips when equal
	tm.poke(0x3042) // SE V0, $42
	tm.mc.V[0] = 0x42
	tm.step(t)
	if tm.mc.PC != 0x204 {
		t.Errorf("SE did not skip (PC=%#04x)", tm.mc.PC)
	}

	tm.mc.Reset()
	tm.mc.V[0] = 0x00
	tm.step(t)
	if tm.mc.PC != 0x202 {
		t.Errorf("SE skipped when it should not have (PC=%#04x)", tm.mc.PC)
	}

	// SNE Vx, Vy
	tm.poke(0x9010)
	tm.mc.Reset()
	tm.mc.V[0] = 1
	tm.mc.V[1] = 2
	tm.step(t)
	if tm.mc.PC != 0x204 {
		t.Errorf("SNE did not skip (PC=%#04x)", tm.mc.PC)
	}
}

func TestWaitKey(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0xf00a) // LD V0, K

	// with no key pressed the instruction re-executes forever. net PC
	// movement over any number of steps is zero
	for i := 0; i < 10; i++ {
		tm.step(t)
		if tm.mc.PC != 0x200 {
			t.Fatalf("key wait advanced PC to %#04x", tm.mc.PC)
		}
	}

	// once a key is down the instruction completes and PC advances
	tm.keypad.Set(0x7, true)
	tm.step(t)
	if tm.mc.PC != 0x202 {
		t.Fatalf("key wait did not complete (PC=%#04x)", tm.mc.PC)
	}
	if tm.mc.V[0] != 0x7 {
		t.Fatalf("key wait stored wrong key %d", tm.mc.V[0])
	}
}

func TestWaitKeyHighestWins(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0xf00a) // LD V0, K

	// when several keys are down at once the scan keeps the last match, so
	// the highest numbered key is reported
	tm.keypad.Set(0x2, true)
	tm.keypad.Set(0xb, true)
	tm.step(t)
	if tm.mc.V[0] != 0xb {
		t.Errorf("key wait stored %d, wanted the highest pressed key", tm.mc.V[0])
	}
}

func TestRegisterFile(t *testing.T) {
	tm := newTestMachine()

	// store V0-V2 and observe the index register moving on
	tm.poke(0xf255) // LD [I], V2
	tm.mc.V[0] = 0xaa
	tm.mc.V[1] = 0xbb
	tm.mc.V[2] = 0xcc
	tm.mc.I = 0x400
	tm.step(t)

	for i, want := range []uint8{0xaa, 0xbb, 0xcc} {
		d, _ := tm.mem.Read(0x400 + uint16(i))
		if d != want {
			t.Errorf("memory at +%d is %02x, wanted %02x", i, d, want)
		}
	}
	if tm.mc.I != 0x403 {
		t.Errorf("index register is %#04x, wanted 0x403", tm.mc.I)
	}

	// load them back
	tm.poke(0xf265) // LD V2, [I]
	tm.mc.Reset()
	tm.mc.I = 0x400
	tm.step(t)

	if tm.mc.V[0] != 0xaa || tm.mc.V[1] != 0xbb || tm.mc.V[2] != 0xcc {
		t.Errorf("register load gave %02x %02x %02x", tm.mc.V[0], tm.mc.V[1], tm.mc.V[2])
	}
	if tm.mc.I != 0x403 {
		t.Errorf("index register is %#04x, wanted 0x403", tm.mc.I)
	}
}

func TestDrawCollisionFlag(t *testing.T) {
	tm := newTestMachine()

	// draw the glyph for zero twice at the same location. the second draw
	// erases the first and must report collision through VF
	tm.poke(0xf029, 0xd005, 0xf029, 0xd005)
	tm.mc.V[0] = 0

	tm.step(t) // LD F, V0
	if tm.mc.I != 0x050 {
		t.Fatalf("glyph address is %#04x", tm.mc.I)
	}
	tm.step(t) // DRW
	if tm.mc.V[0xf] != 0 {
		t.Fatalf("first draw reported a collision")
	}
	if !tm.vid.Redraw {
		t.Fatalf("draw did not request a redraw")
	}

	tm.step(t)
	tm.step(t)
	if tm.mc.V[0xf] != 1 {
		t.Fatalf("second draw did not report a collision")
	}
}

func TestTimers(t *testing.T) {
	tm := newTestMachine()

	tm.poke(0x6030, 0xf015, 0xf018, 0xf107) // LD V0,$30; LD DT,V0; LD ST,V0; LD V1,DT
	tm.step(t)
	tm.step(t)
	tm.step(t)
	if tm.tmr.Delay != 0x30 || tm.tmr.Sound != 0x30 {
		t.Fatalf("timer load failed (DT=%d ST=%d)", tm.tmr.Delay, tm.tmr.Sound)
	}

	tm.tmr.Tick()
	tm.step(t)
	if tm.mc.V[1] != 0x2f {
		t.Errorf("timer read gave %d", tm.mc.V[1])
	}
}

func TestRandomIsMasked(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0xc00f) // RND V0, $0f

	// whatever the random byte is, the mask confines it
	for i := 0; i < 100; i++ {
		tm.mc.Reset()
		tm.step(t)
		if tm.mc.V[0] > 0x0f {
			t.Fatalf("random byte escaped its mask (%02x)", tm.mc.V[0])
		}
	}
}

func TestIllegalOpcodeIsNoOp(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0xfaff)

	before := *tm.mc
	tm.step(t)

	// no state change other than the advanced PC
	if tm.mc.PC != before.PC+2 {
		t.Errorf("PC did not advance over illegal opcode")
	}
	if tm.mc.V != before.V || tm.mc.I != before.I || tm.mc.SP != before.SP {
		t.Errorf("illegal opcode changed machine state")
	}
}

func TestMemoryFault(t *testing.T) {
	tm := newTestMachine()
	tm.poke(0xf055) // LD [I], V0

	tm.mc.I = 0x0fff + 1
	err := tm.mc.Step()
	if err == nil || !curated.Has(err, memory.AccessError) {
		t.Errorf("expected memory fault, got %v", err)
	}
}
