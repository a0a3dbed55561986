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

package hardware

import (
	"github.com/hazzlik/gopher8/cartridgeloader"
	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/hardware/cpu"
	"github.com/hazzlik/gopher8/hardware/input"
	"github.com/hazzlik/gopher8/hardware/memory"
	"github.com/hazzlik/gopher8/hardware/timer"
	"github.com/hazzlik/gopher8/hardware/video"
	"github.com/hazzlik/gopher8/random"
)

// VM is the main container for the emulated components of the CHIP-8
// machine.
type VM struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *input.Keypad
	Timer  *timer.Timer
}

// NewVM creates a new CHIP-8 machine. It is used for all aspects of
// emulation: debugging sessions, and regular play.
//
// The supplied Random instance is given to the CPU as its only source of
// entropy. A nil argument gets a freshly seeded instance.
func NewVM(rnd *random.Random) *VM {
	if rnd == nil {
		rnd = random.NewRandom()
	}

	vm := &VM{
		Mem:    memory.NewMemory(),
		Video:  video.NewVideo(),
		Keypad: input.NewKeypad(),
		Timer:  timer.NewTimer(),
	}
	vm.CPU = cpu.NewCPU(vm.Mem, vm.Video, vm.Keypad, vm.Timer, rnd)

	return vm
}

// Reset the machine: every register, memory cell, stack slot, timer, display
// pixel and key is zeroed, and the font table is rewritten. Reset is
// unconditional and cannot fail.
func (vm *VM) Reset() {
	vm.Mem.Reset()
	vm.Video.Reset()
	vm.Keypad.Reset()
	vm.Timer.Reset()
	vm.CPU.Reset()
}

// AttachCartridge loads cartridge data into the machine.
//
// The machine is reset before anything else, so a failed load (an unreadable
// file, an oversized image) leaves a cleanly reset machine rather than a
// partially loaded one. A cartridge that loads successfully occupies memory
// from the cartridge origin onwards, with any remaining bytes in the window
// still zero from the reset.
func (vm *VM) AttachCartridge(cartload cartridgeloader.Loader) error {
	vm.Reset()

	err := cartload.Load()
	if err != nil {
		return curated.Errorf("vm: %v", err)
	}

	err = vm.Mem.LoadCart(cartload.Data)
	if err != nil {
		return curated.Errorf("vm: %v", err)
	}

	return nil
}

// Step the machine one CPU instruction.
func (vm *VM) Step() error {
	return vm.CPU.Step()
}

// DecrementTimers performs one tick of the delay and sound timers. The
// driver should call this at the rate given by timer.TickRate, regardless of
// how many calls to Step() happen in between.
func (vm *VM) DecrementTimers() {
	vm.Timer.Tick()
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction; the emulation stops when it
// returns false or an error.
func (vm *VM) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := vm.CPU.Step(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
