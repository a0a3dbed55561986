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

// Package debugger is a terminal debugger for the CHIP-8 machine. It runs
// the emulation headlessly, one instruction at a time or freely until
// interrupted, and allows inspection of registers, memory and the
// disassembly of the loaded cartridge.
package debugger

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hazzlik/gopher8/cartridgeloader"
	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/debugger/terminal"
	"github.com/hazzlik/gopher8/hardware"
	"github.com/hazzlik/gopher8/hardware/cpu/instructions"
)

// maximum length of a command line
const inputBuffer = 255

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	vm       *hardware.VM
	term     terminal.Terminal
	cartload cartridgeloader.Loader

	events *terminal.ReadEvents
	input  []byte

	// the debugger's inputLoop runs until this is false
	running bool
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		vm:    hardware.NewVM(nil),
		term:  term,
		input: make([]byte, inputBuffer),
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	// connect Ctrl-C signal to the terminal read loop
	signal.Notify(dbg.events.IntEvents, os.Interrupt)

	return dbg, nil
}

// Start the main debugger sequence with the specified cartridge.
func (dbg *Debugger) Start(cartload cartridgeloader.Loader) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	// load into our own copy of the loader so the data remains available for
	// the DISASM command
	dbg.cartload = cartload
	err = dbg.cartload.Load()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	err = dbg.vm.AttachCartridge(dbg.cartload)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("loaded %s (%d bytes)", dbg.cartload.ShortName(), len(dbg.cartload.Data)))

	err = dbg.inputLoop()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	return nil
}

func (dbg *Debugger) printLine(style terminal.Style, s string) {
	dbg.term.TermPrintLine(style, s)
}

// buildPrompt assembles the prompt, showing the program counter and the
// instruction about to be executed.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	content := fmt.Sprintf("[ $%03x ]", dbg.vm.CPU.PC)

	ins, err := dbg.peekInstruction(dbg.vm.CPU.PC)
	if err == nil {
		content = fmt.Sprintf("[ $%03x : %s ]", dbg.vm.CPU.PC, ins.String())
	}

	return terminal.Prompt{
		Content: content + " >>",
		Style:   terminal.StylePrompt,
	}
}

// peekInstruction decodes the instruction at the address without disturbing
// the machine.
func (dbg *Debugger) peekInstruction(address uint16) (instructions.Instruction, error) {
	hi, err := dbg.vm.Mem.Read(address)
	if err != nil {
		return instructions.Instruction{}, err
	}
	lo, err := dbg.vm.Mem.Read(address + 1)
	if err != nil {
		return instructions.Instruction{}, err
	}
	return instructions.Decode(uint16(hi)<<8 | uint16(lo)), nil
}

// inputLoop has two modes, depending on the emulation state. when the
// emulation is halted the loop waits for a command from the terminal; when
// the emulation is running the loop only checks for a Ctrl-C interrupt.
func (dbg *Debugger) inputLoop() error {
	dbg.running = true

	for dbg.running {
		n, err := dbg.term.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use QUIT to leave the debugger")
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		// the TermRead counts the newline character as part of the input
		if n > 0 {
			n--
		}

		err = dbg.parseInput(string(dbg.input[:n]))
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}
