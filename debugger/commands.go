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

package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/debugger/terminal"
	"github.com/hazzlik/gopher8/disassembly"
	"github.com/hazzlik/gopher8/hardware/memory"
)

// debugger commands.
const (
	cmdStep      = "STEP"
	cmdRun       = "RUN"
	cmdRegisters = "REGISTERS"
	cmdMemory    = "MEMORY"
	cmdDisasm    = "DISASM"
	cmdTimers    = "TIMERS"
	cmdViz       = "VIZ"
	cmdReset     = "RESET"
	cmdQuit      = "QUIT"
	cmdHelp      = "HELP"
)

var help = map[string]string{
	cmdStep:      "Execute the next instruction (a repeat count can be given)",
	cmdRun:       "Run the emulation freely. Halt with Ctrl-C",
	cmdRegisters: "Show the CPU registers and the stack",
	cmdMemory:    "Dump memory contents (MEMORY [address] [rows])",
	cmdDisasm:    "Show the disassembly of the loaded cartridge",
	cmdTimers:    "Show the delay and sound timers",
	cmdViz:       "Write a graph of the machine's internal state to a dot file",
	cmdReset:     "Reset the machine and reload the cartridge",
	cmdQuit:      "Leave the debugger",
	cmdHelp:      "Show this help",
}

// how many instructions are executed between timer ticks during RUN. the
// same pace as the playmode's normal speed.
const runCyclesPerTick = 5

// parseInput splits the input into tokens and dispatches the command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(strings.TrimSpace(input))

	// empty input steps the machine. it is what you want most of the time
	if len(tokens) == 0 {
		tokens = []string{cmdStep}
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case cmdStep:
		return dbg.step(args)
	case cmdRun:
		return dbg.run()
	case cmdRegisters, "REG":
		dbg.printLine(terminal.StyleMachineInfo, dbg.vm.CPU.String())
	case cmdMemory, "MEM":
		return dbg.memoryDump(args)
	case cmdDisasm:
		s := &strings.Builder{}
		disassembly.Disassemble(dbg.cartload.Data, s)
		dbg.printLine(terminal.StyleMachineInfo, strings.TrimSuffix(s.String(), "\n"))
	case cmdTimers:
		dbg.printLine(terminal.StyleMachineInfo, fmt.Sprintf("DT: %02x  ST: %02x", dbg.vm.Timer.Delay, dbg.vm.Timer.Sound))
	case cmdViz:
		return dbg.viz(args)
	case cmdReset:
		err := dbg.vm.AttachCartridge(dbg.cartload)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")
	case cmdQuit, "EXIT", "Q":
		dbg.running = false
	case cmdHelp, "H", "?":
		for _, c := range []string{cmdStep, cmdRun, cmdRegisters, cmdMemory, cmdDisasm, cmdTimers, cmdViz, cmdReset, cmdQuit, cmdHelp} {
			dbg.printLine(terminal.StyleHelp, fmt.Sprintf("%-10s %s", c, help[c]))
		}
	default:
		return curated.Errorf("unrecognised command (%s)", command)
	}

	return nil
}

// step the machine through the next instruction(s), echoing each executed
// instruction to the terminal.
func (dbg *Debugger) step(args []string) error {
	num := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return curated.Errorf("STEP requires a positive number (%s)", args[0])
		}
		num = n
	}

	cycles := 0
	for i := 0; i < num; i++ {
		err := dbg.vm.Step()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstructionStep, dbg.vm.CPU.LastResult.String())

		// stepped instructions count towards the timers like running ones
		cycles++
		if cycles >= runCyclesPerTick {
			cycles = 0
			dbg.vm.DecrementTimers()
		}
	}

	return nil
}

// run the machine freely until Ctrl-C or an execution error.
func (dbg *Debugger) run() error {
	dbg.printLine(terminal.StyleFeedback, "running. halt with Ctrl-C")

	cycles := 0
	err := dbg.vm.Run(func() (bool, error) {
		cycles++
		if cycles >= runCyclesPerTick {
			cycles = 0
			dbg.vm.DecrementTimers()
		}

		select {
		case <-dbg.events.IntEvents:
			return false, nil
		default:
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("halted at $%03x", dbg.vm.CPU.PC))

	return nil
}

// memoryDump prints rows of sixteen bytes, starting at the requested
// address.
func (dbg *Debugger) memoryDump(args []string) error {
	address := uint16(memory.OriginCart)
	rows := 8

	if len(args) > 0 {
		a, err := strconv.ParseUint(strings.TrimPrefix(args[0], "$"), 16, 16)
		if err != nil || int(a) >= memory.AddressableSpace {
			return curated.Errorf("MEMORY requires a hex address inside addressable space (%s)", args[0])
		}
		address = uint16(a)
	}

	if len(args) > 1 {
		r, err := strconv.Atoi(args[1])
		if err != nil || r < 1 {
			return curated.Errorf("MEMORY requires a positive number of rows (%s)", args[1])
		}
		rows = r
	}

	for r := 0; r < rows; r++ {
		s := &strings.Builder{}
		s.WriteString(fmt.Sprintf("$%03x: ", address))
		for c := 0; c < 16; c++ {
			v, err := dbg.vm.Mem.Read(address)
			if err != nil {
				// reached the top of memory
				dbg.printLine(terminal.StyleMachineInfo, strings.TrimSpace(s.String()))
				return nil
			}
			s.WriteString(fmt.Sprintf("%02x ", v))
			address++
		}
		dbg.printLine(terminal.StyleMachineInfo, strings.TrimSpace(s.String()))
	}

	return nil
}

// viz writes a graph of the machine's internal state, suitable for graphviz.
func (dbg *Debugger) viz(args []string) error {
	filename := "gopher8.dot"
	if len(args) > 0 {
		filename = args[0]
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("VIZ: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.vm)
	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("machine state written to %s", filename))

	return nil
}
