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

package terminal

// Style is used to identify the category of text being sent to the
// Output.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit, the most likely treatment being to colorise the
// output.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back
	StyleInput Style = iota

	// information from the debugger about the debugger
	StyleFeedback

	// information about the machine being debugged, register contents and
	// the like
	StyleMachineInfo

	// disassembly of the instruction just executed or about to be executed
	StyleInstructionStep

	// help text
	StyleHelp

	// the prompt
	StylePrompt

	// error messages. always shown, even when the terminal is silenced
	StyleError
)

// IsPrompt returns true if the style is associated with prompts. Prompts do
// not need a newline appending to them.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt
}
