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

package playmode

import "github.com/hazzlik/gopher8/gui"

// the machine's 4x4 hex keypad mapped onto the left hand side of a modern
// keyboard
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   ->   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keypadMap = map[string]uint8{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// keyboardHandler processes a keyboard event. Returns true if the emulation
// should end.
func (pl *playmode) keyboardHandler(ev gui.EventKeyboard) (bool, error) {
	if k, ok := keypadMap[ev.Key]; ok {
		pl.vm.Keypad.Set(k, ev.Down)
		return false, nil
	}

	if !ev.Down {
		return false, nil
	}

	switch ev.Key {
	case "Escape":
		return true, nil
	case "P":
		pl.paused = !pl.paused
	case "F1":
		// reattach rather than reset. a reset on its own would wipe the
		// cartridge from memory
		err := pl.vm.AttachCartridge(pl.cartload)
		if err != nil {
			return true, err
		}
	}

	return false, nil
}
