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

// Package input implements the sixteen key hexadecimal keypad of the CHIP-8
// machine.
//
// The keypad is written to by whatever is driving the emulation (the SDL
// frontend in the case of playmode) and read by the CPU through the SKP,
// SKNP and LD Vx,K instructions. The CPU never writes to it.
package input

// NumKeys is the number of keys on the keypad, labelled 0 to F.
const NumKeys = 16

// Keypad is the input state of the CHIP-8 machine.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases all keys.
func (key *Keypad) Reset() {
	for i := range key.keys {
		key.keys[i] = false
	}
}

// Set the pressed state of a key. Keys outside of the keypad are ignored.
func (key *Keypad) Set(k uint8, pressed bool) {
	if int(k) >= NumKeys {
		return
	}
	key.keys[k] = pressed
}

// IsPressed returns the pressed state of a key. Keys outside of the keypad
// are never pressed.
func (key *Keypad) IsPressed(k uint8) bool {
	if int(k) >= NumKeys {
		return false
	}
	return key.keys[k]
}
