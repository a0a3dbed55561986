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

package gui

// Event represents all the different type of events that can occur in the
// gui. Use a type switch to differentiate.
type Event interface{}

// EventKeyboard is the data that accompanies keyboard events. Key is the name
// of the key as reported by the user interface, upper case for letter keys.
type EventKeyboard struct {
	Key  string
	Down bool
}

// EventWindowClose is sent when the user closes the window.
type EventWindowClose struct{}
