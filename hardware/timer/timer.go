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

// Package timer implements the two countdown timers of the CHIP-8 machine.
//
// The timers are decremented by the Tick() function, which the driver calls
// at a fixed rate - 60Hz on the machines this instruction set originally ran
// on. How many CPU instructions execute between ticks is a separate,
// driver-owned decision; the two rates have no relationship inside the
// emulation.
package timer

// TickRate is the rate (in ticks per second) at which the driver is expected
// to call the Tick() function.
const TickRate = 60

// Timer holds the delay and sound timers of the CHIP-8 machine. The Delay
// and Sound fields are read and written directly by the CPU (the LD DT and
// LD ST instruction groups).
type Timer struct {
	Delay uint8
	Sound uint8

	soundActive bool
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

// Reset zeroes both timers and silences the sound signal.
func (tmr *Timer) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
	tmr.soundActive = false
}

// Tick decrements both timers, clamping at zero. The sound-active signal is
// derived here and nowhere else: it is raised while the sound timer is
// counting down and lowered once it reaches zero. Ticking at the floor is a
// no-op, so a driver calling Tick() forever is fine.
func (tmr *Timer) Tick() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}

	if tmr.Sound > 0 {
		tmr.Sound--
		tmr.soundActive = true
	} else {
		tmr.soundActive = false
	}
}

// SoundActive returns true while the sound timer is counting down. The audio
// collaborator should be making a tone while this is true.
func (tmr *Timer) SoundActive() bool {
	return tmr.soundActive
}
