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

package timer_test

import (
	"testing"

	"github.com/hazzlik/gopher8/hardware/timer"
	"github.com/hazzlik/gopher8/test"
)

func TestCountdown(t *testing.T) {
	tmr := timer.NewTimer()

	tmr.Delay = 2
	tmr.Sound = 1

	tmr.Tick()
	test.Equate(t, tmr.Delay, 1)
	test.Equate(t, tmr.Sound, 0)
	test.ExpectedSuccess(t, tmr.SoundActive())

	tmr.Tick()
	test.Equate(t, tmr.Delay, 0)
	test.Equate(t, tmr.Sound, 0)
	test.ExpectedFailure(t, tmr.SoundActive())
}

func TestFloor(t *testing.T) {
	tmr := timer.NewTimer()

	// ticking at zero is idempotent
	for i := 0; i < 10; i++ {
		tmr.Tick()
		test.Equate(t, tmr.Delay, 0)
		test.Equate(t, tmr.Sound, 0)
		test.ExpectedFailure(t, tmr.SoundActive())
	}
}

func TestSoundSignal(t *testing.T) {
	tmr := timer.NewTimer()

	tmr.Sound = 3

	// signal is raised for every tick of the countdown and lowered on the
	// first tick after it ends
	for i := 0; i < 3; i++ {
		tmr.Tick()
		test.ExpectedSuccess(t, tmr.SoundActive())
	}
	tmr.Tick()
	test.ExpectedFailure(t, tmr.SoundActive())
}
