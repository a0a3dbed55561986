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

import (
	"strings"

	"github.com/hazzlik/gopher8/curated"
)

// The machine has no official clock speed so the pace of a game is a matter
// of taste. Speeds are expressed as the number of instructions executed for
// every tick of the timers.
const (
	SpeedSlow    = "slow"
	SpeedNormal  = "normal"
	SpeedFast    = "fast"
	SpeedFastest = "fastest"
)

// CyclesPerTick converts a named speed to the number of instructions executed
// for every timer tick.
func CyclesPerTick(speed string) (int, error) {
	switch strings.ToLower(speed) {
	case SpeedSlow:
		return 2, nil
	case SpeedNormal:
		return 5, nil
	case SpeedFast:
		return 10, nil
	case SpeedFastest:
		return 20, nil
	}

	return 0, curated.Errorf("playmode: unrecognised speed (%s)", speed)
}
