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

package playmode_test

import (
	"testing"

	"github.com/hazzlik/gopher8/playmode"
	"github.com/hazzlik/gopher8/test"
)

func TestCyclesPerTick(t *testing.T) {
	c, err := playmode.CyclesPerTick(playmode.SpeedSlow)
	test.ExpectedSuccess(t, err)
	test.Equate(t, c, 2)

	c, err = playmode.CyclesPerTick(playmode.SpeedNormal)
	test.ExpectedSuccess(t, err)
	test.Equate(t, c, 5)

	c, err = playmode.CyclesPerTick(playmode.SpeedFast)
	test.ExpectedSuccess(t, err)
	test.Equate(t, c, 10)

	c, err = playmode.CyclesPerTick(playmode.SpeedFastest)
	test.ExpectedSuccess(t, err)
	test.Equate(t, c, 20)

	// case is not significant
	c, err = playmode.CyclesPerTick("NORMAL")
	test.ExpectedSuccess(t, err)
	test.Equate(t, c, 5)

	_, err = playmode.CyclesPerTick("warp")
	test.ExpectedFailure(t, err)
}
