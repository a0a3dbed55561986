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

package ansi_test

import (
	"testing"

	"github.com/hazzlik/gopher8/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/hazzlik/gopher8/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "normal", "", true, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "\033[91;49m")

	s, err = ansi.ColorBuild("white", "normal", "", false, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "\033[37;49m")

	s, err = ansi.ColorBuild("", "", "bold", false, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "\033[1m")

	_, err = ansi.ColorBuild("puce", "", "", false, false)
	test.ExpectedFailure(t, err)
}

func TestPens(t *testing.T) {
	test.Equate(t, ansi.NormalPen, "\033[m")
	test.Equate(t, ansi.Pens["yellow"], "\033[93;49m")
	test.Equate(t, ansi.DimPens["yellow"], "\033[33;49m")
}

func TestCursorMove(t *testing.T) {
	test.Equate(t, ansi.CursorMove(0), "")
	test.Equate(t, ansi.CursorMove(3), "\033[3C")
	test.Equate(t, ansi.CursorMove(-2), "\033[2D")
}
