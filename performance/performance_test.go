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

package performance_test

import (
	"testing"

	"github.com/hazzlik/gopher8/performance"
	"github.com/hazzlik/gopher8/test"
)

func TestCalcRate(t *testing.T) {
	// five instructions per tick is a nominal rate of 300 per second
	rate, accuracy := performance.CalcRate(300, 5, 1.0)
	test.ExpectedSuccess(t, rate == 300.0)
	test.ExpectedSuccess(t, accuracy == 100.0)

	// half the nominal rate
	rate, accuracy = performance.CalcRate(300, 5, 2.0)
	test.ExpectedSuccess(t, rate == 150.0)
	test.ExpectedSuccess(t, accuracy == 50.0)

	// double the nominal rate
	rate, accuracy = performance.CalcRate(1200, 10, 1.0)
	test.ExpectedSuccess(t, rate == 1200.0)
	test.ExpectedSuccess(t, accuracy == 200.0)
}
