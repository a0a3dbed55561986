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

package limiter_test

import (
	"testing"
	"time"

	"github.com/hazzlik/gopher8/performance/limiter"
	"github.com/hazzlik/gopher8/test"
)

func TestTickLimiter(t *testing.T) {
	// a high rate so the test is quick. sixty waits at six hundred ticks per
	// second should take about a tenth of a second. generous upper bound
	// because we can't trust the scheduler on a loaded machine
	lim := limiter.NewTickLimiter(600)

	start := time.Now()
	for i := 0; i < 60; i++ {
		lim.Wait()
	}
	elapsed := time.Since(start)

	test.ExpectedSuccess(t, elapsed >= 90*time.Millisecond)
	test.ExpectedSuccess(t, elapsed <= time.Second)
}

func TestHasWaited(t *testing.T) {
	lim := limiter.NewTickLimiter(600)

	// the first tick is available almost immediately
	time.Sleep(10 * time.Millisecond)
	test.ExpectedSuccess(t, lim.HasWaited())
}
