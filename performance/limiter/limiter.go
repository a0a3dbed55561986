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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. In this project the events being limited are the ticks of the CHIP-8
// timers, which count down at sixty per second.
//
// A new TickLimiter can be created with:
//
//	lim := limiter.NewTickLimiter(timer.TickRate)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		tickTimers()
//	}
package limiter

import (
	"fmt"
	"time"
)

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// TickLimiter will trigger at the specified number of ticks per second.
type TickLimiter struct {
	ticksPerSecond int
	secondsPerTick time.Duration

	tick chan bool
}

// NewTickLimiter is the preferred method of initialisation for the
// TickLimiter type.
func NewTickLimiter(ticksPerSecond int) *TickLimiter {
	lim := &TickLimiter{}
	lim.SetLimit(ticksPerSecond)

	lim.tick = make(chan bool)

	// run ticker concurrently
	go func() {
		adjustedSecondPerTick := lim.secondsPerTick
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedSecondPerTick)
			nt := time.Now()
			adjustedSecondPerTick -= nt.Sub(t) - lim.secondsPerTick
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the rate at which the TickLimiter waits.
func (lim *TickLimiter) SetLimit(ticksPerSecond int) {
	lim.ticksPerSecond = ticksPerSecond
	lim.secondsPerTick, _ = time.ParseDuration(fmt.Sprintf("%fs", float64(1.0)/float64(ticksPerSecond)))
}

// Wait will block until the next tick.
func (lim *TickLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *TickLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}
