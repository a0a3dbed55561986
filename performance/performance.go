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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/hazzlik/gopher8/cartridgeloader"
	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/hardware"
	"github.com/hazzlik/gopher8/hardware/timer"
	"github.com/hazzlik/gopher8/performance/limiter"
)

// Check is a very rough and ready calculation of the emulator's performance.
//
// Emulation will run for the specified duration. When uncapped is false the
// emulation runs at the same pace as it would in the playmode, with
// cyclesPerTick instructions executed for every tick of the timers. When
// uncapped is true the emulation runs flat out, which is what we want when
// profiling.
func Check(output io.Writer, profile bool, cartload cartridgeloader.Loader, uncapped bool, cyclesPerTick int, runTime string) error {
	vm := hardware.NewVM(nil)

	err := vm.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numCycles := 0

	// run for specified period of time
	err = cpuProfile(profile, "cpu.profile", func() error {
		// setup trigger that expires when duration has elapsed
		timesUp := make(chan bool)

		go func() {
			time.AfterFunc(duration, func() {
				timesUp <- true
			})
		}()

		if uncapped {
			// timers still need to advance or programs that spin on the delay
			// timer will never make progress. advance them at the same ratio
			// as in the capped case
			cycles := 0
			return vm.Run(func() (bool, error) {
				numCycles++
				cycles++
				if cycles >= cyclesPerTick {
					cycles = 0
					vm.DecrementTimers()
				}

				select {
				case <-timesUp:
					return false, nil
				default:
					return true, nil
				}
			})
		}

		lim := limiter.NewTickLimiter(timer.TickRate)

		for {
			lim.Wait()

			for i := 0; i < cyclesPerTick; i++ {
				err := vm.Step()
				if err != nil {
					return err
				}
				numCycles++
			}
			vm.DecrementTimers()

			select {
			case <-timesUp:
				return nil
			default:
			}
		}
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	rate, accuracy := CalcRate(numCycles, cyclesPerTick, duration.Seconds())
	if uncapped {
		output.Write([]byte(fmt.Sprintf("%.0f instructions/sec (%d instructions in %.2f seconds)\n", rate, numCycles, duration.Seconds())))
	} else {
		output.Write([]byte(fmt.Sprintf("%.0f instructions/sec (%d instructions in %.2f seconds) %.1f%%\n", rate, numCycles, duration.Seconds(), accuracy)))
	}

	return memProfile(profile, "mem.profile")
}

// CalcRate takes the number of instructions executed and the duration (in
// seconds) and returns the instructions-per-second along with the accuracy of
// that value as a percentage of the nominal rate implied by cyclesPerTick.
func CalcRate(numCycles int, cyclesPerTick int, duration float64) (rate float64, accuracy float64) {
	rate = float64(numCycles) / duration
	accuracy = 100 * rate / float64(cyclesPerTick*timer.TickRate)
	return rate, accuracy
}
