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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is the random number generator used inside the emulation. The RND
// instruction draws its bytes from here and from nowhere else, meaning a
// Random with ZeroSeed set gives a fully deterministic emulation.
type Random struct {
	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool

	rnd *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// RNG from the standard library, created on first use so that the ZeroSeed
// field can be set after initialisation
func (rnd *Random) source() *rand.Rand {
	if rnd.rnd == nil {
		if rnd.ZeroSeed {
			rnd.rnd = rand.New(rand.NewSource(0))
		} else {
			rnd.rnd = rand.New(rand.NewSource(baseSeed))
		}
	}
	return rnd.rnd
}

// Byte returns a uniformly distributed random byte.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.source().Intn(256))
}

// Intn returns a random number between 0 and n.
func (rnd *Random) Intn(n int) int {
	return rnd.source().Intn(n)
}
