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

// Package cartridgeloader is used to specify the cartridge data to load
// into the emulated machine. A Loader fetches bytes from a local file or an
// HTTP URL; it knows nothing about the machine itself. Whether the data
// actually fits in memory is decided at attach time by the hardware
// package.
package cartridgeloader

import (
	"github.com/hazzlik/gopher8/curated"
)

// Sentinal error pattern for all errors in the cartridgeloader package.
const LoadError = "cartridgeloader: %v"

func curatedError(err error) error {
	return curated.Errorf(LoadError, err)
}
