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

// Package test contains helper functions to remove common boilerplate from
// the project's unit tests.
//
// The Equate() function tests for equality between two values, allowing
// untyped integer constants to stand in for the unsigned types used
// throughout the emulation:
//
//	test.Equate(t, vm.CPU.PC, 0x200)
//
// ExpectedFailure() and ExpectedSuccess() test bool and error values for the
// obvious conditions.
package test
