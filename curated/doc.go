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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like fmt.Errorf(). The pattern
// string also acts as the identity of the error. For example:
//
//	e := curated.Errorf("vm: %v", "stack overflow")
//
//	if curated.Is(e, "vm: %v") {
//		fmt.Println("error inside the emulated machine")
//	}
//
// The Has() function is similar to Is() but checks whether a pattern appears
// anywhere in the error chain, rather than just at the outermost level.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Errors that are 'curated' are considered expected. Errors from outside
// the project (from the SDL library, for example) are 'uncurated' and can be
// treated as unexpected.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. This means packages can wrap errors freely without the
// final message stuttering:
//
//	error: vm: stack overflow
//
// and not:
//
//	error: error: vm: stack overflow
//
// Sentinel patterns should be stored as const strings, suitably named and
// commented, in the package that creates them.
package curated
