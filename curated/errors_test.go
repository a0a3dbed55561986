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

package curated_test

import (
	"errors"
	"testing"

	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/test"
)

func TestIdentity(t *testing.T) {
	e := curated.Errorf("vm: %v", "stack overflow")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, "vm: %v"))
	test.ExpectedFailure(t, curated.Is(e, "loader: %v"))

	// errors from outside the package are uncurated
	f := errors.New("some other error")
	test.ExpectedFailure(t, curated.IsAny(f))
	test.ExpectedFailure(t, curated.Is(f, "vm: %v"))
}

func TestChain(t *testing.T) {
	e := curated.Errorf("inner: %v", "detail")
	f := curated.Errorf("outer: %v", e)

	test.ExpectedFailure(t, curated.Is(f, "inner: %v"))
	test.ExpectedSuccess(t, curated.Has(f, "inner: %v"))
	test.ExpectedSuccess(t, curated.Has(f, "outer: %v"))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("vm: %v", "illegal address")
	f := curated.Errorf("vm: %v", e)

	test.Equate(t, f.Error(), "vm: illegal address")
}
