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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hazzlik/gopher8/cartridgeloader"
	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/test"
)

func TestFileLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(fn, []byte{0x12, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectedFailure(t, cl.HasLoaded())

	test.ExpectedSuccess(t, cl.Load())
	test.ExpectedSuccess(t, cl.HasLoaded())
	test.Equate(t, len(cl.Data), 2)
	test.Equate(t, cl.ShortName(), "test")

	// the hash is filled in by a successful load
	if cl.Hash == "" {
		t.Errorf("no hash generated on load")
	}
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "no-such-file.ch8"))

	err := cl.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridgeloader.LoadError))
}

func TestHashMismatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(fn, []byte{0x12, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	cl := cartridgeloader.NewLoader(fn)
	cl.Hash = "notahash"
	test.ExpectedFailure(t, cl.Load())
}
