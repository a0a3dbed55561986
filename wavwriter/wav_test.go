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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hazzlik/gopher8/hardware/audio"
	"github.com/hazzlik/gopher8/test"
	"github.com/hazzlik/gopher8/wavwriter"
)

func TestWavWriter(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "beep.wav")

	aw, err := wavwriter.New(filename)
	test.ExpectedSuccess(t, err)

	// one tick of beep, one tick of silence
	beeper := &audio.Beeper{}
	err = aw.SetAudio(beeper.Tick(true))
	test.ExpectedSuccess(t, err)
	err = aw.SetAudio(beeper.Tick(false))
	test.ExpectedSuccess(t, err)

	err = aw.EndMixing()
	test.ExpectedSuccess(t, err)

	// a WAV header is 44 bytes. two ticks of 8bit mono samples follow
	fi, err := os.Stat(filename)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, fi.Size() == int64(44+2*audio.TickSamples))
}
