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

package video_test

import (
	"testing"

	"github.com/hazzlik/gopher8/hardware/video"
	"github.com/hazzlik/gopher8/test"
)

func TestDrawAndCollision(t *testing.T) {
	vid := video.NewVideo()

	// a single row of eight pixels
	collision := vid.DrawSprite(0, 0, []uint8{0xff})
	test.ExpectedFailure(t, collision)
	test.ExpectedSuccess(t, vid.Redraw)
	for x := 0; x < 8; x++ {
		test.ExpectedSuccess(t, vid.Pixel(x, 0))
	}

	// drawing the same sprite again erases it and reports a collision
	collision = vid.DrawSprite(0, 0, []uint8{0xff})
	test.ExpectedSuccess(t, collision)
	for x := 0; x < 8; x++ {
		test.ExpectedFailure(t, vid.Pixel(x, 0))
	}
}

func TestPartialOverlap(t *testing.T) {
	vid := video.NewVideo()

	vid.DrawSprite(0, 0, []uint8{0xf0})

	// overlapping on a single pixel is still a collision
	collision := vid.DrawSprite(3, 0, []uint8{0x80})
	test.ExpectedSuccess(t, collision)

	// the overlapped pixel is now off, the others unchanged
	test.ExpectedFailure(t, vid.Pixel(3, 0))
	test.ExpectedSuccess(t, vid.Pixel(0, 0))
}

func TestClipping(t *testing.T) {
	vid := video.NewVideo()

	// a sprite drawn at the right edge is clipped, not wrapped
	vid.DrawSprite(62, 0, []uint8{0xff})
	test.ExpectedSuccess(t, vid.Pixel(62, 0))
	test.ExpectedSuccess(t, vid.Pixel(63, 0))
	test.ExpectedFailure(t, vid.Pixel(0, 0))

	// same at the bottom edge
	vid.Clear()
	vid.DrawSprite(0, 31, []uint8{0x80, 0x80})
	test.ExpectedSuccess(t, vid.Pixel(0, 31))
	test.ExpectedFailure(t, vid.Pixel(0, 0))
}

func TestStartCoordinateWraps(t *testing.T) {
	vid := video.NewVideo()

	// the draw origin is taken modulo the display dimensions
	vid.DrawSprite(64, 32, []uint8{0x80})
	test.ExpectedSuccess(t, vid.Pixel(0, 0))
}

func TestClear(t *testing.T) {
	vid := video.NewVideo()

	vid.DrawSprite(10, 10, []uint8{0xff})
	vid.Redraw = false

	vid.Clear()
	test.ExpectedSuccess(t, vid.Redraw)
	for x := 0; x < 8; x++ {
		test.ExpectedFailure(t, vid.Pixel(10+x, 10))
	}
}
