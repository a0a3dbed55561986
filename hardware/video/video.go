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

// Package video implements the 64x32 monochrome display of the CHIP-8
// machine.
//
// The display is a plain pixel buffer. Nothing in this package presents the
// image on an actual screen; renderers in the gui package read the buffer
// through the Pixels() function and are told when to do so by the Redraw
// flag.
//
// Only two operations ever change the buffer: Clear() and DrawSprite(). This
// mirrors the instruction set, where CLS and DRW are the only drawing
// instructions.
package video

// Dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Video is the display buffer of the CHIP-8 machine.
type Video struct {
	pixels [Width * Height]bool

	// Redraw is set whenever the pixel buffer changes. It is for the
	// renderer to act on and to clear - the emulation only ever sets it.
	Redraw bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Reset blanks the display without requesting a redraw.
func (vid *Video) Reset() {
	for i := range vid.pixels {
		vid.pixels[i] = false
	}
	vid.Redraw = false
}

// Clear blanks the display. Implements the CLS instruction.
func (vid *Video) Clear() {
	for i := range vid.pixels {
		vid.pixels[i] = false
	}
	vid.Redraw = true
}

// DrawSprite XORs a sprite onto the display at the specified coordinates,
// one byte per row with the leftmost pixel in the most significant bit.
//
// The start coordinate wraps (modulo the display dimensions) but the sprite
// itself does not. Pixels that fall off the right or bottom edge are
// clipped.
//
// Returns true if any pixel was turned off by the draw - the collision
// condition reported through the VF register.
func (vid *Video) DrawSprite(x, y uint8, sprite []uint8) bool {
	collision := false

	px := int(x) % Width
	py := int(y) % Height

	for row, b := range sprite {
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}

			sx := px + col
			sy := py + row
			if sx >= Width || sy >= Height {
				continue
			}

			idx := sy*Width + sx
			if vid.pixels[idx] {
				collision = true
			}
			vid.pixels[idx] = !vid.pixels[idx]
		}
	}

	vid.Redraw = true

	return collision
}

// Pixel returns the state of an individual pixel.
func (vid *Video) Pixel(x, y int) bool {
	return vid.pixels[y*Width+x]
}

// Pixels returns the pixel buffer in row-major order. The returned slice is
// the live buffer, not a copy. Renderers should read it only between calls
// to the emulation (the assumed single-threaded deployment) or copy it under
// their own synchronisation.
func (vid *Video) Pixels() []bool {
	return vid.pixels[:]
}
