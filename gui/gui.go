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

// Package gui defines the operations that can be performed on a visual user
// interface and the events a user interface sends back to the emulation. The
// package contains no graphical code itself; see the sdlplay package for the
// SDL implementation.
package gui

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...interface{}) error

	// Render the display. Pixel slice is in row order, one bool per pixel.
	Render(pixels []bool) error

	// Service pending GUI events. MUST be called from the main thread and
	// called often enough for the interface to feel responsive.
	Service()

	// Destroy the GUI and release resources.
	Destroy()
}
