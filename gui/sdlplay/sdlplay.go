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

// Package sdlplay is a simple SDL implementation of the gui.GUI interface,
// suitable for playing games. The display is a single streaming texture the
// size of the machine's display, scaled up to the window size.
//
// SDL is not safe to use across threads so all SDL calls happen in either
// NewSdlPlay() or the Service() function, which must both be called from the
// main thread. The Render() and SetAudio() functions are safe to call from
// the emulation goroutine; Render() only stages pixels for the next call to
// Service() and SDL's audio queue is documented as thread safe.
package sdlplay

import (
	"sync"

	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/gui"
	"github.com/hazzlik/gopher8/hardware/video"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4
const windowTitle = "Gopher8"

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// all audio is handled by the sound type
	snd *sound

	// connects the gui with the emulation goroutine
	events chan gui.Event

	// feature requests are serviced in the Service() function so that all SDL
	// calls happen on the main thread
	featureReq chan featureRequest
	featureErr chan error

	// the amount of scaling applied to each pixel of the display
	scale float32

	// critical section. the pixels are written by the emulation goroutine and
	// read by the main thread
	crit struct {
		section sync.Mutex

		// pixels is the byte array that we copy to the texture before
		// applying to the renderer
		pixels []byte

		// a Render() has happened since the last texture update
		dirty bool
	}
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}

	var err error

	// set up sdl
	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// SDL window - window size is set in setWindow()
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is applied to the renderer to show the image. it is the size of
	// the machine's display; the renderer scales it to the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(video.Width), int32(video.Height))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.crit.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.crit.pixels); i += pixelDepth {
		scr.crit.pixels[i] = 255
	}

	// initialise the sound system
	scr.snd, err = newSound()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = scr.setWindow(scale)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	// note that we've elected not to show the window on startup. window is
	// instead opened on a ReqSetVisibility request

	return scr, nil
}

// use scale of -1 to reapply the existing scale value.
func (scr *SdlPlay) setWindow(scale float32) error {
	if scale >= 0 {
		scr.scale = scale
	}

	w := int32(float32(video.Width) * scr.scale)
	h := int32(float32(video.Height) * scr.scale)
	scr.window.SetSize(w, h)

	return nil
}

// Render implements the gui.GUI interface. The new image will appear on the
// next call to Service().
//
// Safe to call from the emulation goroutine.
func (scr *SdlPlay) Render(pixels []bool) error {
	scr.crit.section.Lock()
	defer scr.crit.section.Unlock()

	for i, p := range pixels {
		var v byte
		if p {
			v = 255
		}
		o := i * pixelDepth
		scr.crit.pixels[o] = v
		scr.crit.pixels[o+1] = v
		scr.crit.pixels[o+2] = v
	}
	scr.crit.dirty = true

	return nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy() {
	scr.snd.destroy()
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// IsVisible returns true if the window is currently shown.
func (scr *SdlPlay) IsVisible() bool {
	flgs := scr.window.GetFlags()
	return flgs&sdl.WINDOW_SHOWN == sdl.WINDOW_SHOWN
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}
