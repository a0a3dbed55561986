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

package sdlplay

import (
	"github.com/hazzlik/gopher8/gui"
	"github.com/hazzlik/gopher8/hardware/video"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and the
	// emulation has no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	// run any outstanding feature requests
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequest(r)
	default:
	}

	// do not check for events if no event channel has been set
	if scr.events != nil {
		// loop until there are no more events to retrieve
		empty := false
		for !empty {
			// check for SDL events. timing out straight away if there's
			// nothing
			ev := sdl.WaitEventTimeout(1)

			switch ev := ev.(type) {
			// close window
			case *sdl.QuitEvent:
				scr.events <- gui.EventWindowClose{}

			case *sdl.KeyboardEvent:
				switch ev.Type {
				case sdl.KEYDOWN:
					if ev.Repeat == 0 {
						scr.events <- gui.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Down: true}
					}
				case sdl.KEYUP:
					if ev.Repeat == 0 {
						scr.events <- gui.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Down: false}
					}
				}

			case nil:
				// if we have a nil value then WaitEventTimeout has timed out
				// and we can say that the event queue is empty
				empty = true
			}
		}
	}

	// update the display if a new image has been staged
	scr.crit.section.Lock()
	dirty := scr.crit.dirty
	if dirty {
		_ = scr.texture.Update(nil, scr.crit.pixels, video.Width*pixelDepth)
		scr.crit.dirty = false
	}
	scr.crit.section.Unlock()

	if dirty {
		_ = scr.renderer.Copy(scr.texture, nil, nil)
		scr.renderer.Present()
	}
}
