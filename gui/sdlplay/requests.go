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
	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/gui"

	"github.com/veandco/go-sdl2/sdl"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []interface{}
}

// SetFeature implements the gui.GUI interface. The request is serviced on the
// next call to Service() so that SDL is only ever touched from the main
// thread.
//
// Safe to call from the emulation goroutine.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...interface{}) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// feature requests have been handed over to the featureReq channel. we
// service any requests on that channel here.
func (scr *SdlPlay) serviceFeatureRequest(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- curated.Errorf("sdlplay: %v", r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		scr.events = request.args[0].(chan gui.Event)

	case gui.ReqSetVisibility:
		scr.showWindow(request.args[0].(bool))

	case gui.ReqToggleVisibility:
		if scr.window.GetFlags()&sdl.WINDOW_HIDDEN == sdl.WINDOW_HIDDEN {
			scr.showWindow(true)
		} else {
			scr.showWindow(false)
		}

	case gui.ReqSetScale:
		err = scr.setWindow(request.args[0].(float32))

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.featureErr <- err
}
