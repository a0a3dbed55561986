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

// Package playmode sets the emulation running without any debugging
// features. It drives the machine at the timer tick rate, executing a number
// of instructions per tick according to the selected speed, and forwards the
// display and the beep to the gui.
package playmode

import (
	"os"
	"os/signal"

	"github.com/hazzlik/gopher8/cartridgeloader"
	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/gui"
	"github.com/hazzlik/gopher8/hardware"
	"github.com/hazzlik/gopher8/hardware/audio"
	"github.com/hazzlik/gopher8/hardware/timer"
	"github.com/hazzlik/gopher8/performance/limiter"
	"github.com/hazzlik/gopher8/wavwriter"
)

type playmode struct {
	vm       *hardware.VM
	scr      gui.GUI
	cartload cartridgeloader.Loader

	events  chan gui.Event
	intChan chan os.Signal

	paused bool
}

// Play sets the emulation running - without any debugging features.
//
// The wavFile argument is the name of a file to record the beep audio to. No
// recording takes place if it is the empty string.
func Play(scr gui.GUI, scale float32, speed string, wavFile string, cartload cartridgeloader.Loader) error {
	cycles, err := CyclesPerTick(speed)
	if err != nil {
		return err
	}

	vm := hardware.NewVM(nil)

	err = vm.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	pl := &playmode{
		vm:       vm,
		scr:      scr,
		cartload: cartload,
		events:   make(chan gui.Event, 2),
		intChan:  make(chan os.Signal, 1),
	}

	// the beep is forwarded to every attached mixer. the gui plays it; the
	// optional wavwriter records it
	mixers := make([]audio.Mixer, 0, 2)
	if mxr, ok := scr.(audio.Mixer); ok {
		mixers = append(mixers, mxr)
	}
	if wavFile != "" {
		aw, err := wavwriter.New(wavFile)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		mixers = append(mixers, aw)
	}
	defer func() {
		for _, mxr := range mixers {
			_ = mxr.EndMixing()
		}
	}()

	// connect gui
	err = scr.SetFeature(gui.ReqSetEventChan, pl.events)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetScale, scale)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// redirect interrupt signal so ctrl-c stops the emulation cleanly and the
	// deferred EndMixing() calls still happen
	signal.Notify(pl.intChan, os.Interrupt)

	beeper := &audio.Beeper{}
	lmtr := limiter.NewTickLimiter(timer.TickRate)

	for {
		lmtr.Wait()

		done, err := pl.eventHandler()
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		if done {
			return nil
		}

		if pl.paused {
			continue
		}

		for i := 0; i < cycles; i++ {
			err = vm.Step()
			if err != nil {
				return curated.Errorf("playmode: %v", err)
			}
		}
		vm.DecrementTimers()

		samples := beeper.Tick(vm.Timer.SoundActive())
		for _, mxr := range mixers {
			err = mxr.SetAudio(samples)
			if err != nil {
				return curated.Errorf("playmode: %v", err)
			}
		}

		if vm.Video.Redraw {
			err = scr.Render(vm.Video.Pixels())
			if err != nil {
				return curated.Errorf("playmode: %v", err)
			}
			vm.Video.Redraw = false
		}
	}
}

// eventHandler checks for and handles any pending gui events. Returns true if
// the emulation should end.
func (pl *playmode) eventHandler() (bool, error) {
	select {
	case <-pl.intChan:
		return true, nil

	case ev := <-pl.events:
		switch ev := ev.(type) {
		case gui.EventWindowClose:
			return true, nil
		case gui.EventKeyboard:
			return pl.keyboardHandler(ev)
		}

	default:
	}

	return false, nil
}
