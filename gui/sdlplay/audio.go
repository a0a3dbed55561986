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
	"github.com/hazzlik/gopher8/hardware/audio"

	"github.com/veandco/go-sdl2/sdl"
)

// sound plays the beep through SDL's queueing audio API. the emulation
// produces samples in timer tick sized chunks which we simply hand over to
// the queue.
type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

func newSound() (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(audio.TickSamples),
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	snd.spec = actualSpec

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

func (snd *sound) destroy() {
	sdl.CloseAudioDevice(snd.id)
}

// SetAudio implements the audio.Mixer interface.
//
// Safe to call from the emulation goroutine.
func (scr *SdlPlay) SetAudio(samples []uint8) error {
	return sdl.QueueAudio(scr.snd.id, samples)
}

// EndMixing implements the audio.Mixer interface.
func (scr *SdlPlay) EndMixing() error {
	return nil
}
