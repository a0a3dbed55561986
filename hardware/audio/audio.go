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

// Package audio generates the waveform for the machine's one sound, a plain
// beep that plays while the sound timer is non-zero. The emulation only ever
// says "beeping" or "not beeping" once per timer tick, so samples are
// generated in tick sized chunks.
package audio

import "github.com/hazzlik/gopher8/hardware/timer"

// SampleFreq is the number of samples generated per second. Chosen so that it
// divides cleanly by the timer tick rate.
const SampleFreq = 48000

// TickSamples is the number of samples generated for each timer tick.
const TickSamples = SampleFreq / timer.TickRate

// BeepFreq is the pitch of the beep in Hz.
const BeepFreq = 440

// samples per half cycle of the square wave
const halfCycle = SampleFreq / BeepFreq / 2

// Mixer is anything that can consume the audio signal as it is produced. The
// signal arrives in tick sized chunks of unsigned 8bit mono samples.
type Mixer interface {
	SetAudio(samples []uint8) error
	EndMixing() error
}

// Beeper generates the square wave. Phase is carried over from one tick to
// the next so that a sustained beep is a continuous tone.
type Beeper struct {
	phase int
}

// Tick generates one timer tick's worth of samples. Silence if active is
// false.
func (b *Beeper) Tick(active bool) []uint8 {
	samples := make([]uint8, TickSamples)

	if !active {
		b.phase = 0
		for i := range samples {
			samples[i] = 128
		}
		return samples
	}

	for i := range samples {
		if (b.phase/halfCycle)%2 == 0 {
			samples[i] = 192
		} else {
			samples[i] = 64
		}
		b.phase++
	}

	return samples
}
