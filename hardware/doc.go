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

// Package hardware is the container package for the emulated CHIP-8
// machine. The VM type gathers the components found in the sub-packages:
// the CPU, the 4096 bytes of memory, the 64x32 display, the hexadecimal
// keypad and the two countdown timers.
//
// The emulation is entirely passive. Nothing in this package or its
// sub-packages runs on its own clock; the driver (playmode, the debugger,
// the performance mode) decides when instructions execute (VM.Step) and
// when the timers tick (VM.DecrementTimers). The two rates are independent
// by design: timer ticks happen at the fixed rate of the emulated hardware
// while the instruction rate is a speed preference.
//
// Everything is single threaded. The driver must serialise access to the VM
// and its components; in exchange the emulation performs no locking of its
// own.
package hardware
