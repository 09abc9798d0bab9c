// This file is part of Apumix.
//
// Apumix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Apumix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Apumix.  If not, see <https://www.gnu.org/licenses/>.

// Package mix combines the output levels of the five NES APU channels into a
// single unsigned 16-bit sample. The non-linear mixing is done with the lookup
// tables from the tables package, which are built once when the package is
// initialised.
package mix

import (
	"github.com/jetsetilly/apumix/tables"
)

// Maximum levels of each channel.
const (
	MaxPulse    = 15
	MaxTriangle = 15
	MaxNoise    = 15
	MaxDMC      = 127
)

var pulse []uint16
var tnd []uint16

func init() {
	pulse = tables.Quantise(tables.Pulse.Compute())
	tnd = tables.Quantise(tables.Tnd.Compute())
}

// Levels is the output level of each channel at a moment in time.
type Levels struct {
	Pulse1   uint8
	Pulse2   uint8
	Triangle uint8
	Noise    uint8
	DMC      uint8
}

func clamp(v uint8, limit uint8) uint8 {
	if v > limit {
		return limit
	}
	return v
}

// Pulse returns the mixed output of the two pulse channels.
func Pulse(pulse1 uint8, pulse2 uint8) uint16 {
	return pulse[int(clamp(pulse1, MaxPulse))+int(clamp(pulse2, MaxPulse))]
}

// Tnd returns the mixed output of the triangle, noise and DMC channels.
func Tnd(triangle uint8, noise uint8, dmc uint8) uint16 {
	return tnd[3*int(clamp(triangle, MaxTriangle))+2*int(clamp(noise, MaxNoise))+int(clamp(dmc, MaxDMC))]
}

// Mono returns the sum of the pulse and tnd outputs. The largest possible
// value is 0x41ec + 0xbe11 which does not overflow a uint16.
func Mono(l Levels) uint16 {
	return Pulse(l.Pulse1, l.Pulse2) + Tnd(l.Triangle, l.Noise, l.DMC)
}

// Speaker is the destination for mixed samples.
type Speaker interface {
	// Queue a single sample
	Queue(sample uint16)

	// Push is called at the end of a block of samples
	Push() error
}
