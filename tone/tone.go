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

// Package tone generates simple pulse waves at APU channel levels. It is used
// to drive the mixer when auditioning the mixer tables.
package tone

import (
	"time"

	"github.com/jetsetilly/apumix/curated"
	"github.com/jetsetilly/apumix/logger"
	"github.com/jetsetilly/apumix/mix"
)

// the four duty cycles of an APU pulse channel. the most significant bit is
// the first step of the sequence.
var duties = [4]uint8{
	0b00000010,
	0b00000110,
	0b00011110,
	0b11111001,
}

// Pulse is a pulse wave oscillator.
type Pulse struct {
	duty  uint8
	level uint8

	// phase is in the range [0.0, 1.0). inc is the amount the phase advances
	// every sample
	phase float64
	inc   float64
}

// NewPulse is the preferred method of initialisation for the Pulse type. The
// duty argument selects one of the four APU duty cycles.
func NewPulse(freq float64, duty int, sampleRate int) *Pulse {
	return &Pulse{
		duty: duties[duty&0x03],
		inc:  freq / float64(sampleRate),
	}
}

// SetLevel sets the output level of the pulse when the wave is high.
func (p *Pulse) SetLevel(level uint8) {
	p.level = level
}

// Next returns the output level for the next sample.
func (p *Pulse) Next() uint8 {
	step := uint(p.phase*8) & 0x07

	p.phase += p.inc
	for p.phase >= 1.0 {
		p.phase -= 1.0
	}

	if (p.duty>>(7-step))&0x01 == 0x01 {
		return p.level
	}
	return 0
}

// Sweep plays two pulse channels through the mixer at every volume, from
// silent to the loudest. Each volume is played for the step duration and is
// followed by a call to spkr.Push().
func Sweep(spkr mix.Speaker, sampleRate int, step time.Duration) error {
	if sampleRate <= 0 {
		return curated.Errorf("tone: invalid sample rate (%d)", sampleRate)
	}

	n := int(step.Seconds() * float64(sampleRate))
	if n <= 0 {
		return curated.Errorf("tone: step too short (%v)", step)
	}

	p1 := NewPulse(440, 2, sampleRate)
	p2 := NewPulse(660, 1, sampleRate)

	logger.Logf(logger.Allow, "tone", "sweep of %d volumes, %d samples per volume", mix.MaxPulse+1, n)

	for v := uint8(0); v <= mix.MaxPulse; v++ {
		p1.SetLevel(v)
		p2.SetLevel(v)
		for i := 0; i < n; i++ {
			spkr.Queue(mix.Mono(mix.Levels{
				Pulse1: p1.Next(),
				Pulse2: p2.Next(),
			}))
		}
		if err := spkr.Push(); err != nil {
			return curated.Errorf("tone: %v", err)
		}
	}

	return nil
}
