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

package tone_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/apumix/mix"
	"github.com/jetsetilly/apumix/test"
	"github.com/jetsetilly/apumix/tone"
)

type speaker struct {
	samples []uint16
	pushes  int
	fail    bool
}

func (s *speaker) Queue(sample uint16) {
	s.samples = append(s.samples, sample)
}

func (s *speaker) Push() error {
	s.pushes++
	if s.fail {
		return errors.New("push failed")
	}
	return nil
}

func TestPulseDuty(t *testing.T) {
	// a frequency of one eighth of the sample rate advances one step of the
	// duty sequence every sample
	p := tone.NewPulse(1, 2, 8)
	p.SetLevel(10)

	var seq []uint8
	for i := 0; i < 8; i++ {
		seq = append(seq, p.Next())
	}
	expected := []uint8{0, 0, 0, 10, 10, 10, 10, 0}
	for i := range expected {
		test.ExpectEquality(t, seq[i], expected[i], i)
	}

	// the sequence repeats
	test.ExpectEquality(t, p.Next(), uint8(0))
}

func TestPulseSilent(t *testing.T) {
	p := tone.NewPulse(440, 3, 44100)
	for i := 0; i < 1000; i++ {
		test.ExpectEquality(t, p.Next(), uint8(0), i)
	}
}

func TestSweep(t *testing.T) {
	spkr := &speaker{}
	test.DemandSuccess(t, tone.Sweep(spkr, 1000, 100*time.Millisecond))
	test.ExpectEquality(t, spkr.pushes, mix.MaxPulse+1)
	test.DemandEquality(t, len(spkr.samples), 100*(mix.MaxPulse+1))

	// the first volume is silence
	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, spkr.samples[i], uint16(0), i)
	}

	// no sample is louder than both pulses at full volume
	var loudest uint16
	for _, s := range spkr.samples {
		if s > loudest {
			loudest = s
		}
	}
	test.ExpectSuccess(t, loudest <= mix.Pulse(mix.MaxPulse, mix.MaxPulse))
	test.ExpectSuccess(t, loudest > 0)
}

func TestSweepErrors(t *testing.T) {
	test.ExpectFailure(t, tone.Sweep(&speaker{}, 0, time.Second))
	test.ExpectFailure(t, tone.Sweep(&speaker{}, 44100, 0))

	spkr := &speaker{fail: true}
	test.ExpectFailure(t, tone.Sweep(spkr, 1000, 10*time.Millisecond))
	test.ExpectEquality(t, spkr.pushes, 1)
}
