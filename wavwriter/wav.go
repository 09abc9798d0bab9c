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

// Package wavwriter records mixed APU samples and saves them as a WAV file.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/apumix/curated"
	"github.com/jetsetilly/apumix/logger"
)

// WAV files are mono, 16-bit PCM.
const (
	numChannels = 1
	bitDepth    = 16

	// audio format value for PCM data in the WAV header
	pcmFormat = 1
)

// WavWriter implements the mix.Speaker interface. Samples are buffered until
// EndMixing() is called.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int

	// number of samples at the most recent call to Push()
	pushed int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: no filename")
	}
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: invalid sample rate (%d)", sampleRate)
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// Queue implements the mix.Speaker interface.
//
// Mixer samples are unsigned and are converted to signed PCM values.
func (aw *WavWriter) Queue(sample uint16) {
	aw.buffer = append(aw.buffer, int(sample)-0x8000)
}

// Push implements the mix.Speaker interface.
func (aw *WavWriter) Push() error {
	logger.Logf(logger.Allow, "wavwriter", "%d samples queued since last push", len(aw.buffer)-aw.pushed)
	aw.pushed = len(aw.buffer)
	return nil
}

// Len returns the number of samples queued.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// EndMixing writes the queued samples to the WAV file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, numChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	// closing the encoder completes the WAV header. the file is closed in the
	// deferred function
	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
