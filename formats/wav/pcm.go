// SPDX-License-Identifier: EPL-2.0

package wav

import "encoding/binary"

// Format describes the PCM encoding read from the fmt chunk.
type Format struct {
	// AudioFormat is the WAV format tag. Integer PCM is 1.
	AudioFormat uint16
	// NumChannels count (e.g., 1=mono, 2=stereo).
	NumChannels uint16
	// SampleRate of the PCM stream in Hz.
	SampleRate uint32
	// BitsPerSample is the per-sample width. One of 8, 16 or 32.
	BitsPerSample uint16
}

// BytesPerSample returns the byte width of a single sample.
func (f Format) BytesPerSample() int {
	return int(f.BitsPerSample) / 8
}

// FrameSize returns the byte width of one PCM frame, i.e. one sample for
// every channel at a single time instant.
func (f Format) FrameSize() int {
	return int(f.NumChannels) * f.BytesPerSample()
}

// PCM pairs a Format with the raw payload of the data chunk. The payload
// keeps the little-endian byte order of the container and is never
// re-encoded after decoding.
type PCM struct {
	Format Format
	Data   []byte
}

// SampleCount returns the number of interleaved samples in the payload.
func (p *PCM) SampleCount() int {
	return len(p.Data) / p.Format.BytesPerSample()
}

// SampleAt returns the value of the i-th interleaved sample. Per the WAV
// convention, 8-bit samples are unsigned and wider samples are signed
// little-endian.
func (p *PCM) SampleAt(i int) int32 {
	switch p.Format.BitsPerSample {
	case 8:
		return int32(p.Data[i])
	case 16:
		return int32(int16(binary.LittleEndian.Uint16(p.Data[2*i:])))
	default:
		return int32(binary.LittleEndian.Uint32(p.Data[4*i:]))
	}
}

// Downmix averages the channels of each frame into a single mono channel,
// keeping the bit depth and sample rate. Mono input is returned unchanged.
func (p *PCM) Downmix() *PCM {
	channels := int(p.Format.NumChannels)
	if channels <= 1 {
		return p
	}

	width := p.Format.BytesPerSample()
	frames := p.SampleCount() / channels
	out := make([]byte, frames*width)

	for f := 0; f < frames; f++ {
		// Sum in int64 so 32-bit samples cannot overflow.
		var sum int64
		base := f * channels
		for c := 0; c < channels; c++ {
			sum += int64(p.SampleAt(base + c))
		}
		avg := sum / int64(channels)

		switch width {
		case 1:
			out[f] = byte(avg)
		case 2:
			binary.LittleEndian.PutUint16(out[2*f:], uint16(int16(avg)))
		default:
			binary.LittleEndian.PutUint32(out[4*f:], uint32(int32(avg)))
		}
	}

	format := p.Format
	format.NumChannels = 1

	return &PCM{Format: format, Data: out}
}
