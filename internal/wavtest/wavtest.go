// SPDX-License-Identifier: EPL-2.0

// Package wavtest builds synthetic WAV containers for tests. It assembles
// the bytes by hand so tests can also produce malformed containers that a
// real encoder would refuse to write.
package wavtest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Chunk is a raw RIFF subchunk used to assemble test containers.
type Chunk struct {
	ID   string
	Data []byte
}

// Container assembles a RIFF/WAVE container from the given chunks,
// applying the RIFF even-length padding rule to each payload.
func Container(chunks ...Chunk) []byte {
	body := new(bytes.Buffer)

	for _, c := range chunks {
		body.WriteString(c.ID)
		binary.Write(body, binary.LittleEndian, uint32(len(c.Data)))
		body.Write(c.Data)

		if len(c.Data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(4+body.Len()))
	buf.WriteString("WAVE")
	buf.Write(body.Bytes())

	return buf.Bytes()
}

// FmtChunk builds a canonical 16-byte fmt chunk.
func FmtChunk(audioFormat, channels uint16, sampleRate uint32, bits uint16) Chunk {
	width := uint32(bits / 8)
	byteRate := sampleRate * uint32(channels) * width
	blockAlign := channels * uint16(width)

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, audioFormat)
	binary.Write(buf, binary.LittleEndian, channels)
	binary.Write(buf, binary.LittleEndian, sampleRate)
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	return Chunk{ID: "fmt ", Data: buf.Bytes()}
}

// PCMFile builds a canonical integer PCM WAV file around payload.
func PCMFile(channels uint16, sampleRate uint32, bits uint16, payload []byte) []byte {
	return Container(
		FmtChunk(1, channels, sampleRate, bits),
		Chunk{ID: "data", Data: payload},
	)
}

// Int16Bytes encodes samples as little-endian payload bytes.
func Int16Bytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}

// Int32Bytes encodes samples as little-endian payload bytes.
func Int32Bytes(samples []int32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(s))
	}

	return out
}

// Sine16 generates a mono 16-bit sine wave with the given frequency.
func Sine16(sampleRate int, frequency float64, samples int) []int16 {
	out := make([]int16, samples)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int16(32767 * math.Sin(2*math.Pi*frequency*t))
	}

	return out
}
