// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encode writes a canonical PCM WAV container for the given format and raw
// little-endian sample data. The data length must be a multiple of the
// frame size.
func Encode(w io.Writer, format Format, data []byte) error {
	if format.AudioFormat != pcmFormatTag {
		return ErrUnsupportedFormat
	}

	switch format.BitsPerSample {
	case 8, 16, 32:
	default:
		return ErrUnsupportedFormat
	}

	if format.NumChannels == 0 {
		return ErrUnsupportedFormat
	}

	if len(data)%format.FrameSize() != 0 {
		return ErrMisalignedSampleData
	}

	byteRate := format.SampleRate * uint32(format.FrameSize())
	blockAlign := uint16(format.FrameSize())
	dataSize := uint32(len(data))
	riffSize := 36 + dataSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], format.AudioFormat)
	binary.LittleEndian.PutUint16(header[22:24], format.NumChannels)
	binary.LittleEndian.PutUint32(header[24:28], format.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], format.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(data) == 0 {
		return nil
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
