package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// pcmFormatTag is the fmt chunk format tag for integer PCM.
const pcmFormatTag = 1

// Decode parses a RIFF/WAVE container and returns its integer PCM payload
// together with the format read from the fmt chunk.
//
// The container is consumed in a single forward walk. Subchunks with
// unrecognized tags are skipped using their declared length; odd-length
// payloads carry a pad byte that is not counted in the declared length and
// is consumed separately. All multi-byte fields are little-endian
// regardless of the host platform.
func Decode(r io.Reader) (*PCM, error) {
	parser := riff.New(r)

	if err := parser.ParseHeaders(); err != nil {
		return nil, ErrNotWavFile
	}

	if parser.Format != riff.WavFormatID {
		return nil, ErrNotWavFile
	}

	var (
		format    Format
		data      []byte
		fmtFound  bool
		dataFound bool
	)

	for !fmtFound || !dataFound {
		id, size, err := parser.IDnSize()
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrTruncatedFile
			}

			return nil, fmt.Errorf("%w", err)
		}

		switch id {
		case riff.FmtID:
			chunk := &riff.Chunk{
				ID:   id,
				Size: int(size),
				R:    io.LimitReader(r, int64(size)),
			}

			format, err = decodeFmtChunk(chunk)
			if err != nil {
				return nil, err
			}

			fmtFound = true
		case riff.DataFormatID:
			data = make([]byte, size)
			if _, err := io.ReadFull(r, data); err != nil {
				return nil, ErrTruncatedFile
			}

			dataFound = true
		default:
			if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
				return nil, ErrTruncatedFile
			}
		}

		if fmtFound && dataFound {
			break
		}

		// RIFF chunks are word aligned. An odd payload is followed by a
		// pad byte the declared length does not count.
		if size%2 == 1 {
			if _, err := io.CopyN(io.Discard, r, 1); err != nil {
				return nil, ErrTruncatedFile
			}
		}
	}

	if len(data)%format.FrameSize() != 0 {
		return nil, ErrMisalignedSampleData
	}

	return &PCM{Format: format, Data: data}, nil
}

func decodeFmtChunk(chunk *riff.Chunk) (Format, error) {
	var (
		format         Format
		avgBytesPerSec uint32
		blockAlign     uint16
	)

	fields := []any{
		&format.AudioFormat,
		&format.NumChannels,
		&format.SampleRate,
		&avgBytesPerSec,
		&blockAlign,
		&format.BitsPerSample,
	}

	for _, field := range fields {
		if err := chunk.ReadLE(field); err != nil {
			return Format{}, ErrTruncatedFile
		}
	}

	// Skip any fmt extension bytes.
	chunk.Drain()

	if format.AudioFormat != pcmFormatTag {
		return Format{}, ErrUnsupportedFormat
	}

	switch format.BitsPerSample {
	case 8, 16, 32:
	default:
		return Format{}, ErrUnsupportedFormat
	}

	if format.NumChannels == 0 {
		return Format{}, ErrUnsupportedFormat
	}

	return format, nil
}
