package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedFormat    = errors.New("unsupported WAV format")
	ErrTruncatedFile        = errors.New("truncated WAV file")
	ErrMisalignedSampleData = errors.New("misaligned sample data")
)
