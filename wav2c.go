package wav2c

import (
	"fmt"
	"io"

	"github.com/ik5/wav2c/carray"
	"github.com/ik5/wav2c/formats/wav"
)

// Generate is a high-level convenience function that decodes PCM WAV
// content from r and renders it as C source text using cfg.
//
// This function runs the full pipeline:
//  1. Parses the RIFF/WAVE container and validates the integer PCM format
//  2. Renders the sample data with the configured renderer
//  3. Produces the extern-only header text when cfg.Header is set
//
// Parameters:
//   - r: the WAV content to convert
//   - cfg: the emitter configuration (array name, render format, type names)
//
// Returns:
//   - *carray.Output: the rendered source text and optional header text
//   - error: any decoding or emission error
//
// Note: This is a convenience function for common use cases. For more
// control over the pipeline, use wav.Decode and carray.Emit directly.
//
// Example:
//
//	file, _ := os.Open("beep.wav")
//	out, err := wav2c.Generate(file, carray.Config{
//	    ArrayName: "beep",
//	    Format:    carray.FormatBase10,
//	})
//	if err != nil {
//	    panic(err)
//	}
//	// out.Source now contains the C array definition
func Generate(r io.Reader, cfg carray.Config) (*carray.Output, error) {
	pcm, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	out, err := carray.Emit(pcm, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return out, nil
}

// GenerateMono is like Generate but downmixes multi-channel input to a
// single mono channel before rendering.
func GenerateMono(r io.Reader, cfg carray.Config) (*carray.Output, error) {
	pcm, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	out, err := carray.Emit(pcm.Downmix(), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return out, nil
}
