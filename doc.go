// SPDX-License-Identifier: EPL-2.0

// Package wav2c converts PCM WAV audio files into C source arrays for
// embedding into firmware.
//
// The pipeline is a single synchronous pass: a RIFF/WAVE container is
// parsed, its integer PCM payload is validated, and the sample data is
// re-encoded as a textual array literal with a matching sample count
// constant. There is no persistent state and no concurrency; the whole
// input and output are held in memory.
//
// # Quick Start
//
// The simplest way to convert a file is using Generate:
//
//	file, _ := os.Open("beep.wav")
//	out, err := wav2c.Generate(file, carray.Config{
//	    ArrayName: "beep",
//	    Format:    carray.FormatBase10,
//	})
//
//	// out.Source holds the C source text
//
// GenerateMono additionally downmixes multi-channel input to mono by
// averaging each frame.
//
// # Pipeline Components
//
// For more control, use the subpackages directly:
//
//	// Parse the container
//	pcm, _ := wav.Decode(file)
//
//	// Render the samples
//	out, _ := carray.Emit(pcm, cfg)
//
// The formats/wav package handles the container: it walks subchunks
// sequentially, skips unknown tags, and rejects anything that is not
// 8/16/32-bit integer PCM. The carray package handles rendering: decimal
// literals (base10) or an escaped hex string of the raw little-endian
// bytes (base16), with configurable C type names and optional extern-only
// header output.
//
// # Supported Input
//
//   - RIFF/WAVE container, integer PCM (format tag 1)
//   - 8-bit (unsigned), 16-bit and 32-bit (signed) samples
//   - Any channel count and sample rate
//
// IEEE float, compressed formats and other bit depths are rejected.
//
// # Command Line Tools
//
// cmd/wav2c is the converter binary; cmd/genwav generates sine wave WAV
// files for testing. Type names can be overridden per width with the
// WAV2C_TYPE_8BIT, WAV2C_TYPE_16BIT, WAV2C_TYPE_32BIT and WAV2C_TYPE_SIZE
// environment variables.
//
// See the individual subpackages for more detailed documentation.
package wav2c
