// SPDX-License-Identifier: EPL-2.0

// Package carray renders PCM sample data as C source arrays for embedding
// into firmware.
//
// Given decoded WAV data, the emitter produces a source text with a sample
// count constant and a const array definition, and optionally a matching
// extern-only header text.
//
// # Output Formats
//
// Two render formats are built in:
//   - FormatBase10: one decimal literal per sample. 8-bit samples emit
//     their raw unsigned byte value; 16- and 32-bit samples emit signed
//     values, per the WAV convention.
//   - FormatBase16: the raw data bytes as an escaped hexadecimal string
//     literal. The bytes keep the little-endian order of the source
//     buffer so the consuming toolchain can reinterpret them directly at
//     the real sample width.
//
// # Quick Start
//
//	pcm, _ := wav.Decode(file)
//	out, err := carray.Emit(pcm, carray.Config{
//	    ArrayName: "beep",
//	    Format:    carray.FormatBase10,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Print(out.Source)
//
// The emitted source declares a count constant and the array:
//
//	const size_t BEEP_SAMPLE_NO = 3;
//
//	const uint8_t beep[3] = {
//	    ...
//	};
//
// # Custom Type Names
//
// Toolchains without <stdint.h> can override the emitted type names via
// Config.Types; the zero value selects the standard spellings.
//
// # Determinism
//
// Emission is pure text generation with no environment lookups: the same
// input and configuration always produce byte-identical output, which is
// what golden-file tests pin down.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrEmptySampleSet: the input holds no samples
//   - ErrTooManySamples: the sample count exceeds Config.MaxSamples
//   - ErrUnknownRenderFormat: Config.Format names no registered renderer
package carray
