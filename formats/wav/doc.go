// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file parsing for integer PCM data.
//
// This package reads RIFF/WAVE containers and exposes the raw sample bytes
// together with the format metadata needed to interpret them. It uses the
// github.com/go-audio/riff library for walking the container chunks.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM (format tag 1)
//   - 8-bit (unsigned), 16-bit and 32-bit (signed) samples
//   - Any channel count and sample rate
//
// Compressed formats, IEEE float and other bit depths (including 24-bit)
// are rejected with ErrUnsupportedFormat.
//
// # Decoding WAV Files
//
// Use Decode to read WAV files:
//
//	file, _ := os.Open("audio.wav")
//	pcm, err := wav.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(pcm.SampleCount(), pcm.Format.SampleRate)
//
// The decoder walks the container in a single forward pass, skipping
// subchunks it does not recognize, until both the fmt and data chunks have
// been found. The raw data payload is kept byte for byte; SampleAt
// interprets individual samples (8-bit unsigned, wider depths signed
// little-endian, per the WAV convention).
//
// # Downmixing
//
// Multi-channel data can be reduced to mono by averaging each frame:
//
//	mono := pcm.Downmix()
//
// # Writing WAV Files
//
// Use Encode to create canonical PCM WAV files:
//
//	err := wav.Encode(file, format, data)
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a RIFF/WAVE container
//   - ErrUnsupportedFormat: Non-PCM data or an unsupported bit depth
//   - ErrTruncatedFile: The container ends before fmt and data were found
//   - ErrMisalignedSampleData: The data length is not a whole number of frames
//
// Example:
//
//	pcm, err := wav.Decode(file)
//	if err == wav.ErrUnsupportedFormat {
//	    fmt.Println("not integer PCM")
//	}
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (16+ bytes): audio format, sample rate, channels, bit depth
//   - data chunk: actual audio samples
//
// Chunks are word aligned; an odd-length payload is followed by a pad byte
// that its declared length does not count.
package wav
