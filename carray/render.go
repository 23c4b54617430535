// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ik5/wav2c/formats/wav"
)

// Format keys for the built-in renderers.
const (
	FormatBase10 = "base10"
	FormatBase16 = "base16"
)

// samplesPerLine is the number of decimal values per visual line.
const samplesPerLine = 8

// bytesPerLine is the number of escaped bytes per visual line in base16 output.
const bytesPerLine = 16

// base10Renderer writes one decimal literal per sample, interpreted per the
// WAV sign convention (8-bit unsigned, wider depths signed).
type base10Renderer struct{}

func (base10Renderer) ElemType(types TypeNames, bitsPerSample uint16) string {
	switch bitsPerSample {
	case 8:
		return types.U8
	case 16:
		return types.I16
	default:
		return types.I32
	}
}

func (base10Renderer) ArrayLen(pcm *wav.PCM) int {
	return pcm.SampleCount()
}

func (base10Renderer) RenderBody(b *strings.Builder, pcm *wav.PCM) {
	b.WriteString(" = {")

	count := pcm.SampleCount()
	for i := 0; i < count; i++ {
		if i%samplesPerLine == 0 {
			b.WriteString("\n\t")
		}

		b.WriteString(" ")
		b.WriteString(strconv.FormatInt(int64(pcm.SampleAt(i)), 10))
		b.WriteString(",")
	}

	b.WriteString("\n};\n")
}

// base16Renderer writes the raw payload as an escaped hex string literal.
// The bytes keep the little-endian order of the source buffer, so the
// consuming toolchain can reinterpret them at the real sample width. Since
// a C string literal can only initialize a char-width array, the array is
// always declared with the 8-bit type and sized in bytes.
type base16Renderer struct{}

func (base16Renderer) ElemType(types TypeNames, bitsPerSample uint16) string {
	return types.U8
}

func (base16Renderer) ArrayLen(pcm *wav.PCM) int {
	return len(pcm.Data)
}

func (base16Renderer) RenderBody(b *strings.Builder, pcm *wav.PCM) {
	b.WriteString(" =")

	for i, v := range pcm.Data {
		if i%bytesPerLine == 0 {
			if i > 0 {
				b.WriteString("\"")
			}

			b.WriteString("\n\t\"")
		}

		fmt.Fprintf(b, "\\x%02x", v)
	}

	b.WriteString("\";\n")
}
