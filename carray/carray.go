// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"fmt"
	"strings"

	"github.com/ik5/wav2c/formats/wav"
	"github.com/ik5/wav2c/utils"
)

// Version of the generator, recorded in emitted notice comments.
const Version = "1.0.0"

const generatorName = "wav2c"

// TypeNames holds the C type names used for array elements and for the
// sample count constant. Override them when the target toolchain spells
// its fixed-width types differently.
type TypeNames struct {
	U8   string
	I16  string
	I32  string
	Size string
}

// DefaultTypeNames returns the standard <stdint.h>/<stddef.h> spellings.
func DefaultTypeNames() TypeNames {
	return TypeNames{
		U8:   "uint8_t",
		I16:  "int16_t",
		I32:  "int32_t",
		Size: "size_t",
	}
}

// Config controls a single emission. It is built once from CLI and
// environment input and never mutated afterwards.
type Config struct {
	// ArrayName is the C identifier for the array. Invalid characters are
	// sanitized away before emission.
	ArrayName string
	// Types are the C type names to emit. The zero value selects
	// DefaultTypeNames.
	Types TypeNames
	// Format is the render format key, FormatBase10 or FormatBase16.
	Format string
	// Header requests a second, extern-only output.
	Header bool
	// NoComment suppresses the auto-generation notice. The zero value
	// emits it.
	NoComment bool
	// SourceInfo names the input in the notice comment (e.g. the file name).
	SourceInfo string
	// Prefix is literal text inserted before the generated declarations.
	Prefix string
	// MaxSamples bounds the sample count as a sanity check. Zero disables
	// the bound.
	MaxSamples int
}

// Output holds the rendered source text and, when requested, the matching
// extern-only header text.
type Output struct {
	Source string
	Header string
}

// Emit renders pcm as C source text. The output is deterministic: the same
// (pcm, cfg) pair always produces byte-identical text.
func Emit(pcm *wav.PCM, cfg Config) (*Output, error) {
	renderer, ok := DefaultRegistry().Get(cfg.Format)
	if !ok {
		return nil, ErrUnknownRenderFormat
	}

	count := pcm.SampleCount()
	if count == 0 {
		return nil, ErrEmptySampleSet
	}

	if cfg.MaxSamples > 0 && count > cfg.MaxSamples {
		return nil, ErrTooManySamples
	}

	if cfg.Types == (TypeNames{}) {
		cfg.Types = DefaultTypeNames()
	}

	name := utils.SanitizeIdentifier(cfg.ArrayName)
	constName := strings.ToUpper(name) + "_SAMPLE_NO"
	elemType := renderer.ElemType(cfg.Types, pcm.Format.BitsPerSample)

	var b strings.Builder

	if !cfg.NoComment {
		writeNotice(&b, pcm, cfg)
	}

	if cfg.Prefix != "" {
		b.WriteString(cfg.Prefix)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "const %s %s = %d;\n\n", cfg.Types.Size, constName, count)
	fmt.Fprintf(&b, "const %s %s[%d]", elemType, name, renderer.ArrayLen(pcm))
	renderer.RenderBody(&b, pcm)

	out := &Output{Source: b.String()}

	if cfg.Header {
		var h strings.Builder

		if !cfg.NoComment {
			writeNotice(&h, pcm, cfg)
		}

		fmt.Fprintf(&h, "extern const %s %s;\n", cfg.Types.Size, constName)
		fmt.Fprintf(&h, "extern const %s %s[];\n", elemType, name)

		out.Header = h.String()
	}

	return out, nil
}

func writeNotice(b *strings.Builder, pcm *wav.PCM, cfg Config) {
	b.WriteString("/*\n")

	if cfg.SourceInfo != "" {
		fmt.Fprintf(b, " * Generated by %s v%s from %s\n", generatorName, Version, cfg.SourceInfo)
	} else {
		fmt.Fprintf(b, " * Generated by %s v%s\n", generatorName, Version)
	}

	fmt.Fprintf(b, " * Sample rate: %d Hz, Channels: %d, Bits per sample: %d\n",
		pcm.Format.SampleRate, pcm.Format.NumChannels, pcm.Format.BitsPerSample)
	b.WriteString(" */\n\n")
}
