// SPDX-License-Identifier: EPL-2.0

// wav2c converts a PCM WAV file to a C array for embedded audio playback.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ik5/wav2c/carray"
	"github.com/ik5/wav2c/formats/wav"
	"github.com/ik5/wav2c/internal/config"
	"github.com/ik5/wav2c/utils"
)

// defaultMaxSamples bounds the array size. 220,000 samples of 16-bit
// 44.1kHz audio is about 5 seconds / 440 kB. Adjust the input sample rate
// to memory constraints before raising this.
const defaultMaxSamples = 220000

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cfg := config.Load()

	var verbosity int

	return &cli.App{
		Name:      "wav2c",
		Usage:     "convert a PCM WAV file to a C array for embedded audio playback",
		Version:   carray.Version,
		ArgsUsage: "INPUT",
		// The built-in version flag claims -v, which belongs to --verbose.
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "array-name",
				Aliases: []string{"a"},
				Usage:   "name of the generated array (defaults to the input file name without extension)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "path of the output file (defaults to stdout)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   carray.FormatBase10,
				Usage:   "number format for the output array (" + strings.Join(carray.DefaultRegistry().Formats(), " or ") + ")",
			},
			&cli.IntFlag{
				Name:    "max-samples",
				Aliases: []string{"m"},
				Value:   defaultMaxSamples,
				Usage:   "sanity bound on the number of samples",
			},
			&cli.BoolFlag{
				Name:    "no-comment",
				Aliases: []string{"n"},
				Usage:   "do not include a comment with the file information",
			},
			&cli.BoolFlag{
				Name:  "header",
				Usage: "also write an extern-only header file next to the output",
			},
			&cli.BoolFlag{
				Name:  "mono",
				Usage: "downmix multi-channel input to mono",
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "string to prepend to the output file before the array",
			},
			&cli.StringFlag{
				Name:    "prefix-file",
				Aliases: []string{"H"},
				Usage:   "file to read and prepend to the output file before the array",
			},
			&cli.StringFlag{
				Name:  "type-8bit",
				Value: cfg.Types.U8,
				Usage: "C type name for 8-bit samples",
			},
			&cli.StringFlag{
				Name:  "type-16bit",
				Value: cfg.Types.I16,
				Usage: "C type name for 16-bit samples",
			},
			&cli.StringFlag{
				Name:  "type-32bit",
				Value: cfg.Types.I32,
				Usage: "C type name for 32-bit samples",
			},
			&cli.StringFlag{
				Name:  "type-size",
				Value: cfg.Types.Size,
				Usage: "C type name for the sample count constant",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose output (can be repeated for more verbosity)",
				Count:   &verbosity,
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, verbosity)
		},
	}
}

func run(ctx *cli.Context, verbosity int) error {
	logger := setupLogger(verbosity)
	defer logger.Sync()

	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one input file, got %d", ctx.NArg())
	}

	input := ctx.Args().First()

	if ctx.IsSet("prefix") && ctx.IsSet("prefix-file") {
		return errors.New("--prefix and --prefix-file are mutually exclusive")
	}

	prefix := ctx.String("prefix")

	if prefixFile := ctx.String("prefix-file"); prefixFile != "" {
		raw, err := os.ReadFile(prefixFile)
		if err != nil {
			return fmt.Errorf("reading prefix file: %w", err)
		}

		prefix = strings.TrimRight(string(raw), "\n")
	}

	output := ctx.String("output")
	if output != "" {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("output file already exists: %s", output)
		}
	}

	if ctx.Bool("header") && output == "" {
		return errors.New("--header requires --output")
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	pcm, err := wav.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}

	logger.Infof("Processing file: %s", filepath.Base(input))
	logger.Infof("Sample rate: %d Hz, Channels: %d, Bits per sample: %d",
		pcm.Format.SampleRate, pcm.Format.NumChannels, pcm.Format.BitsPerSample)

	if ctx.Bool("mono") && pcm.Format.NumChannels > 1 {
		logger.Warn("Merging channels into mono")
		pcm = pcm.Downmix()
	}

	name := ctx.String("array-name")
	if name == "" {
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		name = strings.ToLower(stem)
	}

	out, err := carray.Emit(pcm, carray.Config{
		ArrayName: utils.SanitizeIdentifier(name),
		Types: carray.TypeNames{
			U8:   ctx.String("type-8bit"),
			I16:  ctx.String("type-16bit"),
			I32:  ctx.String("type-32bit"),
			Size: ctx.String("type-size"),
		},
		Format:     ctx.String("format"),
		Header:     ctx.Bool("header"),
		NoComment:  ctx.Bool("no-comment"),
		SourceInfo: filepath.Base(input),
		Prefix:     prefix,
		MaxSamples: ctx.Int("max-samples"),
	})
	if err != nil {
		return err
	}

	return writeOutputs(logger, output, out)
}
