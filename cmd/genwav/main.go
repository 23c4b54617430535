// SPDX-License-Identifier: EPL-2.0

// genwav generates sine wave WAV files for testing wav2c.
package main

import (
	"fmt"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "genwav",
		Usage:     "generate a sine wave WAV file for testing",
		ArgsUsage: "OUTPUT",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "sample-rate",
				Aliases: []string{"s"},
				Value:   44100,
				Usage:   "sample rate in Hz",
			},
			&cli.IntFlag{
				Name:    "channels",
				Aliases: []string{"c"},
				Value:   1,
				Usage:   "number of channels",
			},
			&cli.IntFlag{
				Name:    "bits-per-sample",
				Aliases: []string{"b"},
				Value:   16,
				Usage:   "bits per sample (8, 16 or 32)",
			},
			&cli.IntFlag{
				Name:    "pitch",
				Aliases: []string{"p"},
				Value:   440,
				Usage:   "pitch in Hz",
			},
			&cli.Float64Flag{
				Name:    "duration",
				Aliases: []string{"d"},
				Value:   1.0,
				Usage:   "duration in seconds",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one output file, got %d", ctx.NArg())
	}

	return generate(
		ctx.Args().First(),
		ctx.Int("sample-rate"),
		ctx.Int("channels"),
		ctx.Int("bits-per-sample"),
		ctx.Int("pitch"),
		ctx.Float64("duration"),
	)
}

func generate(path string, sampleRate, channels, bits, pitch int, duration float64) error {
	var amplitude float64

	switch bits {
	case 8:
		amplitude = 127
	case 16:
		amplitude = 32767
	case 32:
		amplitude = 2147483647
	default:
		return fmt.Errorf("unsupported bits per sample: %d", bits)
	}

	frames := int(float64(sampleRate) * duration)
	data := make([]int, 0, frames*channels)

	for t := 0; t < frames; t++ {
		v := int(amplitude * math.Sin(2*math.Pi*float64(pitch)*float64(t)/float64(sampleRate)))

		// 8-bit WAV samples are unsigned with a 128 offset.
		if bits == 8 {
			v += 128
		}

		for c := 0; c < channels; c++ {
			data = append(data, v)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	enc := gowav.NewEncoder(f, sampleRate, bits, channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bits,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
