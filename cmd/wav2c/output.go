// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ik5/wav2c/carray"
)

func setupLogger(verbosity int) *zap.SugaredLogger {
	level := zap.WarnLevel

	switch verbosity {
	case 0:
	case 1:
		level = zap.InfoLevel
	default:
		level = zap.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	return logger.Sugar()
}

// writeOutputs writes the rendered text to output, or to stdout when no
// output path was given. A pre-existing header file is refused before
// anything is written. Both texts are already fully rendered, so a
// failure never leaves a partially written file behind.
func writeOutputs(logger *zap.SugaredLogger, output string, out *carray.Output) error {
	if output == "" {
		fmt.Print(out.Source)
		return nil
	}

	var headerPath string

	if out.Header != "" {
		headerPath = strings.TrimSuffix(output, filepath.Ext(output)) + ".h"
		if _, err := os.Stat(headerPath); err == nil {
			return fmt.Errorf("header file already exists: %s", headerPath)
		}
	}

	if err := os.WriteFile(output, []byte(out.Source), 0o644); err != nil {
		os.Remove(output)
		return fmt.Errorf("writing %s: %w", output, err)
	}

	logger.Infof("Output written to: %s", output)

	if headerPath == "" {
		return nil
	}

	if err := os.WriteFile(headerPath, []byte(out.Header), 0o644); err != nil {
		// Remove the pair so no half-written result remains.
		os.Remove(headerPath)
		os.Remove(output)

		return fmt.Errorf("writing %s: %w", headerPath, err)
	}

	logger.Infof("Header written to: %s", headerPath)

	return nil
}
