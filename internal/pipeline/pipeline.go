package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/forPelevin/diarcsv/internal/logger"
	"github.com/forPelevin/diarcsv/internal/ports"
	"github.com/forPelevin/diarcsv/internal/ports/adapters/csvreport"
	"github.com/forPelevin/diarcsv/internal/ports/adapters/jsondoc"
	"github.com/forPelevin/diarcsv/internal/usecase"
)

// StdioPath selects stdin for input or stdout for output.
const StdioPath = "-"

type Config struct {
	// InputFile and OutputFile are paths, or "-" / empty for stdin and stdout.
	InputFile  string
	OutputFile string

	SpeakerNames map[string]string
	NumberFinal  bool
	Stats        bool

	Log *logger.Logger

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

func (c Config) Validate() error {
	if c.InputFile != "" && c.InputFile != StdioPath {
		fi, err := os.Stat(c.InputFile)
		if err != nil {
			return fmt.Errorf("stat input: %w", err)
		}
		if fi.IsDir() {
			return fmt.Errorf("input %s is a directory", c.InputFile)
		}
	}
	if c.OutputFile != "" && c.OutputFile != StdioPath {
		if fi, err := os.Stat(c.OutputFile); err == nil && fi.IsDir() {
			return fmt.Errorf("output %s is a directory", c.OutputFile)
		}
	}
	for k := range c.SpeakerNames {
		if strings.TrimSpace(k) == "" {
			return errors.New("speaker name mapping has an empty label")
		}
	}
	return nil
}

func Run(ctx context.Context, cfg Config) error {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	uc := usecase.New(usecase.Deps{
		Decoder: jsondoc.New(),
		Report:  csvreport.New(),
	})

	raw, err := readInput(cfg.InputFile, stdin)
	if err != nil {
		return err
	}
	log.Debug("input read", "source", displayPath(cfg.InputFile, "stdin"), "bytes", len(raw))

	var buf bytes.Buffer
	res, err := uc.Run(ctx, usecase.Input{
		Raw:          raw,
		SpeakerNames: cfg.SpeakerNames,
		NumberFinal:  cfg.NumberFinal,
		Out:          &buf,
	})
	if err != nil {
		return err
	}
	log.Info("turns merged", "segments", res.Segments, "turns", len(res.Turns))
	if cfg.Stats {
		for _, s := range res.Speakers {
			log.Info("speaker stats", "speaker", s.Name, "segments", s.Segments, "words", s.Words, "duration", s.Duration)
		}
	}

	if err := writeOutput(cfg.OutputFile, stdout, buf.Bytes()); err != nil {
		return err
	}
	log.Debug("report written", "sink", displayPath(cfg.OutputFile, "stdout"), "bytes", buf.Len())
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if isStdio(path) {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

// writeOutput is only called with a complete report, so a failed run never
// creates or truncates the output file.
func writeOutput(path string, stdout io.Writer, b []byte) error {
	if isStdio(path) {
		if _, err := stdout.Write(b); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func isStdio(path string) bool { return path == "" || path == StdioPath }

func displayPath(path, stdio string) string {
	if isStdio(path) {
		return stdio
	}
	return path
}

// ensure adapters implement ports
var _ ports.TranscriptDecoder = (*jsondoc.Decoder)(nil)
var _ ports.ReportWriter = (*csvreport.Writer)(nil)
