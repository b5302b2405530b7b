package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/forPelevin/diarcsv/internal/logger"
	"github.com/forPelevin/diarcsv/internal/pipeline"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command) error {
	input, _ := cmd.Flags().GetString("input-file")
	output, _ := cmd.Flags().GetString("output-file")
	flagNames, _ := cmd.Flags().GetStringToString("speaker-name")
	numberFinal, _ := cmd.Flags().GetBool("number-final-turn")
	withStats, _ := cmd.Flags().GetBool("stats")
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")

	log, err := logger.New(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer log.Sync()

	names, err := parseSpeakerNames(os.Getenv("DIARCSV_SPEAKER_NAMES"))
	if err != nil {
		return fmt.Errorf("config: DIARCSV_SPEAKER_NAMES: %w", err)
	}
	for k, v := range flagNames {
		names[k] = v
	}

	cfg := pipeline.Config{
		InputFile:    input,
		OutputFile:   output,
		SpeakerNames: names,
		NumberFinal:  numberFinal,
		Stats:        withStats,
		Log:          log,
		Stdin:        cmd.InOrStdin(),
		Stdout:       cmd.OutOrStdout(),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(context.Background(), cfg)
}

// parseSpeakerNames reads "A=Alice,B=Bob".
func parseSpeakerNames(s string) (map[string]string, error) {
	out := map[string]string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%q must be LABEL=NAME", part)
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
