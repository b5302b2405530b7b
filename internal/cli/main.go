package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	os.Exit(Execute(os.Args[1:]))
}

// Execute runs the command with args and returns the process exit code.
func Execute(args []string) int {
	_ = godotenv.Load() // best-effort: load .env if present

	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "diarcsv",
		Short:        "Convert a speaker-diarized JSON transcript into a per-turn CSV report",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}

	root.SetIn(os.Stdin)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().StringP("input-file", "i", "-", "Input JSON transcript. Reads from stdin if not provided.")
	root.Flags().StringP("output-file", "o", "-", "Output CSV file. Defaults to stdout.")
	root.Flags().StringToStringP("speaker-name", "n", nil, "Rename a speaker label, e.g. SPEAKER_00=Alice (repeatable)")
	root.Flags().Bool("number-final-turn", false, "Assign a rowid to the final turn as well")
	root.Flags().Bool("stats", false, "Log per-speaker segment, word and duration totals")
	root.Flags().String("log-level", getenvDefault("DIARCSV_LOG_LEVEL", "warn"), "Log level: debug|info|warn|error")
	root.Flags().String("log-format", getenvDefault("DIARCSV_LOG_FORMAT", "console"), "Log format: console|json")

	return root
}
