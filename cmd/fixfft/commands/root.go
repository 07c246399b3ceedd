package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose      bool
	formatOutput string
	outputFile   string
)

var rootCmd = &cobra.Command{
	Use:   "fixfft",
	Short: "Fixed-point FFT benchmarking and verification",
	Long: `fixfft - tools for the Q1.31 fixed-point FFT library.

Examples:
  # Benchmark the two-real kernels and save the winners
  fixfft bench --mode tworeals --wisdom fixfft.wisdom

  # Check accuracy against gonum for a few sizes
  fixfft verify --sizes 64,1024,8192

  # Dump the 256-point sine table as JSON
  fixfft table 256 --float --format json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

		return validateFormat(formatOutput)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&formatOutput, "format", "f", string(FormatTable), "output format: table, yaml or json")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}
