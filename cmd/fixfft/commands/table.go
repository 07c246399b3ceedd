package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fixfft"
)

var tableFloat bool

var tableCmd = &cobra.Command{
	Use:   "table N",
	Short: "Print the built-in quarter-sine table for N points",
	Args:  cobra.ExactArgs(1),
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().BoolVar(&tableFloat, "float", false, "print values as floats instead of raw Q1.31")

	rootCmd.AddCommand(tableCmd)
}

type tableEntry struct {
	Index int     `json:"index" yaml:"index"`
	Raw   int32   `json:"raw" yaml:"raw"`
	Value float64 `json:"value,omitempty" yaml:"value,omitempty"`
}

type tableReport struct {
	Size    int          `json:"size" yaml:"size"`
	Entries []tableEntry `json:"entries" yaml:"entries"`
}

func (r tableReport) header() []string {
	if tableFloat {
		return []string{"k", "sin(2πk/N)"}
	}

	return []string{"k", "q31"}
}

func (r tableReport) rows() [][]string {
	out := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		v := fmt.Sprint(e.Raw)
		if tableFloat {
			v = strconv.FormatFloat(e.Value, 'f', 10, 64)
		}

		out = append(out, []string{fmt.Sprint(e.Index), v})
	}

	return out
}

func runTable(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", args[0], err)
	}

	sine, err := fixfft.Sine(n)
	if err != nil {
		return err
	}

	report := tableReport{Size: n, Entries: make([]tableEntry, sine.Len())}
	for k := range report.Entries {
		e := tableEntry{Index: k, Raw: sine.At(k)}
		if tableFloat {
			e.Value = fixfft.ToFloat(e.Raw)
		}

		report.Entries[k] = e
	}

	return output(cmd, report)
}
