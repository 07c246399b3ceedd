package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatYAML  OutputFormat = "yaml"
	FormatJSON  OutputFormat = "json"
)

func validateFormat(format string) error {
	switch OutputFormat(format) {
	case FormatTable, FormatYAML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// tabular is implemented by results that have a table rendering.
type tabular interface {
	header() []string
	rows() [][]string
}

// output writes result to --output or the command's stdout in the selected
// format.
func output(cmd *cobra.Command, result any) (err error) {
	w := cmd.OutOrStdout()

	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}

		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()

		w = f
	}

	switch OutputFormat(formatOutput) {
	case FormatJSON:
		return outputJSON(w, result)
	case FormatYAML:
		return outputYAML(w, result)
	default:
		if t, ok := result.(tabular); ok {
			return outputTable(w, t)
		}

		return outputYAML(w, result)
	}
}

func outputJSON(w io.Writer, result any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}

func outputYAML(w io.Writer, result any) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	_, err = w.Write(data)

	return err
}

func outputTable(w io.Writer, t tabular) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	writeRow(tw, t.header())

	for _, row := range t.rows() {
		writeRow(tw, row)
	}

	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for _, c := range cells {
		fmt.Fprintf(w, "%s\t", c)
	}

	fmt.Fprintln(w)
}
