package fixfft

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-fixfft/internal/planner"
)

// Wisdom is a cache of benchmark decisions keyed by size and CPU features.
type Wisdom = planner.Wisdom

// NewWisdom creates a new empty wisdom cache.
func NewWisdom() *Wisdom {
	return planner.NewWisdom()
}

// ImportWisdom loads wisdom data from a file into the global cache.
// The file should be in the format produced by ExportWisdom.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	if err := planner.DefaultWisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ExportWisdom saves the global wisdom cache to a file.
func ExportWisdom(filename string) error {
	return ExportWisdomTo(filename, planner.DefaultWisdom)
}

// ExportWisdomTo saves a specific wisdom cache to a file.
func ExportWisdomTo(filename string, wisdom *Wisdom) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	defer file.Close()

	if err := wisdom.Export(file); err != nil {
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	return nil
}

// ImportWisdomFromString loads wisdom data from a string.
// This is useful for embedding wisdom data in compiled binaries.
func ImportWisdomFromString(data string) error {
	err := planner.DefaultWisdom.Import(strings.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to import wisdom from string: %w", err)
	}

	return nil
}

// ClearWisdom removes all entries from the global wisdom cache.
func ClearWisdom() {
	planner.DefaultWisdom.Clear()
}

// WisdomLen returns the number of entries in the global wisdom cache.
func WisdomLen() int {
	return planner.DefaultWisdom.Len()
}
