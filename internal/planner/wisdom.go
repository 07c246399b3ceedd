package planner

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-yaml"
)

// WisdomKey identifies a benchmark context.
type WisdomKey struct {
	Size        int    `yaml:"size"`
	CPUFeatures uint64 `yaml:"cpu_features"`
}

// WisdomEntry records the fastest two-real forward kernel for a key.
type WisdomEntry struct {
	Key       WisdomKey `yaml:"key"`
	Algorithm string    `yaml:"algorithm"`
	NsPerOp   float64   `yaml:"ns_per_op,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// wisdomFile is the on-disk document written by Export.
type wisdomFile struct {
	Version int           `yaml:"version"`
	Entries []WisdomEntry `yaml:"entries"`
}

const wisdomVersion = 1

// Wisdom is a concurrency-safe cache of benchmark decisions.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[WisdomKey]WisdomEntry
}

// DefaultWisdom is consulted by plans created with KernelAuto.
var DefaultWisdom = NewWisdom()

// NewWisdom creates an empty cache.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[WisdomKey]WisdomEntry)}
}

// Store adds or replaces the entry for entry.Key.
func (w *Wisdom) Store(entry WisdomEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[entry.Key] = entry
}

// Lookup returns the entry for key.
func (w *Wisdom) Lookup(key WisdomKey) (WisdomEntry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	e, ok := w.entries[key]

	return e, ok
}

// LookupWisdom returns the recorded algorithm name for a size and feature mask.
func (w *Wisdom) LookupWisdom(size int, cpuFeatures uint64) (string, bool) {
	e, ok := w.Lookup(WisdomKey{Size: size, CPUFeatures: cpuFeatures})
	return e.Algorithm, ok
}

// Len returns the number of entries.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Clear removes all entries.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	clear(w.entries)
}

// Entries returns a snapshot sorted by size, then feature mask.
func (w *Wisdom) Entries() []WisdomEntry {
	w.mu.RLock()
	out := make([]WisdomEntry, 0, len(w.entries))

	for _, e := range w.entries {
		out = append(out, e)
	}
	w.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.Size != out[j].Key.Size {
			return out[i].Key.Size < out[j].Key.Size
		}

		return out[i].Key.CPUFeatures < out[j].Key.CPUFeatures
	})

	return out
}

// Export writes all entries as a YAML document.
func (w *Wisdom) Export(dst io.Writer) error {
	data, err := yaml.Marshal(wisdomFile{Version: wisdomVersion, Entries: w.Entries()})
	if err != nil {
		return fmt.Errorf("marshal wisdom: %w", err)
	}

	if _, err := dst.Write(data); err != nil {
		return fmt.Errorf("write wisdom: %w", err)
	}

	return nil
}

// Import merges the entries of a document produced by Export. Entries already
// present for the same key are replaced.
func (w *Wisdom) Import(src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read wisdom: %w", err)
	}

	var doc wisdomFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse wisdom: %w", err)
	}

	if doc.Version != wisdomVersion {
		return fmt.Errorf("unsupported wisdom version %d", doc.Version)
	}

	for _, e := range doc.Entries {
		if e.Key.Size <= 0 || e.Algorithm == "" {
			return fmt.Errorf("invalid wisdom entry for size %d", e.Key.Size)
		}

		w.Store(e)
	}

	return nil
}
