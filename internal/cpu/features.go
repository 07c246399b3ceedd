// Package cpu reports the CPU features of the running process.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities recorded alongside benchmark results.
type Features struct {
	HasSSE2      bool
	HasSSE41     bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// Feature bits used by Mask.
const (
	FeatureSSE2 uint64 = 1 << iota
	FeatureSSE41
	FeatureAVX2
	FeatureAVX512
	FeatureNEON
)

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// Mask packs the feature flags into a bit set for use as a map key.
func (f Features) Mask() uint64 {
	var m uint64

	if f.HasSSE2 {
		m |= FeatureSSE2
	}

	if f.HasSSE41 {
		m |= FeatureSSE41
	}

	if f.HasAVX2 {
		m |= FeatureAVX2
	}

	if f.HasAVX512 {
		m |= FeatureAVX512
	}

	if f.HasNEON {
		m |= FeatureNEON
	}

	return m
}

// String lists the architecture followed by the detected features,
// e.g. "amd64+sse2+avx2".
func (f Features) String() string {
	parts := []string{f.Architecture}

	names := []struct {
		has  bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasSSE41, "sse4.1"},
		{f.HasAVX2, "avx2"},
		{f.HasAVX512, "avx512"},
		{f.HasNEON, "neon"},
	}

	for _, n := range names {
		if n.has {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, "+")
}
