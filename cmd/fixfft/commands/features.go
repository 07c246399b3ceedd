package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fixfft"
	"github.com/cwbudde/algo-fixfft/internal/cpu"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Show detected CPU features and the kernel strategy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cpu.DetectFeatures()

		return output(cmd, featuresReport{
			Architecture: f.Architecture,
			SSE2:         f.HasSSE2,
			SSE41:        f.HasSSE41,
			AVX2:         f.HasAVX2,
			AVX512:       f.HasAVX512,
			NEON:         f.HasNEON,
			Mask:         f.Mask(),
			Summary:      f.String(),
			Strategy:     fixfft.GetKernelStrategy().String(),
			Wisdom:       fixfft.WisdomLen(),
		})
	},
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}

type featuresReport struct {
	Architecture string `json:"architecture" yaml:"architecture"`
	SSE2         bool   `json:"sse2" yaml:"sse2"`
	SSE41        bool   `json:"sse41" yaml:"sse41"`
	AVX2         bool   `json:"avx2" yaml:"avx2"`
	AVX512       bool   `json:"avx512" yaml:"avx512"`
	NEON         bool   `json:"neon" yaml:"neon"`
	Mask         uint64 `json:"mask" yaml:"mask"`
	Summary      string `json:"summary" yaml:"summary"`
	Strategy     string `json:"strategy" yaml:"strategy"`
	Wisdom       int    `json:"wisdom_entries" yaml:"wisdom_entries"`
}

func (r featuresReport) header() []string {
	return []string{"feature", "value"}
}

func (r featuresReport) rows() [][]string {
	return [][]string{
		{"arch", r.Architecture},
		{"sse2", fmt.Sprint(r.SSE2)},
		{"sse4.1", fmt.Sprint(r.SSE41)},
		{"avx2", fmt.Sprint(r.AVX2)},
		{"avx512", fmt.Sprint(r.AVX512)},
		{"neon", fmt.Sprint(r.NEON)},
		{"mask", fmt.Sprintf("%#x", r.Mask)},
		{"strategy", r.Strategy},
		{"wisdom", fmt.Sprint(r.Wisdom)},
	}
}
