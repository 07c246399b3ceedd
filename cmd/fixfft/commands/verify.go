package commands

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fixfft"
	"github.com/cwbudde/algo-fixfft/internal/reference"
)

// maxSNR stands in for an error-free result so reports stay valid JSON.
const maxSNR = 999

var (
	verifySizes string
	verifySeed  uint64
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check accuracy against a floating-point reference",
	Long: `Run each transform on random input and compare it with gonum's
float64 FFT. The command fails when any size exceeds its error bound or
the optimised two-real kernel disagrees with the reference kernel.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifySizes, "sizes", "8,64,512,4096,8192", "comma-separated sizes")
	verifyCmd.Flags().Uint64Var(&verifySeed, "seed", 1, "rng seed")

	rootCmd.AddCommand(verifyCmd)
}

type verifyResult struct {
	Size           int     `json:"size" yaml:"size"`
	ForwardMaxLSB  float64 `json:"forward_max_lsb" yaml:"forward_max_lsb"`
	ForwardBound   float64 `json:"forward_bound" yaml:"forward_bound"`
	ForwardSNRdB   float64 `json:"forward_snr_db" yaml:"forward_snr_db"`
	RoundTripMax   float64 `json:"round_trip_max_lsb" yaml:"round_trip_max_lsb"`
	RoundTripBound float64 `json:"round_trip_bound" yaml:"round_trip_bound"`
	TwoRealsMax    float64 `json:"two_reals_max_lsb" yaml:"two_reals_max_lsb"`
	BitExact       bool    `json:"bit_exact" yaml:"bit_exact"`
	Pass           bool    `json:"pass" yaml:"pass"`
}

type verifyReport struct {
	Seed    uint64         `json:"seed" yaml:"seed"`
	Results []verifyResult `json:"results" yaml:"results"`
}

func (r verifyReport) header() []string {
	return []string{"size", "fwd lsb", "fwd bound", "snr dB", "rt lsb", "rt bound", "2real lsb", "bit-exact", "pass"}
}

func (r verifyReport) rows() [][]string {
	out := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		out = append(out, []string{
			fmt.Sprint(res.Size),
			fmt.Sprintf("%.2f", res.ForwardMaxLSB),
			fmt.Sprintf("%.0f", res.ForwardBound),
			fmt.Sprintf("%.1f", res.ForwardSNRdB),
			fmt.Sprintf("%.2f", res.RoundTripMax),
			fmt.Sprintf("%.0f", res.RoundTripBound),
			fmt.Sprintf("%.2f", res.TwoRealsMax),
			fmt.Sprint(res.BitExact),
			fmt.Sprint(res.Pass),
		})
	}

	return out
}

func runVerify(cmd *cobra.Command, args []string) error {
	sizes, err := parseSizes(verifySizes)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(verifySeed, verifySeed+1))
	report := verifyReport{Seed: verifySeed}

	var failed []int

	for _, n := range sizes {
		res, err := verifySize(rng, n)
		if err != nil {
			return err
		}

		if !res.Pass {
			failed = append(failed, n)
			slog.Warn("verification failed", "size", n, "forward_max_lsb", res.ForwardMaxLSB, "round_trip_max_lsb", res.RoundTripMax)
		}

		report.Results = append(report.Results, res)
	}

	if err := output(cmd, report); err != nil {
		return err
	}

	if len(failed) > 0 {
		return fmt.Errorf("verification failed for sizes %v", failed)
	}

	return nil
}

func verifySize(rng *rand.Rand, n int) (verifyResult, error) {
	plan, err := fixfft.NewPlanWithStrategy(n, fixfft.KernelReference)
	if err != nil {
		return verifyResult{}, err
	}

	bits := math.Log2(float64(n))
	res := verifyResult{
		Size:           n,
		ForwardBound:   2*bits + 2,
		RoundTripBound: reference.RoundTripBound(n),
	}

	// Complex forward against gonum, then back.
	pts := reference.RandomComplex(rng, n, 0.5)
	orig := reference.ToComplex128(pts)

	if err := runSteps(pts, plan.BitReverse, plan.Forward); err != nil {
		return res, err
	}

	fwd := reference.Compare(pts, reference.Forward(orig))
	res.ForwardMaxLSB = fwd.MaxErrLSB
	res.ForwardSNRdB = min(fwd.SNRdB, maxSNR)

	if err := runSteps(pts, plan.BitReverse, plan.Inverse); err != nil {
		return res, err
	}

	res.RoundTripMax = reference.Compare(pts, orig).MaxErrLSB

	// Two reals: optimised kernel must match and the pair must come back.
	pair := reference.RandomComplex(rng, n, 0.5)
	want := reference.ToComplex128(pair)
	opt := slices.Clone(pair)

	sine := plan.Table()
	if err := fixfft.ForwardTwoReals(pair, sine); err != nil {
		return res, err
	}

	if err := fixfft.ForwardTwoRealsOptimised(opt, sine); err != nil {
		return res, err
	}

	res.BitExact = slices.Equal(pair, opt)

	if err := fixfft.InverseTwoReals(pair, sine); err != nil {
		return res, err
	}

	res.TwoRealsMax = reference.Compare(pair, want).MaxErrLSB

	res.Pass = res.BitExact &&
		res.ForwardMaxLSB <= res.ForwardBound &&
		res.RoundTripMax <= res.RoundTripBound &&
		res.TwoRealsMax <= res.RoundTripBound+float64(2*n)

	slog.Debug("verified", "size", n, "pass", res.Pass, "snr_db", res.ForwardSNRdB)

	return res, nil
}

func runSteps(pts []fixfft.Complex, steps ...func([]fixfft.Complex) error) error {
	for _, step := range steps {
		if err := step(pts); err != nil {
			return err
		}
	}

	return nil
}
