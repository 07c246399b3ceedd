package commands

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fixfft"
	"github.com/cwbudde/algo-fixfft/internal/cpu"
	"github.com/cwbudde/algo-fixfft/internal/planner"
	"github.com/cwbudde/algo-fixfft/internal/reference"
)

const (
	modeForward  = "forward"
	modeInverse  = "inverse"
	modeTwoReals = "tworeals"
)

var (
	benchSizes  string
	benchIters  int
	benchWarmup int
	benchWisdom string
	benchMode   string
	benchSeed   uint64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the transform kernels",
	Long: `Time the transforms for each size.

In tworeals mode every kernel strategy is timed and the fastest one is
recorded as wisdom, so plans created with the auto strategy use it. With
--wisdom the decisions are also written to a file for ImportWisdom.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchSizes, "sizes", "256,1024,4096,8192", "comma-separated sizes")
	benchCmd.Flags().IntVar(&benchIters, "iters", 200, "benchmark iterations")
	benchCmd.Flags().IntVar(&benchWarmup, "warmup", 10, "warmup iterations")
	benchCmd.Flags().StringVar(&benchWisdom, "wisdom", "", "export wisdom to file")
	benchCmd.Flags().StringVar(&benchMode, "mode", modeTwoReals, "benchmark mode: forward, inverse, tworeals, all")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 1, "rng seed")

	rootCmd.AddCommand(benchCmd)
}

type benchResult struct {
	Size    int     `json:"size" yaml:"size"`
	Mode    string  `json:"mode" yaml:"mode"`
	Kernel  string  `json:"kernel" yaml:"kernel"`
	NsPerOp float64 `json:"ns_per_op" yaml:"ns_per_op"`
	Best    bool    `json:"best,omitempty" yaml:"best,omitempty"`
}

type benchReport struct {
	Iterations int           `json:"iterations" yaml:"iterations"`
	Warmup     int           `json:"warmup" yaml:"warmup"`
	Results    []benchResult `json:"results" yaml:"results"`
}

func (r benchReport) header() []string {
	return []string{"size", "mode", "kernel", "ns/op", "best"}
}

func (r benchReport) rows() [][]string {
	out := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		best := ""
		if res.Best {
			best = "*"
		}

		out = append(out, []string{
			fmt.Sprint(res.Size), res.Mode, res.Kernel, fmt.Sprintf("%.1f", res.NsPerOp), best,
		})
	}

	return out
}

func runBench(cmd *cobra.Command, args []string) error {
	sizes, err := parseSizes(benchSizes)
	if err != nil {
		return err
	}

	modes, err := resolveModes(benchMode)
	if err != nil {
		return err
	}

	if benchIters <= 0 {
		return fmt.Errorf("--iters must be positive")
	}

	rng := rand.New(rand.NewPCG(benchSeed, benchSeed+1))
	wisdom := planner.NewWisdom()
	mask := cpu.DetectFeatures().Mask()
	report := benchReport{Iterations: benchIters, Warmup: benchWarmup}

	for _, n := range sizes {
		src := reference.RandomComplex(rng, n, 0.5)

		for _, mode := range modes {
			results, err := benchmarkSize(n, mode, src)
			if err != nil {
				return err
			}

			if mode == modeTwoReals {
				best := slices.MinFunc(results, func(a, b benchResult) int {
					switch {
					case a.NsPerOp < b.NsPerOp:
						return -1
					case a.NsPerOp > b.NsPerOp:
						return 1
					default:
						return 0
					}
				})

				for i := range results {
					results[i].Best = results[i].Kernel == best.Kernel
				}

				strategy, _ := fixfft.ParseKernelStrategy(best.Kernel)
				fixfft.RecordBenchmarkDecision(n, strategy)
				wisdom.Store(planner.WisdomEntry{
					Key:       planner.WisdomKey{Size: n, CPUFeatures: mask},
					Algorithm: best.Kernel,
					NsPerOp:   best.NsPerOp,
					Timestamp: time.Now().UTC(),
				})

				slog.Debug("recorded wisdom", "size", n, "kernel", best.Kernel, "ns_per_op", best.NsPerOp)
			}

			report.Results = append(report.Results, results...)
		}
	}

	if benchWisdom != "" {
		if err := fixfft.ExportWisdomTo(benchWisdom, wisdom); err != nil {
			return err
		}

		slog.Info("wisdom exported", "file", benchWisdom, "entries", wisdom.Len())
	}

	return output(cmd, report)
}

func benchmarkSize(n int, mode string, src []fixfft.Complex) ([]benchResult, error) {
	strategies := []fixfft.KernelStrategy{fixfft.KernelOptimised}
	if mode == modeTwoReals {
		strategies = []fixfft.KernelStrategy{fixfft.KernelReference, fixfft.KernelOptimised}
	}

	pts := make([]fixfft.Complex, n)
	results := make([]benchResult, 0, len(strategies))

	for _, strategy := range strategies {
		plan, err := fixfft.NewPlanWithStrategy(n, strategy)
		if err != nil {
			return nil, err
		}

		kernel := planKernel(plan, mode)

		for range benchWarmup {
			copy(pts, src)

			if err := kernel(pts); err != nil {
				return nil, err
			}
		}

		runtime.GC()

		var elapsed time.Duration

		for range benchIters {
			copy(pts, src)

			start := time.Now()

			if err := kernel(pts); err != nil {
				return nil, err
			}

			elapsed += time.Since(start)
		}

		res := benchResult{
			Size:    n,
			Mode:    mode,
			Kernel:  plan.Strategy().String(),
			NsPerOp: float64(elapsed.Nanoseconds()) / float64(benchIters),
		}

		slog.Debug("benchmarked", "size", n, "mode", mode, "kernel", res.Kernel, "ns_per_op", res.NsPerOp)

		results = append(results, res)
	}

	return results, nil
}

func planKernel(plan *fixfft.Plan, mode string) func([]fixfft.Complex) error {
	switch mode {
	case modeForward:
		return plan.Forward
	case modeInverse:
		return plan.Inverse
	default:
		return plan.ForwardTwoReals
	}
}

func resolveModes(mode string) ([]string, error) {
	switch mode {
	case "all":
		return []string{modeForward, modeInverse, modeTwoReals}, nil
	case modeForward, modeInverse, modeTwoReals:
		return []string{mode}, nil
	default:
		return nil, fmt.Errorf("unknown benchmark mode %q", mode)
	}
}
