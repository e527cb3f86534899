package cmd

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/cosmostat/halosample/halo"
	"github.com/cosmostat/halosample/sampler"
	"github.com/cosmostat/halosample/utils"
	"github.com/cosmostat/halosample/utils/sampling"
)

var (
	flagSamples int
	flagNodes   int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Time the three sampling strategies and summarize their draws",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().IntVar(&flagSamples, "samples", 100000, "number of radii to draw per strategy")
	compareCmd.Flags().IntVar(&flagNodes, "nodes", 1024, "number of CDF table nodes for the inverse strategies")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cobraCmd *cobra.Command, args []string) error {
	p, err := newProfile()
	if err != nil {
		return err
	}

	out := cobraCmd.OutOrStdout()
	fmt.Fprintf(out, "NFW profile: rs=%g, concentration=%g, %d draws per strategy\n\n",
		p.Rs, p.C, flagSamples)

	analyticMean := meanRadius(p)

	for _, strategy := range []struct {
		name string
		new  func(prng sampling.PRNG) (sampler.Sampler, error)
	}{
		{
			name: "rejection",
			new: func(prng sampling.PRNG) (sampler.Sampler, error) {
				return sampler.NewRejection(p, prng), nil
			},
		},
		{
			name: "table-inverse",
			new: func(prng sampling.PRNG) (sampler.Sampler, error) {
				return sampler.NewTableInverse(p, flagNodes, prng)
			},
		},
		{
			name: "rational-inverse",
			new: func(prng sampling.PRNG) (sampler.Sampler, error) {
				return sampler.NewRationalInverse(p, flagNodes, flagNumDeg, flagDenDeg, prng)
			},
		},
	} {
		prng, err := newPRNG()
		if err != nil {
			return err
		}

		s, err := strategy.new(prng)
		if err != nil {
			return fmt.Errorf("building %s sampler: %w", strategy.name, err)
		}

		start := time.Now()
		samples, err := s.SampleN(flagSamples)
		if err != nil {
			return fmt.Errorf("drawing with %s sampler: %w", strategy.name, err)
		}
		elapsed := time.Since(start)

		mean, _ := stats.Mean(samples)
		median, _ := stats.Median(samples)
		stddev, _ := stats.StandardDeviation(samples)

		fmt.Fprintf(out, "%-18s %12v  mean=%.4f (analytic %.4f)  median=%.4f  stddev=%.4f  range=[%.4f, %.4f]\n",
			strategy.name, elapsed, mean, analyticMean, median, stddev,
			utils.MinSlice(samples), utils.MaxSlice(samples))
	}

	return nil
}

// meanRadius integrates r*PDF(r) over the support with the trapezoid rule.
func meanRadius(p halo.Profile) float64 {
	lo, hi := p.Bounds()
	rs := utils.Linspace(lo, hi, 100001)
	h := rs[1] - rs[0]

	acc := 0.0
	for i := 1; i < len(rs); i++ {
		acc += 0.5 * h * (rs[i-1]*p.PDF(rs[i-1]) + rs[i]*p.PDF(rs[i]))
	}
	return acc
}
