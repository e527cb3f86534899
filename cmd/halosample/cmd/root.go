package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cosmostat/halosample/halo"
	"github.com/cosmostat/halosample/utils/sampling"
)

var (
	flagRs     float64
	flagC      float64
	flagSeed   string
	flagNumDeg int
	flagDenDeg int
)

var rootCmd = &cobra.Command{
	Use:           "halosample",
	Short:         "Draw random radii from an NFW dark-matter halo profile",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&flagRs, "rs", 1.0, "scale radius of the profile")
	rootCmd.PersistentFlags().Float64Var(&flagC, "concentration", 10.0, "truncation radius in units of the scale radius")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "halosample", "seed label for the deterministic random stream; empty draws from system entropy")
	rootCmd.PersistentFlags().IntVar(&flagNumDeg, "num-degree", 4, "numerator degree of the rational approximant")
	rootCmd.PersistentFlags().IntVar(&flagDenDeg, "den-degree", 4, "denominator degree of the rational approximant")
}

func newProfile() (*halo.NFW, error) {
	return halo.NewNFW(flagRs, flagC)
}

// newPRNG returns the deterministic stream for the seed label, or a
// system-entropy stream when the label is empty.
func newPRNG() (sampling.PRNG, error) {
	if flagSeed == "" {
		return sampling.NewPRNG()
	}
	return sampling.NewSeededPRNG(flagSeed)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
