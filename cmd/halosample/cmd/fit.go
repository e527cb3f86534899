package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/cosmostat/halosample/ratfun"
	"github.com/cosmostat/halosample/utils"
)

var (
	flagFitN    int
	flagFitPrec uint
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit a rational approximation of the inverse CDF and report its accuracy",
	RunE:  runFit,
}

func init() {
	fitCmd.Flags().IntVar(&flagFitN, "nodes", 256, "number of CDF table nodes to fit against")
	fitCmd.Flags().UintVar(&flagFitPrec, "prec", 128, "bit precision of the tabulated CDF")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cobraCmd *cobra.Command, args []string) error {
	p, err := newProfile()
	if err != nil {
		return err
	}

	rs, us := p.CDFTableBig(flagFitN, flagFitPrec)
	fn, err := ratfun.Fit(us, rs, flagNumDeg, flagDenDeg)
	if err != nil {
		return err
	}

	out := cobraCmd.OutOrStdout()
	fmt.Fprintf(out, "inverse CDF approximant, degrees (%d, %d), fitted on %d nodes\n",
		flagNumDeg, flagDenDeg, flagFitN)
	fmt.Fprintf(out, "numerator:   %v\n", fn.Num)
	fmt.Fprintf(out, "denominator: %v\n", fn.Den)

	// Verification grid, offset from the fit nodes.
	var maxErr, at float64
	for _, u := range utils.Linspace(0.0005, 0.9995, 2000) {
		want, err := p.InvCDF(u)
		if err != nil {
			return err
		}
		got, err := fn.Evaluate(u)
		if err != nil {
			return err
		}
		if e := math.Abs(got - want); e > maxErr {
			maxErr, at = e, u
		}
	}
	fmt.Fprintf(out, "max |error| over verification grid: %.3e at u=%.4f\n", maxErr, at)

	return nil
}
