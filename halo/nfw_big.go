package halo

import (
	"math/big"

	"github.com/cosmostat/halosample/utils"
	"github.com/cosmostat/halosample/utils/bignum"
)

// muBig evaluates mu(x) = ln(1+x) - x/(1+x) with prec bits of precision. For
// x << 1 the two terms agree to leading order, so float64 evaluation loses
// roughly -log2(x) bits to cancellation; tables feeding an inverse fit are
// computed here instead.
func muBig(x *big.Float, prec uint) *big.Float {
	onePlusX := bignum.NewFloat(1, prec)
	onePlusX.Add(onePlusX, x)

	y := bignum.Log(onePlusX)
	y.Sub(y, new(big.Float).Quo(x, onePlusX))
	return y
}

// CDFBig returns CDF(r) computed with prec bits of precision.
func (p *NFW) CDFBig(r float64, prec uint) *big.Float {
	if r <= 0 {
		return bignum.NewFloat(0, prec)
	}
	if r >= p.C*p.Rs {
		return bignum.NewFloat(1, prec)
	}

	x := bignum.NewFloat(r, prec)
	x.Quo(x, bignum.NewFloat(p.Rs, prec))

	y := muBig(x, prec)
	return y.Quo(y, muBig(bignum.NewFloat(p.C, prec), prec))
}

// CDFTableBig tabulates (r_i, CDF(r_i)) like CDFTable, evaluating each node
// with prec bits of precision before rounding to float64.
func (p *NFW) CDFTableBig(n int, prec uint) (rs, us []float64) {
	rs = utils.Linspace(0, p.C*p.Rs, n)
	us = make([]float64, n)
	for i, r := range rs {
		us[i], _ = p.CDFBig(r, prec).Float64()
	}
	return rs, us
}
