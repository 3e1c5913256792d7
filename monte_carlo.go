package optionmc

import (
	"math"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/stat"
)

// Estimate is a Monte Carlo price together with its standard error.
type Estimate struct {
	Price  float64
	StdErr float64
	Paths  int
}

// MonteCarloPrice is the discounted mean payoff over the terminal values of
// ensemble: exp(-rate*maturity) * mean(payoff(S_T)).
func MonteCarloPrice(
	ensemble *PathEnsemble,
	strike float64,
	rate float64,
	maturity float64,
	kind OptionKind) (float64, error) {

	estimate, err := MonteCarloEstimate(ensemble, strike, rate, maturity, kind)
	if err != nil {
		return 0, err
	}
	return estimate.Price, nil
}

// MonteCarloEstimate is MonteCarloPrice plus the standard error of the
// discounted sample mean. Only path terminals are read.
func MonteCarloEstimate(
	ensemble *PathEnsemble,
	strike float64,
	rate float64,
	maturity float64,
	kind OptionKind) (Estimate, error) {

	if err := kind.Validate(); err != nil {
		return Estimate{}, err
	}
	if ensemble.Len() == 0 {
		return Estimate{}, invalidParameter("path ensemble is empty")
	}
	if err := validateStrike(strike); err != nil {
		return Estimate{}, err
	}
	if err := validateFinite("rate", rate); err != nil {
		return Estimate{}, err
	}
	if err := validatePositive("maturity", maturity); err != nil {
		return Estimate{}, err
	}

	terminals := ensemble.Terminals()
	payoffs := make([]float64, len(terminals))
	for i, spot := range terminals {
		payoffs[i] = kind.Payoff(spot, strike)
	}

	discount := math.Exp(-rate * maturity)
	n := len(payoffs)
	mean, std := stat.MeanStdDev(payoffs, nil)

	estimate := Estimate{
		Price: discount * mean,
		Paths: n,
	}
	// A single path has no sample variance.
	if n > 1 {
		estimate.StdErr = discount * stat.StdErr(std, float64(n))
	}
	glog.V(2).Infof("Monte Carlo %s K=%v: price=%v stderr=%v paths=%d",
		kind, strike, estimate.Price, estimate.StdErr, n)
	return estimate, nil
}
