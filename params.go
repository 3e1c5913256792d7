package optionmc

import (
	"golang.org/x/exp/rand"
)

// ModelParameters are the inputs of one pricing run. Drift is the drift the
// paths are sampled with; Rate is the rate payoffs are discounted at. They are
// equal for risk-neutral sampling.
type ModelParameters struct {
	Spot       float64 `json:"spot"`
	Drift      float64 `json:"drift"`
	Volatility float64 `json:"volatility"`
	Maturity   float64 `json:"maturity"`
	Step       float64 `json:"step"`
	Paths      int     `json:"paths"`
	Rate       float64 `json:"rate"`
}

func (self ModelParameters) Validate() error {
	err := validateSimulation(self.Spot, self.Drift, self.Volatility,
		self.Maturity, self.Step, self.Paths)
	if err != nil {
		return err
	}
	return validateFinite("rate", self.Rate)
}

func (self ModelParameters) Simulate(src rand.Source) (TimeGrid, *PathEnsemble, error) {
	return SimulatePaths(self.Spot, self.Drift, self.Volatility, self.Maturity,
		self.Step, self.Paths, src)
}

// MonteCarlo prices option against an ensemble simulated from these
// parameters.
func (self ModelParameters) MonteCarlo(
	ensemble *PathEnsemble, option OptionSpec) (Estimate, error) {
	return MonteCarloEstimate(ensemble, option.Strike, self.Rate,
		self.Maturity, option.Kind)
}

// Analytic is the Black-Scholes price of option under these parameters.
func (self ModelParameters) Analytic(option OptionSpec) (float64, error) {
	return AnalyticPrice(self.Spot, option.Strike, self.Maturity, self.Rate,
		self.Volatility, option.Kind)
}
