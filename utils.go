package optionmc

import (
	"math"
)

// Relative slack used when deciding how many whole steps of size dt fit into
// a horizon, so that 0.3/0.1 counts as 3 steps and not 2.
const kStepTolerance = 1e-9

// Upper bound on the number of steps in a time grid.
const kMaxSteps = math.MaxInt32

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func MaxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// stepCount is floor(maturity/dt) up to kStepTolerance.
func stepCount(maturity float64, dt float64) int {
	return int(math.Floor(maturity / dt * (1 + kStepTolerance)))
}

// SnapStep returns the step closest to dt that divides maturity into a whole
// number of steps, so a grid built with it ends at maturity rather than at
// floor(maturity/dt)*dt. Inputs must be positive and finite.
func SnapStep(maturity float64, dt float64) float64 {
	// round to the nearest whole number of steps
	steps := math.Round(maturity / dt)
	if steps < 1 {
		steps = 1
	}
	return maturity / steps
}

func validatePositive(name string, value float64) error {
	if !isFinite(value) || value <= 0 {
		return invalidParameter("%s must be positive and finite, got %v", name, value)
	}
	return nil
}

func validateFinite(name string, value float64) error {
	if !isFinite(value) {
		return invalidParameter("%s must be finite, got %v", name, value)
	}
	return nil
}

func validateVolatility(sigma float64) error {
	if !isFinite(sigma) || sigma < 0 {
		return invalidParameter("volatility must be non-negative and finite, got %v", sigma)
	}
	return nil
}

func validateStrike(strike float64) error {
	return validatePositive("strike", strike)
}
