package optionmc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/joshi-prasad/optionmc"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func mustPrice(t *testing.T, s0, k, maturity, r, sigma float64, kind optionmc.OptionKind) float64 {
	t.Helper()
	price, err := optionmc.AnalyticPrice(s0, k, maturity, r, sigma, kind)
	if err != nil {
		t.Fatalf("AnalyticPrice(S=%v K=%v T=%v r=%v sigma=%v %s) error: %v",
			s0, k, maturity, r, sigma, kind, err)
	}
	return price
}

func TestAnalyticPrice_ReferenceCase(t *testing.T) {
	t.Parallel()

	// S=100, K=100, r=5%, sigma=20%, T=1
	call := mustPrice(t, 100, 100, 1, 0.05, 0.2, optionmc.Call)
	put := mustPrice(t, 100, 100, 1, 0.05, 0.2, optionmc.Put)

	if !almostEqual(call, 10.450583572185565, 1e-6) {
		t.Fatalf("call price mismatch: got=%v", call)
	}
	if !almostEqual(put, 5.573526022256971, 1e-6) {
		t.Fatalf("put price mismatch: got=%v", put)
	}
}

func TestAnalyticPrice_PutCallParity(t *testing.T) {
	t.Parallel()

	for _, s0 := range []float64{50, 100, 180} {
		for _, k := range []float64{40, 100, 250} {
			for _, maturity := range []float64{0.1, 1, 5} {
				for _, r := range []float64{-0.01, 0, 0.08} {
					for _, sigma := range []float64{0, 0.05, 0.3, 1.2} {
						call := mustPrice(t, s0, k, maturity, r, sigma, optionmc.Call)
						put := mustPrice(t, s0, k, maturity, r, sigma, optionmc.Put)
						left := call - put
						right := s0 - k*math.Exp(-r*maturity)
						if !almostEqual(left, right, 1e-10) {
							t.Fatalf("parity mismatch S=%v K=%v T=%v r=%v sigma=%v: left=%v right=%v",
								s0, k, maturity, r, sigma, left, right)
						}
					}
				}
			}
		}
	}
}

func TestAnalyticPrice_MonotoneInStrike(t *testing.T) {
	t.Parallel()

	prevCall, prevPut := math.Inf(1), math.Inf(-1)
	for k := 40.0; k <= 200; k += 5 {
		call := mustPrice(t, 100, k, 1, 0.05, 0.25, optionmc.Call)
		put := mustPrice(t, 100, k, 1, 0.05, 0.25, optionmc.Put)
		if call > prevCall {
			t.Fatalf("call price increased at K=%v: %v > %v", k, call, prevCall)
		}
		if put < prevPut {
			t.Fatalf("put price decreased at K=%v: %v < %v", k, put, prevPut)
		}
		prevCall, prevPut = call, put
	}
}

func TestAnalyticPrice_NonNegative(t *testing.T) {
	t.Parallel()

	for _, k := range []float64{1, 20, 100, 500, 5000} {
		for _, sigma := range []float64{0, 0.01, 0.2, 3} {
			for _, kind := range []optionmc.OptionKind{optionmc.Call, optionmc.Put} {
				price := mustPrice(t, 100, k, 0.5, 0.03, sigma, kind)
				if price < 0 || math.IsNaN(price) {
					t.Fatalf("%s K=%v sigma=%v price negative: %v", kind, k, sigma, price)
				}
			}
		}
	}
}

func TestAnalyticPrice_ZeroVolatility(t *testing.T) {
	t.Parallel()

	// The option is worth its intrinsic value against the discounted strike.
	discount := math.Exp(-0.05)

	call := mustPrice(t, 100, 120, 1, 0.05, 0, optionmc.Call)
	if call != 0 {
		t.Fatalf("out of the money call mismatch: got=%v", call)
	}
	put := mustPrice(t, 100, 120, 1, 0.05, 0, optionmc.Put)
	if !almostEqual(put, 120*discount-100, 1e-12) {
		t.Fatalf("in the money put mismatch: got=%v", put)
	}
	call = mustPrice(t, 100, 90, 1, 0.05, 0, optionmc.Call)
	if !almostEqual(call, 100-90*discount, 1e-12) {
		t.Fatalf("in the money call mismatch: got=%v", call)
	}

	// Continuous in the small-volatility limit.
	nearZero := mustPrice(t, 100, 90, 1, 0.05, 1e-8, optionmc.Call)
	if !almostEqual(call, nearZero, 1e-6) {
		t.Fatalf("sigma->0 limit mismatch: got=%v want=%v", nearZero, call)
	}
}

func TestAnalyticPrice_InvalidKind(t *testing.T) {
	t.Parallel()

	kind, err := optionmc.ParseOptionKind("straddle")
	if !errors.Is(err, optionmc.ErrInvalidOptionKind) {
		t.Fatalf("parse error = %v, want ErrInvalidOptionKind", err)
	}
	if _, err := optionmc.AnalyticPrice(100, 100, 1, 0.05, 0.2, kind); !errors.Is(err, optionmc.ErrInvalidOptionKind) {
		t.Fatalf("analytic error = %v, want ErrInvalidOptionKind", err)
	}

	grid, paths, err := optionmc.SimulatePaths(100, 0.05, 0.2, 1, 0.5, 10, testSource(1))
	if err != nil || grid.Len() != 3 {
		t.Fatalf("SimulatePaths error: %v", err)
	}
	if _, err := optionmc.MonteCarloPrice(paths, 100, 0.05, 1, kind); !errors.Is(err, optionmc.ErrInvalidOptionKind) {
		t.Fatalf("monte carlo error = %v, want ErrInvalidOptionKind", err)
	}
}

func TestAnalyticPrice_InvalidInputs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                      string
		s0, k, maturity, r, sigma float64
	}{
		{"zero spot", 0, 100, 1, 0.05, 0.2},
		{"negative strike", 100, -1, 1, 0.05, 0.2},
		{"zero maturity", 100, 100, 0, 0.05, 0.2},
		{"negative volatility", 100, 100, 1, 0.05, -0.2},
		{"nan rate", 100, 100, 1, math.NaN(), 0.2},
		{"infinite volatility", 100, 100, 1, 0.05, math.Inf(1)},
	}
	for _, c := range cases {
		_, err := optionmc.AnalyticPrice(c.s0, c.k, c.maturity, c.r, c.sigma, optionmc.Call)
		if !errors.Is(err, optionmc.ErrInvalidParameter) {
			t.Fatalf("%s: error = %v, want ErrInvalidParameter", c.name, err)
		}
	}
}

func TestBlackScholes_GreeksMatchFiniteDifferences(t *testing.T) {
	t.Parallel()

	const (
		s0, k, maturity, r, sigma = 105.0, 100.0, 0.75, 0.04, 0.3
	)
	price := func(s0, maturity, r, sigma float64, kind optionmc.OptionKind) float64 {
		return mustPrice(t, s0, k, maturity, r, sigma, kind)
	}

	bs, err := optionmc.NewBlackScholes(s0, k, maturity, r, sigma)
	if err != nil {
		t.Fatalf("NewBlackScholes error: %v", err)
	}

	for _, kind := range []optionmc.OptionKind{optionmc.Call, optionmc.Put} {
		greeks, err := bs.Greeks(kind)
		if err != nil {
			t.Fatalf("Greeks error: %v", err)
		}

		const h = 1e-3
		delta := (price(s0+h, maturity, r, sigma, kind) - price(s0-h, maturity, r, sigma, kind)) / (2 * h)
		if !almostEqual(greeks.Delta, delta, 1e-6) {
			t.Fatalf("%s delta mismatch: got=%v want=%v", kind, greeks.Delta, delta)
		}

		const hs = 0.01
		gamma := (price(s0+hs, maturity, r, sigma, kind) - 2*price(s0, maturity, r, sigma, kind) +
			price(s0-hs, maturity, r, sigma, kind)) / (hs * hs)
		if !almostEqual(greeks.Gamma, gamma, 1e-5) {
			t.Fatalf("%s gamma mismatch: got=%v want=%v", kind, greeks.Gamma, gamma)
		}

		const hv = 1e-5
		vega := (price(s0, maturity, r, sigma+hv, kind) - price(s0, maturity, r, sigma-hv, kind)) / (2 * hv) / 100
		if !almostEqual(greeks.Vega, vega, 1e-6) {
			t.Fatalf("%s vega mismatch: got=%v want=%v", kind, greeks.Vega, vega)
		}

		rho := (price(s0, maturity, r+hv, sigma, kind) - price(s0, maturity, r-hv, sigma, kind)) / (2 * hv) / 100
		if !almostEqual(greeks.Rho, rho, 1e-6) {
			t.Fatalf("%s rho mismatch: got=%v want=%v", kind, greeks.Rho, rho)
		}

		theta := -(price(s0, maturity+hv, r, sigma, kind) - price(s0, maturity-hv, r, sigma, kind)) / (2 * hv) / 365
		if !almostEqual(greeks.Theta, theta, 1e-6) {
			t.Fatalf("%s theta mismatch: got=%v want=%v", kind, greeks.Theta, theta)
		}
	}

	call, _ := bs.Greeks(optionmc.Call)
	put, _ := bs.Greeks(optionmc.Put)
	if !almostEqual(call.Delta-put.Delta, 1, 1e-12) {
		t.Fatalf("call delta - put delta = %v, want 1", call.Delta-put.Delta)
	}
	if call.Gamma != put.Gamma || call.Vega != put.Vega {
		t.Fatalf("gamma/vega differ between call and put: %+v %+v", call, put)
	}
}

func TestBlackScholes_ZeroVolatilityGreeks(t *testing.T) {
	t.Parallel()

	bs, err := optionmc.NewBlackScholes(100, 90, 1, 0.05, 0)
	if err != nil {
		t.Fatalf("NewBlackScholes error: %v", err)
	}
	call, _ := bs.Greeks(optionmc.Call)
	put, _ := bs.Greeks(optionmc.Put)

	strikePv := 90 * math.Exp(-0.05)
	if call.Delta != 1 || call.Gamma != 0 || call.Vega != 0 {
		t.Fatalf("call greeks mismatch: %+v", call)
	}
	if !almostEqual(call.Rho, strikePv/100, 1e-12) {
		t.Fatalf("call rho mismatch: got=%v", call.Rho)
	}
	if !almostEqual(call.Theta, -0.05*strikePv/365, 1e-12) {
		t.Fatalf("call theta mismatch: got=%v", call.Theta)
	}
	if put != (optionmc.OptionGreeks{}) {
		t.Fatalf("out of the money put greeks should be zero: %+v", put)
	}
}

func TestBlackScholes_PutCallParityGap(t *testing.T) {
	t.Parallel()

	bs, err := optionmc.NewBlackScholes(100, 100, 1, 0.05, 0.2)
	if err != nil {
		t.Fatalf("NewBlackScholes error: %v", err)
	}
	call, _ := bs.Price(optionmc.Call)
	put, _ := bs.Price(optionmc.Put)
	if gap := bs.PutCallParityGap(call, put); !almostEqual(gap, 0, 1e-10) {
		t.Fatalf("parity gap of model prices: %v", gap)
	}
	if gap := bs.PutCallParityGap(call+0.5, put); !almostEqual(gap, 0.5, 1e-10) {
		t.Fatalf("parity gap mismatch: %v", gap)
	}
	if _, err := bs.Greeks(0); !errors.Is(err, optionmc.ErrInvalidOptionKind) {
		t.Fatalf("Greeks error = %v, want ErrInvalidOptionKind", err)
	}
}
