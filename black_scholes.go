package optionmc

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	kDaysPerYear = 365.0
	kPercent     = 100.0
)

// OptionGreeks are the Black-Scholes sensitivities of one option. Theta is
// per calendar day, Vega and Rho are per 1% move in volatility and rate.
type OptionGreeks struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}

// BlackScholes holds the inputs of the closed-form European option model.
type BlackScholes struct {
	AssetPrice   float64
	StrikePrice  float64
	TimeToExpiry float64
	InterestRate float64
	Volatility   float64
}

// NewBlackScholes validates the model inputs. Volatility may be zero, in
// which case prices fall back to the discounted intrinsic value.
func NewBlackScholes(
	assetPrice float64,
	strikePrice float64,
	timeToExpiry float64,
	interestRate float64,
	volatility float64) (*BlackScholes, error) {

	if err := validatePositive("initial price", assetPrice); err != nil {
		return nil, err
	}
	if err := validateStrike(strikePrice); err != nil {
		return nil, err
	}
	if err := validatePositive("maturity", timeToExpiry); err != nil {
		return nil, err
	}
	if err := validateFinite("rate", interestRate); err != nil {
		return nil, err
	}
	if err := validateVolatility(volatility); err != nil {
		return nil, err
	}

	return &BlackScholes{
		AssetPrice:   assetPrice,
		StrikePrice:  strikePrice,
		TimeToExpiry: timeToExpiry,
		InterestRate: interestRate,
		Volatility:   volatility,
	}, nil
}

// AnalyticPrice is the Black-Scholes price of a European option:
//
//	d1   = (ln(S0/K) + (r + sigma^2/2) T) / (sigma sqrt(T))
//	d2   = d1 - sigma sqrt(T)
//	call = S0 N(d1) - K exp(-rT) N(d2)
//	put  = K exp(-rT) N(-d2) - S0 N(-d1)
//
// With sigma == 0 the price is the discounted intrinsic value.
func AnalyticPrice(
	s0 float64,
	strike float64,
	maturity float64,
	rate float64,
	sigma float64,
	kind OptionKind) (float64, error) {

	if err := kind.Validate(); err != nil {
		return 0, err
	}
	bs, err := NewBlackScholes(s0, strike, maturity, rate, sigma)
	if err != nil {
		return 0, err
	}
	return bs.Price(kind)
}

// CalculateAValue is sigma*sqrt(T), the standard deviation of the log
// return to expiry.
func (self *BlackScholes) CalculateAValue() float64 {
	return self.Volatility * math.Sqrt(self.TimeToExpiry)
}

// D1 is only meaningful for a positive volatility.
func (self *BlackScholes) D1() float64 {
	return (math.Log(self.AssetPrice/self.StrikePrice) +
		(self.InterestRate+self.Volatility*self.Volatility/2)*self.TimeToExpiry) /
		self.CalculateAValue()
}

func (self *BlackScholes) D2() float64 {
	return self.D1() - self.CalculateAValue()
}

// DiscountFactor is exp(-rT), the present value of one unit paid at expiry.
func (self *BlackScholes) DiscountFactor() float64 {
	return math.Exp(-self.InterestRate * self.TimeToExpiry)
}

// NormCdf is the standard normal cumulative distribution function.
func (self *BlackScholes) NormCdf(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormPdf is the standard normal density.
func (self *BlackScholes) NormPdf(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}

// Price returns the option value. The put leg evaluates N(-d) directly
// rather than 1-N(d), which keeps deep out-of-the-money prices accurate.
func (self *BlackScholes) Price(kind OptionKind) (float64, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	strikePv := self.StrikePrice * self.DiscountFactor()
	if self.Volatility == 0 {
		// The asset grows deterministically at the rate, so the option is
		// worth its intrinsic value against the discounted strike.
		if kind == Call {
			return MaxFloat(self.AssetPrice-strikePv, 0), nil
		}
		return MaxFloat(strikePv-self.AssetPrice, 0), nil
	}

	d1 := self.D1()
	d2 := self.D2()
	var price float64
	if kind == Call {
		price = self.AssetPrice*self.NormCdf(d1) - strikePv*self.NormCdf(d2)
	} else {
		price = strikePv*self.NormCdf(-d2) - self.AssetPrice*self.NormCdf(-d1)
	}
	// Both terms vanish far out of the money and the difference can round
	// a hair below zero.
	return MaxFloat(price, 0), nil
}

// Greeks returns the option sensitivities. With zero volatility Gamma and
// Vega are zero and the remaining Greeks are those of the deterministic
// payoff.
func (self *BlackScholes) Greeks(kind OptionKind) (OptionGreeks, error) {
	if err := kind.Validate(); err != nil {
		return OptionGreeks{}, err
	}

	b := self.DiscountFactor()
	strikePv := self.StrikePrice * b
	if self.Volatility == 0 {
		return self.deterministicGreeks(kind, strikePv), nil
	}

	sqrtT := math.Sqrt(self.TimeToExpiry)
	d1 := self.D1()
	d2 := self.D2()
	pdf := self.NormPdf(d1)

	// Gamma and Vega are the same for a call and a put at the same strike.
	greeks := OptionGreeks{
		Gamma: pdf / (self.AssetPrice * self.CalculateAValue()),
		Vega:  self.AssetPrice * pdf * sqrtT / kPercent,
	}

	// Time decay of the volatility term, common to both kinds.
	decay := -self.AssetPrice * pdf * self.Volatility / (2 * sqrtT)
	if kind == Call {
		greeks.Delta = self.NormCdf(d1)
		greeks.Theta = (decay - self.InterestRate*strikePv*self.NormCdf(d2)) / kDaysPerYear
		greeks.Rho = self.TimeToExpiry * strikePv * self.NormCdf(d2) / kPercent
	} else {
		greeks.Delta = -self.NormCdf(-d1)
		greeks.Theta = (decay + self.InterestRate*strikePv*self.NormCdf(-d2)) / kDaysPerYear
		greeks.Rho = -self.TimeToExpiry * strikePv * self.NormCdf(-d2) / kPercent
	}
	return greeks, nil
}

func (self *BlackScholes) deterministicGreeks(
	kind OptionKind, strikePv float64) OptionGreeks {

	inTheMoney := self.AssetPrice > strikePv
	sign := 1.0
	if kind == Put {
		inTheMoney = self.AssetPrice < strikePv
		sign = -1.0
	}
	if !inTheMoney {
		return OptionGreeks{}
	}
	return OptionGreeks{
		Delta: sign,
		Theta: -sign * self.InterestRate * strikePv / kDaysPerYear,
		Rho:   sign * self.TimeToExpiry * strikePv / kPercent,
	}
}

// PutCallParityGap measures how far a call and put price at this strike and
// expiry are from put-call parity under continuous compounding:
//
//	C - P = S - K exp(-rT)
//
// A non-zero gap means the pair admits a risk-free arbitrage.
func (self *BlackScholes) PutCallParityGap(callPrice float64, putPrice float64) float64 {
	return callPrice - putPrice -
		(self.AssetPrice - self.StrikePrice*self.DiscountFactor())
}
