package optionmc

import (
	"fmt"
	"math"
	"strings"
)

// OptionKind is the right carried by a European option. The zero value is
// not a valid kind.
type OptionKind int

const (
	Call OptionKind = iota + 1
	Put
)

// ParseOptionKind accepts "call"/"put" in any case, and the exchange
// shorthands "ce"/"pe".
func ParseOptionKind(s string) (OptionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "ce":
		return Call, nil
	case "put", "pe":
		return Put, nil
	}
	return 0, invalidOptionKind("option kind must be call or put, got %q", s)
}

func (self OptionKind) String() string {
	switch self {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionKind(%d)", int(self))
}

// Validate is the single check both pricers run before touching any input.
func (self OptionKind) Validate() error {
	if self == Call || self == Put {
		return nil
	}
	return invalidOptionKind("option kind must be call or put, got %s", self)
}

// Payoff is the settlement value at maturity for a terminal price spot.
// The kind must already be validated.
func (self OptionKind) Payoff(spot float64, strike float64) float64 {
	if self == Call {
		return math.Max(spot-strike, 0)
	}
	return math.Max(strike-spot, 0)
}

func (self OptionKind) MarshalText() ([]byte, error) {
	if err := self.Validate(); err != nil {
		return nil, err
	}
	return []byte(self.String()), nil
}

func (self *OptionKind) UnmarshalText(text []byte) error {
	kind, err := ParseOptionKind(string(text))
	if err != nil {
		return err
	}
	*self = kind
	return nil
}

// OptionSpec is the contract half of a pricing run.
type OptionSpec struct {
	Strike float64    `json:"strike"`
	Kind   OptionKind `json:"kind"`
}

func (self OptionSpec) Validate() error {
	if err := self.Kind.Validate(); err != nil {
		return err
	}
	return validateStrike(self.Strike)
}
