package optionmc

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

// Config describes one comparison run: the model, the contract terms and how
// the results are reported.
type Config struct {
	Model  ModelParameters `json:"model"`
	Strike float64         `json:"strike"`
	Kinds  []OptionKind    `json:"kinds"`

	// Seed of the path generator. Zero seeds from the clock.
	Seed uint64 `json:"seed"`

	// Number of sample paths drawn in charts.
	PlotPaths int `json:"plot_paths"`

	driftSet bool
}

// DefaultConfig is an at-the-money one year option under risk-neutral
// sampling.
func DefaultConfig() Config {
	const rate = 0.05
	return Config{
		Model: ModelParameters{
			Spot:       100,
			Drift:      rate,
			Volatility: 0.2,
			Maturity:   1.0,
			Step:       0.01,
			Paths:      10000,
			Rate:       rate,
		},
		Strike:    100,
		Kinds:     []OptionKind{Call, Put},
		PlotPaths: 100,
	}
}

// LoadConfig reads a JSON file over DefaultConfig. Fields missing from the
// file keep their defaults, except the drift which follows the file's rate
// unless the file gives one.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		msg := fmt.Sprintf("Reading config %s failed with error=%s", path, err)
		glog.Error(msg)
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		msg := fmt.Sprintf("Parsing config %s failed with error=%s", path, err)
		glog.Error(msg)
		return cfg, err
	}

	var drift struct {
		Model struct {
			Drift *float64 `json:"drift"`
		} `json:"model"`
	}
	if err := json.Unmarshal(data, &drift); err != nil {
		msg := fmt.Sprintf("Parsing config %s failed with error=%s", path, err)
		glog.Error(msg)
		return cfg, err
	}
	if drift.Model.Drift != nil {
		cfg.driftSet = true
	} else {
		cfg.Model.Drift = cfg.Model.Rate
	}

	glog.Info("Loaded config ", path)
	return cfg, cfg.Validate()
}

// DriftSet reports whether the drift was given explicitly instead of
// following the rate.
func (self Config) DriftSet() bool {
	return self.driftSet
}

func (self Config) Validate() error {
	if err := self.Model.Validate(); err != nil {
		return err
	}
	if err := validateStrike(self.Strike); err != nil {
		return err
	}
	if len(self.Kinds) == 0 {
		return invalidOptionKind("at least one option kind is required")
	}
	for _, kind := range self.Kinds {
		if err := kind.Validate(); err != nil {
			return err
		}
	}
	if self.PlotPaths < 0 {
		return invalidParameter("plot path count must not be negative, got %d",
			self.PlotPaths)
	}
	return nil
}

// Option is the contract of the given kind at the configured strike.
func (self Config) Option(kind OptionKind) OptionSpec {
	return OptionSpec{
		Strike: self.Strike,
		Kind:   kind,
	}
}

// Source returns the random source for a run.
func (self Config) Source() rand.Source {
	seed := self.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		glog.Info("Seeding path generator from the clock, seed=", seed)
	}
	return rand.NewSource(seed)
}
