package main

import (
	"flag"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/joshi-prasad/optionmc"
)

// options holds the values of the model flags shared by every subcommand.
type options struct {
	cfgFile string
	cfg     optionmc.Config
	kinds   []string
}

func newOptions() *options {
	return &options{
		cfg:   optionmc.DefaultConfig(),
		kinds: []string{"call", "put"},
	}
}

var opts = newOptions()

var rootCmd = &cobra.Command{
	Use:   "optionmc",
	Short: "Price European options by Monte Carlo and Black-Scholes",
	Long: `optionmc simulates geometric Brownian motion paths for the underlying,
prices European calls and puts from the simulated terminal values and checks
them against the closed-form Black-Scholes price.

Examples:
  optionmc price
  optionmc price --paths 1000000 --seed 7
  optionmc paths --png paths.png --html paths.html --plot-paths 50`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// glog reads its settings from the standard flag set.
		flag.CommandLine.Parse(nil)
	},
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	opts.bind(flags)

	// glog registers -v, -logtostderr, ... on the standard flag set.
	flags.AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(pathsCmd)
}

func (self *options) bind(flags *pflag.FlagSet) {
	cfg := &self.cfg
	flags.StringVar(&self.cfgFile, "config", "", "JSON config file, flags override it")
	flags.Float64Var(&cfg.Model.Spot, "s0", cfg.Model.Spot, "initial price of the underlying")
	flags.Float64Var(&cfg.Strike, "strike", cfg.Strike, "strike price")
	flags.Float64Var(&cfg.Model.Maturity, "maturity", cfg.Model.Maturity, "time to maturity in years")
	flags.Float64Var(&cfg.Model.Rate, "rate", cfg.Model.Rate, "annual risk-free rate, e.g. 0.05")
	flags.Float64Var(&cfg.Model.Volatility, "sigma", cfg.Model.Volatility, "annual volatility, e.g. 0.2")
	flags.Float64Var(&cfg.Model.Drift, "mu", cfg.Model.Drift, "drift of the simulated paths (default: the rate)")
	flags.Float64Var(&cfg.Model.Step, "dt", cfg.Model.Step, "time step in years")
	flags.IntVar(&cfg.Model.Paths, "paths", cfg.Model.Paths, "number of simulated paths")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "path generator seed, 0 seeds from the clock")
	flags.StringSliceVar(&self.kinds, "kinds", self.kinds, "option kinds to price (call, put)")
	flags.IntVar(&cfg.PlotPaths, "plot-paths", cfg.PlotPaths, "number of paths drawn in charts")
}

// load overlays the config file, then any flag set on the command line. The
// drift follows the rate unless the file or --mu gives it.
func (self *options) load(flags *pflag.FlagSet) (optionmc.Config, error) {
	result := self.cfg
	driftSet := flags.Changed("mu")
	if self.cfgFile != "" {
		fileCfg, err := optionmc.LoadConfig(self.cfgFile)
		if err != nil {
			return result, err
		}
		result = self.overlay(flags, fileCfg)
		driftSet = driftSet || fileCfg.DriftSet()
	}

	if !driftSet {
		result.Model.Drift = result.Model.Rate
	}

	if self.cfgFile == "" || flags.Changed("kinds") {
		result.Kinds = result.Kinds[:0:0]
		for _, name := range self.kinds {
			kind, err := optionmc.ParseOptionKind(name)
			if err != nil {
				return result, err
			}
			result.Kinds = append(result.Kinds, kind)
		}
	}

	glog.V(1).Infof("Running with config %+v", result)
	return result, result.Validate()
}

// overlay copies every explicitly set flag onto base.
func (self *options) overlay(flags *pflag.FlagSet, base optionmc.Config) optionmc.Config {
	set := flags.Changed
	if set("s0") {
		base.Model.Spot = self.cfg.Model.Spot
	}
	if set("strike") {
		base.Strike = self.cfg.Strike
	}
	if set("maturity") {
		base.Model.Maturity = self.cfg.Model.Maturity
	}
	if set("rate") {
		base.Model.Rate = self.cfg.Model.Rate
	}
	if set("sigma") {
		base.Model.Volatility = self.cfg.Model.Volatility
	}
	if set("mu") {
		base.Model.Drift = self.cfg.Model.Drift
	}
	if set("dt") {
		base.Model.Step = self.cfg.Model.Step
	}
	if set("paths") {
		base.Model.Paths = self.cfg.Model.Paths
	}
	if set("seed") {
		base.Seed = self.cfg.Seed
	}
	if set("plot-paths") {
		base.PlotPaths = self.cfg.PlotPaths
	}
	return base
}

func joinKinds(kinds []optionmc.OptionKind) string {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}
	return strings.Join(names, ",")
}
