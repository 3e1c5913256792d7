package main

import (
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/joshi-prasad/optionmc"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Print Monte Carlo and Black-Scholes prices side by side",
	RunE: func(cmd *cobra.Command, args []string) error {
		runCfg, err := opts.load(cmd.Flags())
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := optionmc.Compare(runCfg, runCfg.Source())
		if err != nil {
			return err
		}
		glog.Infof("Priced %s in %v", joinKinds(runCfg.Kinds), time.Since(start))

		result.PrintTable(os.Stdout)
		return nil
	},
}
