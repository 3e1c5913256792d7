package main

import (
	"errors"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/joshi-prasad/optionmc"
	"github.com/joshi-prasad/optionmc/chart"
)

var (
	pngFile  string
	htmlFile string
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Chart a sample of simulated paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		if pngFile == "" && htmlFile == "" {
			return errors.New("at least one of --png or --html is required")
		}
		runCfg, err := opts.load(cmd.Flags())
		if err != nil {
			return err
		}

		grid, ensemble, err := runCfg.Model.Simulate(runCfg.Source())
		if err != nil {
			return err
		}

		if pngFile != "" {
			if err := chart.SavePaths(pngFile, grid, ensemble, runCfg.PlotPaths); err != nil {
				return err
			}
		}
		if htmlFile != "" {
			if err := writeHTML(htmlFile, grid, ensemble, runCfg.PlotPaths); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	pathsCmd.Flags().StringVar(&pngFile, "png", "", "write a static chart; the extension picks the format (png, svg, pdf)")
	pathsCmd.Flags().StringVar(&htmlFile, "html", "", "write an interactive HTML chart")
}

func writeHTML(
	filename string,
	grid optionmc.TimeGrid,
	ensemble *optionmc.PathEnsemble,
	maxPaths int) error {

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := chart.RenderPathsHTML(f, grid, ensemble, maxPaths); err != nil {
		f.Close()
		return err
	}
	glog.Info("Wrote path chart ", filename)
	return f.Close()
}
