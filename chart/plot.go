// Package chart draws simulated price paths, as a static image with
// gonum/plot or as an interactive HTML page with go-echarts.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/golang/glog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/joshi-prasad/optionmc"
)

const (
	kPathsTitle = "Sample Simulated GBM Paths"
	kTimeLabel  = "Time"
	kPriceLabel = "Stock Price"

	kImageWidth  = 10 * vg.Inch
	kImageHeight = 5 * vg.Inch
)

// Semi-transparent grey so dense regions of the fan show up darker.
var kPathColor = color.NRGBA{R: 128, G: 128, B: 128, A: 51}

// PlotCount is how many of numPaths paths get drawn when at most maxPaths are
// requested. A non-positive maxPaths draws them all.
func PlotCount(numPaths int, maxPaths int) int {
	if maxPaths <= 0 || maxPaths > numPaths {
		return numPaths
	}
	return maxPaths
}

func checkEnsemble(
	grid optionmc.TimeGrid, ensemble *optionmc.PathEnsemble) error {

	if ensemble.Len() == 0 {
		msg := "No paths to draw."
		glog.Error(msg)
		return errors.New(msg)
	}
	if grid.Len() != ensemble.Steps()+1 {
		msg := fmt.Sprintf("Time grid has %d points but paths have %d.",
			grid.Len(), ensemble.Steps()+1)
		glog.Error(msg)
		return errors.New(msg)
	}
	return nil
}

func newPathsPlot(
	grid optionmc.TimeGrid,
	ensemble *optionmc.PathEnsemble,
	maxPaths int) (*plot.Plot, error) {

	if err := checkEnsemble(grid, ensemble); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = kPathsTitle
	p.X.Label.Text = kTimeLabel
	p.Y.Label.Text = kPriceLabel
	p.Add(plotter.NewGrid())

	times := grid.Points()
	count := PlotCount(ensemble.Len(), maxPaths)
	for i := 0; i < count; i++ {
		path := ensemble.Path(i)
		xys := make(plotter.XYs, len(path))
		for j, value := range path {
			xys[j].X = times[j]
			xys[j].Y = value
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			msg := fmt.Sprintf("Building line for path %d failed with error=%s", i, err)
			glog.Error(msg)
			return nil, err
		}
		line.Color = kPathColor
		line.Width = vg.Points(0.5)
		p.Add(line)
	}
	glog.V(1).Infof("Plotted %d of %d paths.", count, ensemble.Len())
	return p, nil
}

// WritePathsImage draws up to maxPaths paths and encodes the figure to w.
// format is any gonum/plot image format, e.g. "png" or "svg".
func WritePathsImage(
	w io.Writer,
	format string,
	grid optionmc.TimeGrid,
	ensemble *optionmc.PathEnsemble,
	maxPaths int) error {

	p, err := newPathsPlot(grid, ensemble, maxPaths)
	if err != nil {
		return err
	}
	writer, err := p.WriterTo(kImageWidth, kImageHeight, format)
	if err != nil {
		msg := fmt.Sprintf("Encoding %s image failed with error=%s", format, err)
		glog.Error(msg)
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}

// SavePaths writes the figure to filename; the extension picks the format.
func SavePaths(
	filename string,
	grid optionmc.TimeGrid,
	ensemble *optionmc.PathEnsemble,
	maxPaths int) error {

	p, err := newPathsPlot(grid, ensemble, maxPaths)
	if err != nil {
		return err
	}
	if err := p.Save(kImageWidth, kImageHeight, filename); err != nil {
		msg := fmt.Sprintf("Saving %s failed with error=%s", filename, err)
		glog.Error(msg)
		return err
	}
	glog.Info("Wrote path chart ", filename)
	return nil
}
