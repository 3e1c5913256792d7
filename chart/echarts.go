package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/golang/glog"

	"github.com/joshi-prasad/optionmc"
)

// RenderPathsHTML writes an interactive line chart of up to maxPaths paths as
// a standalone HTML page.
func RenderPathsHTML(
	w io.Writer,
	grid optionmc.TimeGrid,
	ensemble *optionmc.PathEnsemble,
	maxPaths int) error {

	if err := checkEnsemble(grid, ensemble); err != nil {
		return err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: kPathsTitle}),
		charts.WithTitleOpts(opts.Title{Title: kPathsTitle}),
		charts.WithXAxisOpts(opts.XAxis{Name: kTimeLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: kPriceLabel}),
	)

	labels := make([]string, grid.Len())
	for i, t := range grid.Points() {
		labels[i] = strconv.FormatFloat(t, 'g', 6, 64)
	}
	line.SetXAxis(labels)

	count := PlotCount(ensemble.Len(), maxPaths)
	for i := 0; i < count; i++ {
		path := ensemble.Path(i)
		data := make([]opts.LineData, len(path))
		for j, value := range path {
			data[j] = opts.LineData{Value: value}
		}
		line.AddSeries(fmt.Sprintf("path %d", i+1), data)
	}

	if err := line.Render(w); err != nil {
		msg := fmt.Sprintf("Rendering path chart failed with error=%s", err)
		glog.Error(msg)
		return err
	}
	return nil
}
