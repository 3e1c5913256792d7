package optionmc

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/rand"
)

const (
	// Quotes are rounded to this many decimal places.
	kQuoteDecimals = 4

	// A Monte Carlo price within this many standard errors of the analytic
	// price is reported as agreeing with it.
	kAgreementStdErrs = 3.0
)

var kKindLabels = map[OptionKind]string{
	Call: "Call",
	Put:  "Put",
}

// Quote rounds a price to the precision it is reported at.
func Quote(price float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Round(kQuoteDecimals)
}

// ComparisonRow is one option priced both ways.
type ComparisonRow struct {
	Kind         OptionKind
	MonteCarlo   Estimate
	BlackScholes float64
}

// Difference is the Monte Carlo price minus the analytic price.
func (self ComparisonRow) Difference() float64 {
	return self.MonteCarlo.Price - self.BlackScholes
}

// Agrees reports whether the analytic price lies within kAgreementStdErrs
// standard errors of the Monte Carlo estimate.
func (self ComparisonRow) Agrees() bool {
	return math.Abs(self.Difference()) <= kAgreementStdErrs*self.MonteCarlo.StdErr
}

// Comparison is the outcome of one run, including the simulated paths so
// they can be charted.
type Comparison struct {
	Config   Config
	Grid     TimeGrid
	Ensemble *PathEnsemble
	Rows     []ComparisonRow
}

// Compare simulates cfg.Model once and prices every configured kind from the
// same paths and in closed form.
//
// The step is snapped so the grid ends exactly at maturity; discounting and
// the analytic price then use the horizon the paths were simulated to.
func Compare(cfg Config, src rand.Source) (*Comparison, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model := cfg.Model
	step := SnapStep(model.Maturity, model.Step)
	if step != model.Step {
		glog.Warningf("Snapped time step %v to %v so the grid ends at maturity %v.",
			model.Step, step, model.Maturity)
		model.Step = step
	}

	grid, ensemble, err := model.Simulate(src)
	if err != nil {
		return nil, err
	}
	glog.Infof("Simulated %d paths with %d steps.", ensemble.Len(), ensemble.Steps())

	rows := make([]ComparisonRow, 0, len(cfg.Kinds))
	for _, kind := range cfg.Kinds {
		option := cfg.Option(kind)
		estimate, err := model.MonteCarlo(ensemble, option)
		if err != nil {
			return nil, err
		}
		analytic, err := model.Analytic(option)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ComparisonRow{
			Kind:         kind,
			MonteCarlo:   estimate,
			BlackScholes: analytic,
		})
	}

	cfg.Model = model
	return &Comparison{
		Config:   cfg,
		Grid:     grid,
		Ensemble: ensemble,
		Rows:     rows,
	}, nil
}

func (self *Comparison) PrintTable(w io.Writer) {
	fmt.Fprintln(w, "=== European Option Prices ===")
	fmt.Fprintf(w, "S0=%v K=%v T=%v r=%v sigma=%v mu=%v dt=%v paths=%d\n",
		self.Config.Model.Spot, self.Config.Strike, self.Config.Model.Maturity,
		self.Config.Model.Rate, self.Config.Model.Volatility,
		self.Config.Model.Drift, self.Config.Model.Step, self.Config.Model.Paths)
	fmt.Fprintf(w, "%-6s %-12s %-10s %-12s %-10s\n",
		"Kind", "MC", "StdErr", "BS", "Diff")

	// Set color for rows where the two prices agree or not
	greenColor := color.New(color.FgGreen).SprintFunc()
	redColor := color.New(color.FgRed).SprintFunc()

	for _, row := range self.Rows {
		diffColor := greenColor
		if !row.Agrees() {
			diffColor = redColor
		}
		fmt.Fprintf(w, "%-6s %-12s %-10s %-12s %s\n",
			kKindLabels[row.Kind],
			Quote(row.MonteCarlo.Price).StringFixed(kQuoteDecimals),
			Quote(row.MonteCarlo.StdErr).StringFixed(kQuoteDecimals),
			Quote(row.BlackScholes).StringFixed(kQuoteDecimals),
			diffColor(Quote(row.Difference()).StringFixed(kQuoteDecimals)))
	}
}
