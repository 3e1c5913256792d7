package optionmc

import (
	"math"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TimeGrid holds the simulation times 0, dt, 2dt, ..., M*dt.
type TimeGrid struct {
	points []float64
	step   float64
}

func newTimeGrid(steps int, dt float64) TimeGrid {
	points := make([]float64, steps+1)
	for i := range points {
		points[i] = float64(i) * dt
	}
	return TimeGrid{
		points: points,
		step:   dt,
	}
}

// Len is M+1, the number of grid points including time 0.
func (self TimeGrid) Len() int {
	return len(self.points)
}

func (self TimeGrid) At(i int) float64 {
	return self.points[i]
}

func (self TimeGrid) Step() float64 {
	return self.step
}

// End is the last grid time. It is M*dt, which is short of the requested
// maturity when dt does not divide it.
func (self TimeGrid) End() float64 {
	if len(self.points) == 0 {
		return 0
	}
	return self.points[len(self.points)-1]
}

// Points returns a copy of the grid times.
func (self TimeGrid) Points() []float64 {
	points := make([]float64, len(self.points))
	copy(points, self.points)
	return points
}

// PathEnsemble is a read-only set of simulated trajectories. Row i is path i,
// column j is its value at grid point j.
type PathEnsemble struct {
	paths *mat.Dense
}

// Len is the number of paths.
func (self *PathEnsemble) Len() int {
	if self == nil || self.paths == nil {
		return 0
	}
	rows, _ := self.paths.Dims()
	return rows
}

// Steps is M, the number of increments in each path.
func (self *PathEnsemble) Steps() int {
	if self == nil || self.paths == nil {
		return 0
	}
	_, cols := self.paths.Dims()
	return cols - 1
}

func (self *PathEnsemble) At(path int, step int) float64 {
	return self.paths.At(path, step)
}

// Path returns a copy of trajectory i.
func (self *PathEnsemble) Path(i int) []float64 {
	return mat.Row(nil, i, self.paths)
}

// Terminals returns a copy of every path's value at the last grid point.
func (self *PathEnsemble) Terminals() []float64 {
	return mat.Col(nil, self.Steps(), self.paths)
}

func validateSimulation(
	s0 float64,
	mu float64,
	sigma float64,
	maturity float64,
	dt float64,
	numPaths int) error {

	if err := validatePositive("initial price", s0); err != nil {
		return err
	}
	if err := validateFinite("drift", mu); err != nil {
		return err
	}
	if err := validateVolatility(sigma); err != nil {
		return err
	}
	if err := validatePositive("maturity", maturity); err != nil {
		return err
	}
	if err := validatePositive("time step", dt); err != nil {
		return err
	}
	if maturity/dt > kMaxSteps {
		return invalidParameter("time step %v gives too many steps over maturity %v, at most %d allowed",
			dt, maturity, kMaxSteps)
	}
	if stepCount(maturity, dt) < 1 {
		return invalidParameter("time step %v exceeds maturity %v", dt, maturity)
	}
	if numPaths < 1 {
		return invalidParameter("path count must be at least 1, got %d", numPaths)
	}
	return nil
}

// SimulatePaths draws numPaths geometric Brownian motion paths started at s0
// on the grid 0, dt, ..., floor(maturity/dt)*dt.
//
// Each path is the exact lognormal solution
//
//	S(t_i) = s0 * exp((mu - sigma^2/2) * t_i + sigma * W(t_i))
//
// evaluated on a discretised Brownian path W, whose increments are N(0, dt).
// Column 0 of every path is exactly s0. All randomness comes from src.
func SimulatePaths(
	s0 float64,
	mu float64,
	sigma float64,
	maturity float64,
	dt float64,
	numPaths int,
	src rand.Source) (TimeGrid, *PathEnsemble, error) {

	if err := validateSimulation(s0, mu, sigma, maturity, dt, numPaths); err != nil {
		return TimeGrid{}, nil, err
	}
	if src == nil {
		return TimeGrid{}, nil, invalidParameter("random source is required")
	}

	steps := stepCount(maturity, dt)
	grid := newTimeGrid(steps, dt)
	if grid.End() < maturity*(1-kStepTolerance) {
		glog.Warningf("Time step %v does not divide maturity %v, grid ends at %v.",
			dt, maturity, grid.End())
	}
	glog.V(1).Infof("Simulating %d GBM paths over %d steps of %v.",
		numPaths, steps, dt)

	// Brownian increments, one row per path, scaled to variance dt.
	increments := mat.NewDense(numPaths, steps, nil)
	raw := increments.RawMatrix().Data
	rng := rand.New(src)
	for i := range raw {
		raw[i] = rng.NormFloat64()
	}
	floats.Scale(math.Sqrt(dt), raw)

	// (mu - sigma^2/2) * t_i for i >= 1 is shared by every path.
	drift := make([]float64, steps)
	floats.ScaleTo(drift, mu-0.5*sigma*sigma, grid.points[1:])

	paths := mat.NewDense(numPaths, steps+1, nil)
	for i := 0; i < numPaths; i++ {
		w := increments.RawRowView(i)
		floats.CumSum(w, w)

		row := paths.RawRowView(i)
		row[0] = s0
		exponent := row[1:]
		floats.AddScaledTo(exponent, drift, sigma, w)
		for j, x := range exponent {
			exponent[j] = s0 * math.Exp(x)
		}
	}

	return grid, &PathEnsemble{paths: paths}, nil
}
