package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// MaxBudget caps the time budget; the ledger allocates one bucket per unit.
const MaxBudget = 1 << 20

// DefaultActivationCost is the time spent activating a site after arriving.
const DefaultActivationCost = 1

// Sentinel errors for planner entry points.
var (
	// ErrNilOracle is returned when no distance oracle is supplied.
	ErrNilOracle = errors.New("planner: oracle is nil")

	// ErrBudget is returned for a negative budget or one above MaxBudget.
	ErrBudget = errors.New("planner: budget out of range")

	// ErrStartNotFound is returned when the start site is not in the graph.
	ErrStartNotFound = errors.New("planner: start site not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")

	// ErrInvalidRoute is returned when a route revisits a site, names an
	// inactive or unknown site, or does not fit in the budget.
	ErrInvalidRoute = errors.New("planner: invalid route")

	// ErrInterrupted is returned alongside a partial Result when the search
	// was stopped by its context or time limit before exhausting the tree.
	ErrInterrupted = errors.New("planner: search interrupted")
)

// Mode names used in logs and metrics.
const (
	ModeGreedy = "greedy"
	ModeSingle = "single"
	ModeDual   = "dual"
)

// Step is one activation: which agent activated which site, and how much
// time remained right after the activation.
type Step struct {
	Agent int
	Site  string
	At    int
}

// Result is the outcome of a seed or a search.
type Result struct {
	// Value is Σ value(site) × remaining time at activation.
	Value int

	// Path lists activated sites in chronological order across all agents.
	Path []string

	// Routes lists, per agent, the sites that agent activated in order.
	Routes [][]string

	// Steps carries the full activation schedule behind Path.
	Steps []Step

	// Seed is the greedy lower bound the search started from (0 if unseeded).
	Seed int

	// Nodes counts recursion entries.
	Nodes int64

	// Complete is false when the search was interrupted.
	Complete bool
}

// Incumbent is a known solution handed to a search as its starting bound.
type Incumbent struct {
	Value  int
	Routes [][]string
}

// Recorder receives search statistics, e.g. the metrics package.
type Recorder interface {
	Improved(mode string, value int)
	Finished(mode string, res Result, elapsed time.Duration)
}

// Option configures a seed or a search.
type Option func(*Options)

// Options holds the knobs shared by GreedySeed, Evaluate and the optimizers.
type Options struct {
	// ActivationCost is added to every hop distance to form a move's cost.
	ActivationCost int

	// Seed runs GreedySeed before the search to initialize the incumbent.
	Seed bool

	// UpperBound enables the admissible "free travel" bound.
	UpperBound bool

	// Incumbent, when set, is validated and used as an extra starting bound.
	Incumbent *Incumbent

	// Workers > 1 splits the root moves across goroutines.
	Workers int

	// TimeLimit > 0 bounds the wall-clock time of the search.
	TimeLimit time.Duration

	// Logger receives debug output.
	Logger zerolog.Logger

	// OnImprove is called with every strictly better value found.
	OnImprove func(value int, path []string)

	// Recorder receives statistics.
	Recorder Recorder

	err error
}

// DefaultOptions returns activation cost 1, greedy seeding and the upper
// bound enabled, one worker, no time limit, and a disabled logger.
func DefaultOptions() Options {
	return Options{
		ActivationCost: DefaultActivationCost,
		Seed:           true,
		UpperBound:     true,
		Workers:        1,
		Logger:         zerolog.Nop(),
		OnImprove:      func(int, []string) {},
	}
}

// WithActivationCost sets the time spent activating a site (c ≥ 0).
func WithActivationCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: activation cost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.ActivationCost = c
	}
}

// WithoutSeed skips the greedy seed.
func WithoutSeed() Option {
	return func(o *Options) { o.Seed = false }
}

// WithUpperBound toggles the admissible bound. Disabling it yields the
// plain exhaustive enumeration.
func WithUpperBound(on bool) Option {
	return func(o *Options) { o.UpperBound = on }
}

// WithIncumbent starts the search from a known solution.
func WithIncumbent(in Incumbent) Option {
	return func(o *Options) {
		cp := Incumbent{Value: in.Value, Routes: make([][]string, len(in.Routes))}
		for i, r := range in.Routes {
			cp.Routes[i] = append([]string(nil), r...)
		}
		o.Incumbent = &cp
	}
}

// WithWorkers sets the number of goroutines exploring root moves (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithTimeLimit bounds the search's wall-clock time (d ≥ 0, 0 = none).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: time limit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnImprove registers a callback for every incumbent improvement.
// Calls are serialized and their values strictly increase, also when
// several workers are searching.
func WithOnImprove(fn func(value int, path []string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// WithRecorder attaches a statistics sink.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
