package localsearch

import (
	"fmt"
	"math"
	"math/rand"
)

// Defaults match the classic parameterization of both searches.
const (
	DefaultMaxIterations      = 1000
	DefaultInitialTemperature = 10.0
	DefaultCoolingRate        = 0.8
	DefaultTemperatureFloor   = 0.1
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds the parameters shared by HillClimb and SimulatedAnneal.
// Annealing-only fields are ignored by HillClimb.
type Options struct {
	// MaxIterations caps the number of loop iterations (> 0).
	MaxIterations int

	// InitialTemperature is the annealing start temperature T0 (> 0).
	InitialTemperature float64

	// CoolingRate multiplies the temperature once per iteration (0 < r < 1).
	CoolingRate float64

	// TemperatureFloor stops annealing once the temperature drops to it (> 0).
	TemperatureFloor float64

	// Seed feeds the default random source when Rand is nil.
	// 0 selects a fixed default seed.
	Seed int64

	// Rand is an explicit random source. It takes precedence over Seed.
	// A *rand.Rand is not goroutine-safe; give each concurrent run its own.
	Rand *rand.Rand

	// Observer, if non-nil, is called after every iteration.
	Observer func(Step)

	err error
}

// DefaultOptions returns Options with the package defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations:      DefaultMaxIterations,
		InitialTemperature: DefaultInitialTemperature,
		CoolingRate:        DefaultCoolingRate,
		TemperatureFloor:   DefaultTemperatureFloor,
	}
}

// WithMaxIterations sets the iteration cap; n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail("MaxIterations must be positive (%d)", n)
			return
		}
		o.MaxIterations = n
	}
}

// WithInitialTemperature sets T0; it must be positive and finite.
func WithInitialTemperature(t0 float64) Option {
	return func(o *Options) {
		if !(t0 > 0) || math.IsInf(t0, 1) {
			o.fail("InitialTemperature must be positive and finite (%v)", t0)
			return
		}
		o.InitialTemperature = t0
	}
}

// WithCoolingRate sets the geometric cooling factor; 0 < r < 1.
func WithCoolingRate(r float64) Option {
	return func(o *Options) {
		if !(r > 0 && r < 1) {
			o.fail("CoolingRate must lie in (0,1) (%v)", r)
			return
		}
		o.CoolingRate = r
	}
}

// WithTemperatureFloor sets the temperature at which annealing stops.
func WithTemperatureFloor(f float64) Option {
	return func(o *Options) {
		if !(f > 0) || math.IsInf(f, 1) {
			o.fail("TemperatureFloor must be positive and finite (%v)", f)
			return
		}
		o.TemperatureFloor = f
	}
}

// WithSeed selects a deterministic random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.fail("%v", ErrNilRand)
			return
		}
		o.Rand = r
	}
}

// WithObserver registers a per-iteration callback.
func WithObserver(fn func(Step)) Option {
	return func(o *Options) { o.Observer = fn }
}

// fail records the first option violation.
func (o *Options) fail(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]interface{}{ErrOptionViolation}, args...)...)
	}
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if o.TemperatureFloor >= o.InitialTemperature {
		return Options{}, fmt.Errorf("%w: TemperatureFloor %v must be below InitialTemperature %v",
			ErrOptionViolation, o.TemperatureFloor, o.InitialTemperature)
	}

	return o, nil
}

// random returns the configured source, seeding one if none was supplied.
func (o *Options) random() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rngFromSeed(o.Seed)
}

func (o *Options) observe(s Step) {
	if o.Observer != nil {
		o.Observer(s)
	}
}
