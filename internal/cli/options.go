package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvsearch/localsearch"
)

// Defaults for the command line. The start mirrors the classic driver.
const (
	DefaultStart    = "Oradea"
	DefaultGoal     = "Bucharest"
	DefaultSeed     = 1
	DefaultRestarts = 1
	DefaultWorkers  = 4
)

// GlobalOptions are shared by every subcommand.
type GlobalOptions struct {
	GraphPath string
	Start     string
	Goal      string
	Seed      int64
	Restarts  int
	Workers   int
	LogLevel  string
}

// SearchOptions tune hill climbing and annealing.
type SearchOptions struct {
	MaxIterations      int
	InitialTemperature float64
	CoolingRate        float64
	TemperatureFloor   float64
}

// AddFlags binds the global flags to fs.
func (o *GlobalOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.GraphPath, "graph", "", "Path to a TOML or YAML graph document. The built-in Romania map is used when empty.")
	fs.StringVarP(&o.Start, "start", "s", DefaultStart, "Start vertex")
	fs.StringVarP(&o.Goal, "goal", "g", DefaultGoal, "Goal vertex")
	fs.Int64Var(&o.Seed, "seed", DefaultSeed, "Seed for all random choices; equal seeds reproduce equal runs")
	fs.IntVar(&o.Restarts, "restarts", DefaultRestarts, "Number of independent runs; the cheapest result is reported")
	fs.IntVar(&o.Workers, "workers", DefaultWorkers, "Maximum number of runs executed concurrently")
	fs.StringVar(&o.LogLevel, "log-level", "info", "Log level (panic, fatal, error, warn, info, debug, trace)")
}

// Validate rejects flag combinations no search could use.
func (o *GlobalOptions) Validate() error {
	if o.Start == "" || o.Goal == "" {
		return fmt.Errorf("--start and --goal must be non-empty")
	}
	if o.Restarts < 1 {
		return fmt.Errorf("--restarts must be at least 1, got %d", o.Restarts)
	}
	if o.Workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", o.Workers)
	}
	return nil
}

// AddFlags binds the search tuning flags to fs.
func (o *SearchOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.MaxIterations, "max-iter", localsearch.DefaultMaxIterations, "Iteration budget per run")
	fs.Float64Var(&o.InitialTemperature, "temp", localsearch.DefaultInitialTemperature, "Initial annealing temperature")
	fs.Float64Var(&o.CoolingRate, "cooling", localsearch.DefaultCoolingRate, "Geometric cooling factor in (0,1)")
	fs.Float64Var(&o.TemperatureFloor, "floor", localsearch.DefaultTemperatureFloor, "Temperature at which annealing stops")
}

// searchOptions turns the flags into localsearch options. Invalid values
// surface as localsearch.ErrOptionViolation when the search starts.
func (o *SearchOptions) searchOptions(observer func(localsearch.Step)) []localsearch.Option {
	return []localsearch.Option{
		localsearch.WithMaxIterations(o.MaxIterations),
		localsearch.WithInitialTemperature(o.InitialTemperature),
		localsearch.WithCoolingRate(o.CoolingRate),
		localsearch.WithTemperatureFloor(o.TemperatureFloor),
		localsearch.WithObserver(observer),
	}
}
