package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	cmdUtils "sinplot/pkg/cmd-utils"
	"sinplot/pkg/export"
	"sinplot/pkg/function"
	"sinplot/pkg/haiku"
	"sinplot/pkg/sampler"
)

var once sync.Once

var (
	verbose     = flag.Bool("v", false, "Turn on verbose output")
	veryVerbose = flag.Bool("vv", false, "Turn on very verbose output")
	numPoints   = flag.Int("n", 10, "Number of samples")
	lo          = flag.Float64("lo", -math.Pi, "Lower bound of the input interval (inclusive)")
	hi          = flag.Float64("hi", math.Pi, "Upper bound of the input interval (exclusive)")
	seed        = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	fnName      = flag.String("fn", "sin", "Function to sample")
	amplitude   = flag.Float64("a", 1, "Amplitude")
	frequency   = flag.Float64("f", 1, "Frequency")
	phase       = flag.Float64("phase", 0, "Phase")
	precision   = flag.Int("p", 4, "Decimal places in the table")
	csvOut      = flag.String("csv", "", "Write the samples as CSV (- for stdout)")
)

var startTime time.Time

// job is one sampling request, as read from the flags.
type job struct {
	fn        string
	params    function.Sinusoid
	n         int
	lo, hi    float64
	seed      uint64
	precision int
	csvPath   string
}

func setupLogging() {
	log.SetLevel(log.InfoLevel)

	if *verbose {
		log.SetLevel(log.DebugLevel)
		log.Debug("Set log level to debug")
	}

	if *veryVerbose {
		log.SetLevel(log.TraceLevel)
		log.Debug("Set log level to trace")
	}
}

func epilogue() {
	if log.IsLevelEnabled(log.DebugLevel) {
		cmdUtils.PrintElapsed(startTime, "sampled")
	}
	log.Infoln("Done!")
}

// run draws the samples and reports them. The table goes to stderr unless
// the CSV itself is going to stdout.
func run(j job) (sampler.SampleSet, error) {
	f, err := function.Lookup(j.fn, j.params)
	if err != nil {
		return nil, err
	}

	s := j.seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	log.WithField("run", haiku.RunName(s)).Infof("Sampling %s with seed %d", j.fn, s)

	set, err := sampler.Draw(j.n, j.lo, j.hi, f, rand.NewPCG(s, s<<32|s>>32))
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}

	if j.csvPath != "-" {
		cmdUtils.ShowSamples(set, j.precision)
	}

	if j.csvPath != "" {
		if err := export.SaveCSV(j.csvPath, set); err != nil {
			return set, fmt.Errorf("export: %w", err)
		}
	}

	return set, nil
}

func main() {
	flag.Parse()
	setupLogging()

	if len(flag.Args()) != 0 {
		fmt.Fprintln(os.Stderr, "Usage: samples [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	startTime = time.Now()
	_, err := run(job{
		fn:        *fnName,
		params:    function.Sinusoid{Amplitude: *amplitude, Frequency: *frequency, Phase: *phase},
		n:         *numPoints,
		lo:        *lo,
		hi:        *hi,
		seed:      *seed,
		precision: *precision,
		csvPath:   *csvOut,
	})
	if err != nil {
		cmdUtils.LogFatalError("", err)
	}

	once.Do(epilogue)
}
