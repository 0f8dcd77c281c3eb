package cmdUtils

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"sinplot/pkg/sampler"
)

var (
	errPrefix   string = "ERR"
	fatalPrefix string = "FATAL"
)

const (
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

var stderr io.Writer = os.Stderr

func LogError(reason string, err error) {
	// Print in yellow
	fmt.Fprintf(stderr, "%s%s%s %s%s\n", yellow, errPrefix, reset, reason, err)
}

func LogFatalError(reason string, err error) {
	// Print in red
	fmt.Fprintf(stderr, "%s%s%s %s%s\n", red, fatalPrefix, reset, reason, err)
	os.Exit(1)
}

func PrintElapsed(startTime time.Time, what string) {
	fmt.Fprintf(stderr, "%s %s in %s\n", "sinplot:", what, time.Since(startTime).Round(time.Microsecond))
}

// ShowSamples prints one row per sample, in draw order.
func ShowSamples(set sampler.SampleSet, precision int) {
	fmt.Fprintf(stderr, "\t%4s  %12s  %12s\n", "#", "x", "f(x)")
	for i, s := range set {
		fmt.Fprintf(stderr, "\t%4d  %12s  %12s\n", i,
			strconv.FormatFloat(s.Input, 'f', precision, 64),
			strconv.FormatFloat(s.Output, 'f', precision, 64))
	}
}
