package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	cmdUtils "sinplot/pkg/cmd-utils"
	"sinplot/pkg/config"
	"sinplot/pkg/function"
)

var (
	verbose     = flag.Bool("v", false, "Turn on verbose output")
	veryVerbose = flag.Bool("vv", false, "Turn on very verbose output")
	configPath  = flag.String("c", "", "YAML config file")
	outFile     = flag.String("o", "", "Output image (.png, .jpg, .tiff, .svg, .pdf)")
	numPoints   = flag.Int("n", 0, "Number of samples")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	fnName      = flag.String("fn", "", "Function to plot: "+strings.Join(function.Names(), ", "))
	autoY       = flag.Bool("autoy", false, "Fit the y axis to the data")
	mkdir       = flag.Bool("mkdir", true, "Create the output directory if missing")
	csvOut      = flag.String("csv", "", "Also write the samples as CSV (- for stdout)")
)

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

// loadConfig layers defaults, the -c file and explicitly set flags.
func loadConfig() (config.File, error) {
	file := config.DefaultFile()

	if *configPath != "" {
		var err error
		if file, err = config.Load(*configPath); err != nil {
			return file, err
		}
		log.Debugf("Loaded config from %s", *configPath)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			file.Plot.Output = *outFile
		case "n":
			file.Plot.Points = *numPoints
		case "seed":
			file.Seed = *seedFlag
		case "fn":
			file.Function.Name = *fnName
		case "autoy":
			file.Plot.AutoY = *autoY
		}
	})

	return file, nil
}

func main() {
	flag.Parse()
	setupLogging()

	if len(flag.Args()) != 0 {
		fmt.Fprintln(os.Stderr, "Usage: sinplot [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	file, err := loadConfig()
	if err != nil {
		cmdUtils.LogFatalError("config: ", err)
	}

	startTime := time.Now()
	if err := run(file, job{csvPath: *csvOut, mkdir: *mkdir}); err != nil {
		cmdUtils.LogFatalError("", err)
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		cmdUtils.PrintElapsed(startTime, "finished")
	}
}
