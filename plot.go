package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	cmdUtils "sinplot/pkg/cmd-utils"
	"sinplot/pkg/config"
	"sinplot/pkg/errs"
	"sinplot/pkg/export"
	"sinplot/pkg/haiku"
	"sinplot/pkg/render"
	"sinplot/pkg/sampler"
)

type job struct {
	csvPath string
	mkdir   bool
}

func pickSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// run samples the configured function and renders it to file.Plot.Output.
func run(file config.File, j job) error {
	cfg := file.Plot

	f, err := file.Function.Func()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := pickSeed(file.Seed)
	logger := log.WithFields(log.Fields{
		"run":  haiku.RunName(seed),
		"seed": seed,
	})

	logger.Infoln("Starting sampling...")
	set, err := sampler.Draw(cfg.Points, cfg.XMin, cfg.XMax, f, rand.NewPCG(seed, seed<<32|seed>>32))
	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}
	logger.Debugf("Drew %d samples over [%.3f, %.3f)", len(set), cfg.XMin, cfg.XMax)

	if log.IsLevelEnabled(log.TraceLevel) {
		cmdUtils.ShowSamples(set, cfg.LabelPrecision)
	}

	// a failed CSV export is reported but does not stop the render
	if j.csvPath != "" {
		if err := export.SaveCSV(j.csvPath, set); err != nil {
			cmdUtils.LogError("export: ", err)
		} else {
			logger.WithField("path", j.csvPath).Infoln("Samples written")
		}
	}

	if j.mkdir {
		if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
			return fmt.Errorf("render: %w", errs.Stage("create directory", errs.ErrIO, err))
		}
	}

	logger.Infoln("Starting plotting...")
	if err := render.New(cfg, render.WithLogger(logger)).Render(set, f); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	logger.WithField("path", cfg.Output).Infoln("Done!")
	return nil
}
