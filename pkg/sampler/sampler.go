package sampler

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"sinplot/pkg/errs"
	"sinplot/pkg/function"
)

// Sample is one (input, f(input)) pair.
type Sample struct {
	Input  float64
	Output float64
}

// SampleSet keeps samples in generation order.
type SampleSet []Sample

func (s SampleSet) Len() int                    { return len(s) }
func (s SampleSet) XY(i int) (float64, float64) { return s[i].Input, s[i].Output }

func (s SampleSet) Inputs() []float64 {
	xs := make([]float64, len(s))
	for i, sample := range s {
		xs[i] = sample.Input
	}
	return xs
}

func (s SampleSet) Outputs() []float64 {
	ys := make([]float64, len(s))
	for i, sample := range s {
		ys[i] = sample.Output
	}
	return ys
}

const (
	// consecutive draws landing on hi before Draw gives up
	maxRedraws = 64
	// largest grid Curve will evaluate
	maxCurvePoints = 1 << 24
)

var errStuckSource = errors.New("random source keeps drawing the upper bound")

func checkInterval(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return errs.Config("interval", "bounds must be finite, got [%v, %v)", lo, hi)
	}
	if lo >= hi {
		return errs.Config("interval", "lower bound %v must be below upper bound %v", lo, hi)
	}
	if math.IsInf(hi-lo, 0) {
		return errs.Config("interval", "width of [%v, %v) overflows", lo, hi)
	}
	return nil
}

// source lets a math/rand/v2 generator feed distuv, which also wants Seed.
// Reseeding is left to whoever built the generator.
type source struct {
	rand.Source
}

func (source) Seed(uint64) {}

// Draw evaluates f at n inputs drawn uniformly from [lo, hi).
// A nil src uses the global generator.
func Draw(n int, lo, hi float64, f function.Func, src rand.Source) (SampleSet, error) {
	if n <= 0 {
		return nil, errs.Config("count", "sample count must be positive, got %d", n)
	}
	if err := checkInterval(lo, hi); err != nil {
		return nil, err
	}

	uni := distuv.Uniform{Min: lo, Max: hi}
	if src != nil {
		uni.Src = source{src}
	}

	set := make(SampleSet, 0, n)
	for redraws := 0; len(set) < n; {
		x := uni.Rand()
		// rnd*(hi-lo)+lo can round up to hi
		if x >= hi {
			if redraws++; redraws > maxRedraws {
				return nil, fmt.Errorf("draw over [%v, %v): %w", lo, hi, errStuckSource)
			}
			continue
		}
		redraws = 0
		set = append(set, Sample{Input: x, Output: f(x)})
	}

	return set, nil
}

// Curve evaluates f on a fixed grid from lo to hi. There are round((hi-lo)/step)
// steps and no point lies beyond hi.
func Curve(lo, hi, step float64, f function.Func) (SampleSet, error) {
	if err := checkInterval(lo, hi); err != nil {
		return nil, err
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, errs.Config("step", "curve step must be positive, got %v", step)
	}

	steps := math.Round((hi - lo) / step)
	if steps >= maxCurvePoints {
		return nil, errs.Config("step", "step %v gives more than %d curve points over [%v, %v]", step, maxCurvePoints, lo, hi)
	}
	count := int(steps)

	set := make(SampleSet, 0, count+1)
	for i := 0; i <= count; i++ {
		x := lo + float64(i)*step
		if x > hi {
			break
		}
		set = append(set, Sample{Input: x, Output: f(x)})
	}

	return set, nil
}
