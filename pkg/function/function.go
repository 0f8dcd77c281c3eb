package function

import (
	"math"
	"sort"
	"strings"

	"sinplot/pkg/errs"
)

// Func is the plotted ground truth. It must be pure.
type Func func(x float64) float64

// Sinusoid is Amplitude * sin(Frequency*x + Phase).
type Sinusoid struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase"`
}

// Sine is the plain sin(x).
var Sine = Sinusoid{Amplitude: 1, Frequency: 1}

func (s Sinusoid) Eval(x float64) float64 {
	return s.Amplitude * math.Sin(s.Frequency*x+s.Phase)
}

var families = map[string]func(s Sinusoid) Func{
	"sin": func(s Sinusoid) Func { return s.Eval },
	"cos": func(s Sinusoid) Func {
		s.Phase += math.Pi / 2
		return s.Eval
	},
	"tanh": func(s Sinusoid) Func {
		return func(x float64) float64 { return s.Amplitude * math.Tanh(s.Frequency*x+s.Phase) }
	},
}

// Lookup resolves a function family by name, parameterized by s.
func Lookup(name string, s Sinusoid) (Func, error) {
	build, ok := families[strings.ToLower(name)]
	if !ok {
		return nil, errs.Config("function", "unknown function %q, want one of %s", name, strings.Join(Names(), ", "))
	}

	return build(s), nil
}

func Names() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
