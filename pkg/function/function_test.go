package function

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sinplot/pkg/errs"
)

func TestSinusoid(t *testing.T) {
	s := Sinusoid{Amplitude: 2, Frequency: 3, Phase: 0.5}

	assert.Equal(t, 2*math.Sin(3*1.25+0.5), s.Eval(1.25))
	assert.Equal(t, math.Sin(0.7), Sine.Eval(0.7))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"sin", math.Pi / 2, 1},
		{"SIN", 0, 0},
		{"cos", 0, 1},
		{"cos", math.Pi, -1},
		{"tanh", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Lookup(tt.name, Sine)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, f(tt.x), 1e-12)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	f, err := Lookup("sawtooth", Sine)

	assert.Nil(t, f)
	assert.ErrorIs(t, err, errs.ErrConfig)
	assert.Contains(t, err.Error(), "cos, sin, tanh")
}

func TestFuncIsIdempotent(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name, Sinusoid{Amplitude: 1.5, Frequency: 2, Phase: 0.3})
		require.NoError(t, err)

		for _, x := range []float64{-math.Pi, -1, 0, 0.123456789, math.Pi} {
			assert.Equal(t, f(x), f(x), "%s(%v)", name, x)
		}
	}
}
