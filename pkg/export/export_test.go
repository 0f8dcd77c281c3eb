package export

import (
	"encoding/csv"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sinplot/pkg/errs"
	"sinplot/pkg/sampler"
)

func TestDense(t *testing.T) {
	m := Dense(sampler.SampleSet{{Input: 1, Output: 2}, {Input: 3, Output: 4}, {Input: 5, Output: 6}})

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, m.At(1, 0))
	assert.Equal(t, 6.0, m.At(2, 1))
}

func TestSaveCSV(t *testing.T) {
	set, err := sampler.Draw(10, -math.Pi, math.Pi, math.Sin, rand.NewPCG(3, 5))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "samples.csv")
	require.NoError(t, SaveCSV(path, set))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11)
	assert.Equal(t, []string{"input", "output"}, records[0])

	for i, rec := range records[1:] {
		x, err := strconv.ParseFloat(rec[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(rec[1], 64)
		require.NoError(t, err)

		// shortest 'g' formatting round-trips exactly
		assert.Equal(t, set[i].Input, x)
		assert.Equal(t, set[i].Output, y)
	}
}

func TestSaveCSVErrors(t *testing.T) {
	assert.ErrorIs(t, SaveCSV(filepath.Join(t.TempDir(), "a.csv"), nil), errs.ErrConfig)

	err := SaveCSV(filepath.Join(t.TempDir(), "missing", "a.csv"), sampler.SampleSet{{Input: 0, Output: 0}})
	assert.ErrorIs(t, err, errs.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
