package cmdUtils

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sinplot/pkg/sampler"
)

func capture(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = old })
	return &buf
}

func TestShowSamples(t *testing.T) {
	buf := capture(t)

	ShowSamples(sampler.SampleSet{{Input: 1.5, Output: 0.997}, {Input: -0.25, Output: -0.247}}, 2)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "f(x)")
	assert.Contains(t, lines[1], "1.50")
	assert.Contains(t, lines[1], "1.00")
	assert.Contains(t, lines[2], "-0.25")
}

func TestLogError(t *testing.T) {
	buf := capture(t)

	LogError("render: ", errors.New("boom"))
	assert.Equal(t, yellow+"ERR"+reset+" render: boom\n", buf.String())
}

func TestPrintElapsed(t *testing.T) {
	buf := capture(t)

	PrintElapsed(time.Now(), "rendered")
	assert.True(t, strings.HasPrefix(buf.String(), "sinplot: rendered in "))
}
