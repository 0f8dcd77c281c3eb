package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"sinplot/pkg/errs"
	"sinplot/pkg/function"
)

// PlotConfig holds the rendering parameters of one run.
// Lengths are pixels at 96 DPI.
type PlotConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Output string `yaml:"output"`

	XMin  float64 `yaml:"x_min"`
	XMax  float64 `yaml:"x_max"`
	YMin  float64 `yaml:"y_min"`
	YMax  float64 `yaml:"y_max"`
	AutoY bool    `yaml:"auto_y"`

	Points      int     `yaml:"points"`
	PointRadius float64 `yaml:"point_radius"`
	PointColor  string  `yaml:"point_color"`

	CurveColor string  `yaml:"curve_color"`
	CurveWidth float64 `yaml:"curve_width"`
	CurveStep  float64 `yaml:"curve_step"`

	Caption        string  `yaml:"caption"`
	CaptionSize    float64 `yaml:"caption_size"`
	LabelSize      float64 `yaml:"label_size"`
	LabelOffset    float64 `yaml:"label_offset"`
	LabelPrecision int     `yaml:"label_precision"`

	Margin     float64 `yaml:"margin"`
	XLabelArea float64 `yaml:"x_label_area"`
	YLabelArea float64 `yaml:"y_label_area"`
}

func Default() PlotConfig {
	return PlotConfig{
		Width:  640,
		Height: 480,
		Output: "images/plot.png",

		XMin: -math.Pi,
		XMax: math.Pi,
		YMin: -1,
		YMax: 1,

		Points:      10,
		PointRadius: 5,
		PointColor:  "red",

		CurveColor: "blue",
		CurveWidth: 1,
		CurveStep:  0.01,

		Caption:        "y = sin(x)",
		CaptionSize:    50,
		LabelSize:      15,
		LabelOffset:    10,
		LabelPrecision: 2,

		Margin:     5,
		XLabelArea: 30,
		YLabelArea: 30,
	}
}

type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	TIFF Format = "tiff"
	SVG  Format = "svg"
	PDF  Format = "pdf"
)

func (f Format) Raster() bool { return f == PNG || f == JPEG || f == TIFF }

var extensions = map[string]Format{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".tif":  TIFF,
	".tiff": TIFF,
	".svg":  SVG,
	".pdf":  PDF,
}

// Format derives the image encoding from the output extension.
func (c PlotConfig) Format() (Format, error) {
	ext := strings.ToLower(filepath.Ext(c.Output))
	f, ok := extensions[ext]
	if !ok {
		return "", errs.Config("output", "unsupported image extension %q", ext)
	}
	return f, nil
}

// Colors resolves the point and curve colors.
func (c PlotConfig) Colors() (point, curve color.Color, err error) {
	if point, err = ParseColor(c.PointColor); err != nil {
		return nil, nil, err
	}
	if curve, err = ParseColor(c.CurveColor); err != nil {
		return nil, nil, err
	}
	return point, curve, nil
}

func checkRange(field string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return errs.Config(field, "bounds must be finite, got [%v, %v]", lo, hi)
	}
	if lo >= hi {
		return errs.Config(field, "min %v must be below max %v", lo, hi)
	}
	return nil
}

func positive(field string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return errs.Config(field, "must be positive, got %v", v)
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return errs.Config(field, "must not be negative, got %v", v)
	}
	return nil
}

// Validate returns the first problem found as an *errs.ConfigError.
func (c PlotConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errs.Config("size", "dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Output == "" {
		return errs.Config("output", "path is empty")
	}
	if _, err := c.Format(); err != nil {
		return err
	}
	if err := checkRange("x", c.XMin, c.XMax); err != nil {
		return err
	}
	if !c.AutoY {
		if err := checkRange("y", c.YMin, c.YMax); err != nil {
			return err
		}
	}
	if c.Points <= 0 {
		return errs.Config("points", "sample count must be positive, got %d", c.Points)
	}
	if c.LabelPrecision < 0 {
		return errs.Config("label_precision", "must not be negative, got %d", c.LabelPrecision)
	}

	for _, p := range []struct {
		field string
		v     float64
	}{
		{"point_radius", c.PointRadius},
		{"curve_width", c.CurveWidth},
		{"curve_step", c.CurveStep},
		{"caption_size", c.CaptionSize},
		{"label_size", c.LabelSize},
	} {
		if err := positive(p.field, p.v); err != nil {
			return err
		}
	}

	for _, p := range []struct {
		field string
		v     float64
	}{
		{"label_offset", c.LabelOffset},
		{"margin", c.Margin},
		{"x_label_area", c.XLabelArea},
		{"y_label_area", c.YLabelArea},
	} {
		if err := nonNegative(p.field, p.v); err != nil {
			return err
		}
	}

	if 2*c.Margin >= float64(min(c.Width, c.Height)) {
		return errs.Config("margin", "margin %v leaves no room in a %dx%d image", c.Margin, c.Width, c.Height)
	}

	_, _, err := c.Colors()
	return err
}

// ParseColor accepts SVG color names and #rrggbb.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(name, "#")
	if ok && len(hex) == 6 {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
		}
	}

	return nil, errs.Config("color", "unknown color %q", s)
}

// File is the YAML document accepted by Load.
type File struct {
	Plot     PlotConfig     `yaml:"plot"`
	Function FunctionConfig `yaml:"function"`
	Seed     uint64         `yaml:"seed"`
}

type FunctionConfig struct {
	Name   string            `yaml:"name"`
	Params function.Sinusoid `yaml:",inline"`
}

func DefaultFile() File {
	return File{
		Plot:     Default(),
		Function: FunctionConfig{Name: "sin", Params: function.Sine},
	}
}

// Func resolves the configured function.
func (f FunctionConfig) Func() (function.Func, error) {
	return function.Lookup(f.Name, f.Params)
}

// Decode overlays the YAML document in r on the defaults.
func Decode(r io.Reader) (File, error) {
	f := DefaultFile()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, errs.Config("file", "%v", err)
	}

	return f, nil
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: read config: %w", errs.ErrIO, err)
	}

	return Decode(bytes.NewReader(data))
}
