package render

import (
	"image/color"
	"io"

	"sinplot/pkg/config"
	"sinplot/pkg/sampler"
)

// Backend does the pixel work. Calls arrive in the order
// Fill, Frame, Points, Curve, WriteTo, each at most once.
type Backend interface {
	Fill(bg color.Color) error
	Frame(f Frame) error
	Points(set sampler.SampleSet, st PointStyle) error
	Curve(set sampler.SampleSet, st LineStyle) error
	WriteTo(w io.Writer) (int64, error)
}

// BackendFactory builds a backend for an image of width x height pixels.
type BackendFactory func(format config.Format, width, height int) (Backend, error)

// Frame describes the Cartesian frame. Lengths are in pixels.
type Frame struct {
	Caption     string
	CaptionSize float64

	XMin, XMax float64
	YMin, YMax float64

	Margin     float64
	XLabelArea float64
	YLabelArea float64
}

type PointStyle struct {
	Radius      float64
	Color       color.Color
	LabelSize   float64
	LabelOffset float64
	Precision   int
}

type LineStyle struct {
	Width float64
	Color color.Color
}
