package render

import (
	"image/color"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"sinplot/pkg/config"
	"sinplot/pkg/errs"
	"sinplot/pkg/function"
	"sinplot/pkg/lib"
	"sinplot/pkg/sampler"
)

type State int

const (
	Uninitialized State = iota
	BackgroundFilled
	FrameConfigured
	PointsDrawn
	CurveDrawn
	Saved
)

var stateNames = [...]string{
	Uninitialized:    "uninitialized",
	BackgroundFilled: "background filled",
	FrameConfigured:  "frame configured",
	PointsDrawn:      "points drawn",
	CurveDrawn:       "curve drawn",
	Saved:            "saved",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

type Renderer struct {
	cfg        config.PlotConfig
	newBackend BackendFactory
	log        *log.Entry
	state      State
}

type Option func(r *Renderer)

func WithBackend(f BackendFactory) Option {
	return func(r *Renderer) { r.newBackend = f }
}

func WithLogger(l *log.Entry) Option {
	return func(r *Renderer) { r.log = l }
}

func New(cfg config.PlotConfig, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:        cfg,
		newBackend: NewGonumBackend,
		log:        log.NewEntry(log.StandardLogger()),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// State reports the last step the most recent Render completed.
func (r *Renderer) State() State { return r.state }

type step struct {
	name string
	kind error
	next State
	run  func() error
}

// Render draws set and a reference curve of f, then commits the image to
// the configured output path. Configuration problems are reported before
// anything is drawn or written.
func (r *Renderer) Render(set sampler.SampleSet, f function.Func) error {
	r.state = Uninitialized

	if err := r.cfg.Validate(); err != nil {
		return err
	}
	if len(set) == 0 {
		return errs.Config("samples", "nothing to draw")
	}

	format, err := r.cfg.Format()
	if err != nil {
		return err
	}
	pointColor, curveColor, err := r.cfg.Colors()
	if err != nil {
		return err
	}

	curve, err := sampler.Curve(r.cfg.XMin, r.cfg.XMax, r.cfg.CurveStep, f)
	if err != nil {
		return err
	}

	frame := Frame{
		Caption:     r.cfg.Caption,
		CaptionSize: r.cfg.CaptionSize,
		XMin:        r.cfg.XMin,
		XMax:        r.cfg.XMax,
		YMin:        r.cfg.YMin,
		YMax:        r.cfg.YMax,
		Margin:      r.cfg.Margin,
		XLabelArea:  r.cfg.XLabelArea,
		YLabelArea:  r.cfg.YLabelArea,
	}
	if r.cfg.AutoY {
		frame.YMin, frame.YMax = yBounds(set, curve)
		r.log.Debugf("Auto y bounds [%.3f, %.3f]", frame.YMin, frame.YMax)
	}

	backend, err := r.newBackend(format, r.cfg.Width, r.cfg.Height)
	if err != nil {
		return errs.Stage("create backend", errs.ErrRender, err)
	}

	steps := []step{
		{"fill background", errs.ErrRender, BackgroundFilled, func() error {
			return backend.Fill(color.White)
		}},
		{"configure frame", errs.ErrRender, FrameConfigured, func() error {
			return backend.Frame(frame)
		}},
		{"draw points", errs.ErrRender, PointsDrawn, func() error {
			return backend.Points(set, PointStyle{
				Radius:      r.cfg.PointRadius,
				Color:       pointColor,
				LabelSize:   r.cfg.LabelSize,
				LabelOffset: r.cfg.LabelOffset,
				Precision:   r.cfg.LabelPrecision,
			})
		}},
		{"draw curve", errs.ErrRender, CurveDrawn, func() error {
			return backend.Curve(curve, LineStyle{Width: r.cfg.CurveWidth, Color: curveColor})
		}},
		{"save", errs.ErrIO, Saved, func() error {
			return r.commit(backend)
		}},
	}

	for _, s := range steps {
		if err := s.run(); err != nil {
			r.log.WithField("stage", s.name).Debugln("Render step failed:", err)
			return errs.Stage(s.name, s.kind, err)
		}

		r.state = s.next
		r.log.WithField("state", r.state).Traceln("Render step done")
	}

	r.log.WithFields(log.Fields{
		"path":   r.cfg.Output,
		"points": len(set),
		"curve":  len(curve),
	}).Debugln("Image saved")

	return nil
}

func (r *Renderer) commit(backend Backend) error {
	sink, err := lib.OpenSink(r.cfg.Output)
	if err != nil {
		return err
	}
	defer sink.Abort()

	if _, err := backend.WriteTo(sink); err != nil {
		return err
	}

	return sink.Commit()
}

// yBounds spans every finite output with 5% headroom.
func yBounds(sets ...sampler.SampleSet) (float64, float64) {
	var ys []float64
	for _, set := range sets {
		for _, y := range set.Outputs() {
			if !math.IsNaN(y) && !math.IsInf(y, 0) {
				ys = append(ys, y)
			}
		}
	}

	if len(ys) == 0 {
		return -1, 1
	}

	lo, hi := floats.Min(ys), floats.Max(ys)
	if lo == hi {
		return lo - 1, hi + 1
	}

	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}
