package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	imgdraw "image/draw"
	"io"
	"strconv"

	"git.sr.ht/~sbinet/gg"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"sinplot/pkg/config"
	"sinplot/pkg/sampler"
)

const dpi = 96

var errNoCanvas = errors.New("background not filled")

// px converts pixels to vg lengths at 96 DPI.
func px(v float64) vg.Length { return vg.Length(v) * vg.Inch / dpi }

type gonumBackend struct {
	format        config.Format
	width, height int

	canvas vg.CanvasWriterTo
	plot   *plot.Plot
	frame  Frame
}

// NewGonumBackend draws with gonum.org/v1/plot.
func NewGonumBackend(format config.Format, width, height int) (Backend, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	switch format {
	case config.PNG, config.JPEG, config.TIFF, config.SVG, config.PDF:
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	return &gonumBackend{format: format, width: width, height: height}, nil
}

func (b *gonumBackend) Fill(bg color.Color) error {
	b.plot = plot.New()
	b.plot.BackgroundColor = bg

	if !b.format.Raster() {
		w, h := px(float64(b.width)), px(float64(b.height))
		if b.format == config.SVG {
			b.canvas = vgsvg.New(w, h)
		} else {
			b.canvas = vgpdf.New(w, h)
		}
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	imgdraw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, imgdraw.Src)

	// gg draws straight into img, vgimg.UseImage would draw on a copy
	c := vgimg.NewWith(vgimg.UseImageWithContext(img, gg.NewContextForRGBA(img)), vgimg.UseDPI(dpi))
	switch b.format {
	case config.JPEG:
		b.canvas = vgimg.JpegCanvas{Canvas: c}
	case config.TIFF:
		b.canvas = vgimg.TiffCanvas{Canvas: c}
	default:
		b.canvas = vgimg.PngCanvas{Canvas: c}
	}

	return nil
}

func (b *gonumBackend) Frame(f Frame) error {
	if b.plot == nil {
		return errNoCanvas
	}

	b.frame = f
	p := b.plot

	p.Title.Text = f.Caption
	p.Title.TextStyle.Font.Size = px(f.CaptionSize)

	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	// the label area covers tick labels plus the gap up to the axis label
	p.X.Label.Padding = max(0, px(f.XLabelArea)-p.X.Tick.Label.Height("0"))
	p.Y.Label.Padding = max(0, px(f.YLabelArea)-p.Y.Tick.Label.Width("-0.0"))

	b.applyBounds()
	return nil
}

// applyBounds pins the axes. p.Add widens them to fit the data.
func (b *gonumBackend) applyBounds() {
	b.plot.X.Min, b.plot.X.Max = b.frame.XMin, b.frame.XMax
	b.plot.Y.Min, b.plot.Y.Max = b.frame.YMin, b.frame.YMax
}

func (b *gonumBackend) Points(set sampler.SampleSet, st PointStyle) error {
	if b.plot == nil {
		return errNoCanvas
	}

	scatter, err := plotter.NewScatter(set)
	if err != nil {
		return err
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  st.Color,
		Radius: px(st.Radius),
		Shape:  draw.CircleGlyph{},
	}

	xys, err := plotter.CopyXYs(set)
	if err != nil {
		return err
	}

	texts := make([]string, len(set))
	for i, s := range set {
		texts[i] = strconv.FormatFloat(s.Output, 'f', st.Precision, 64)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = px(st.LabelSize)
	}
	labels.Offset = vg.Point{X: px(st.LabelOffset)}

	b.plot.Add(scatter, labels)
	return nil
}

func (b *gonumBackend) Curve(set sampler.SampleSet, st LineStyle) error {
	if b.plot == nil {
		return errNoCanvas
	}

	line, err := plotter.NewLine(set)
	if err != nil {
		return err
	}
	line.LineStyle.Color = st.Color
	line.LineStyle.Width = px(st.Width)

	b.plot.Add(line)
	return nil
}

func (b *gonumBackend) WriteTo(w io.Writer) (int64, error) {
	if b.canvas == nil {
		return 0, errNoCanvas
	}

	b.applyBounds()

	dc := draw.New(b.canvas)
	m := px(b.frame.Margin)
	dc = draw.Crop(dc, m, -m, m, -m)
	b.plot.Draw(dc)

	return b.canvas.WriteTo(w)
}
