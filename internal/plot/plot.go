// Package plot renders recorded trajectories to PNG images: the target and
// the system output as polylines over time, with text labels for the title
// and axis ranges.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/tphakala/go-second-order/internal/analysis"
)

// Plot errors.
var (
	ErrNoData        = errors.New("nothing to plot")
	ErrImageTooSmall = errors.New("image too small for plot margins")
)

// Config defines the image size and colors.
type Config struct {
	Width      int        // Image width in pixels
	Height     int        // Image height in pixels
	LineWidth  float32    // Polyline width in pixels
	Background color.RGBA // Background color
	Foreground color.RGBA // Axis and label color
	Target     color.RGBA // Target series color
	Value      color.RGBA // Output series color
}

// DefaultConfig returns an 800x400 plot on a dark background.
func DefaultConfig() Config {
	return Config{
		Width:      defaultWidth,
		Height:     defaultHeight,
		LineWidth:  defaultLineWidth,
		Background: color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff},
		Foreground: color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff},
		Target:     color.RGBA{R: 0x6c, G: 0x70, B: 0x86, A: 0xff},
		Value:      color.RGBA{R: 0xa6, G: 0xe3, B: 0xa1, A: 0xff},
	}
}

// Render draws the trajectory and returns the image.
func Render(cfg Config, t *analysis.Trajectory, title string) (*image.RGBA, error) {
	if t.Len() == 0 {
		return nil, ErrNoData
	}
	if cfg.Width <= marginLeft+marginRight || cfg.Height <= marginTop+marginBottom {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooSmall, cfg.Width, cfg.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	area := image.Rect(marginLeft, marginTop, cfg.Width-marginRight, cfg.Height-marginBottom)
	lo, hi := valueRange(t)
	p := projection{area: area, duration: t.Duration(), lo: lo, hi: hi}

	drawFrame(img, area, cfg.Foreground)
	drawSeries(img, p, t, t.Targets, cfg.Target, cfg.LineWidth)
	drawSeries(img, p, t, t.Values, cfg.Value, cfg.LineWidth)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(cfg.Foreground),
		Face: basicfont.Face7x13,
	}
	drawLabel(drawer, marginLeft, marginTop-labelGap, title)
	drawLabel(drawer, labelInset, area.Min.Y+glyphHeight, formatTick(hi))
	drawLabel(drawer, labelInset, area.Max.Y, formatTick(lo))
	drawLabel(drawer, area.Min.X, cfg.Height-labelGap, "0s")
	end := fmt.Sprintf("%.2fs", p.duration)
	drawLabel(drawer, area.Max.X-font.MeasureString(drawer.Face, end).Round(), cfg.Height-labelGap, end)

	return img, nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG renders the trajectory to a PNG file at path.
func SavePNG(path string, cfg Config, t *analysis.Trajectory, title string) error {
	img, err := Render(cfg, t, title)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode plot: %w", err)
	}
	return file.Close()
}

// projection maps (time, value) to pixel coordinates inside area.
type projection struct {
	area     image.Rectangle
	duration float64
	lo, hi   float64
}

func (p projection) point(tm, v float64) (float32, float32) {
	x := float64(p.area.Min.X) + tm/p.duration*float64(p.area.Dx())
	y := float64(p.area.Max.Y) - (v-p.lo)/(p.hi-p.lo)*float64(p.area.Dy())
	return float32(x), float32(y)
}

// valueRange returns the padded value range over both series.
func valueRange(t *analysis.Trajectory) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range [][]float64{t.Targets, t.Values} {
		for _, v := range s {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi-lo == 0 {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * rangePadding
	return lo - pad, hi + pad
}

// drawSeries strokes s as a polyline. Each segment is a quad of the line
// width; all quads share one winding so overlaps do not cancel.
func drawSeries(img *image.RGBA, p projection, t *analysis.Trajectory, s []float64, c color.RGBA, width float32) {
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	half := width / 2
	px, py := p.point(0, s[0])
	for i := range s {
		x, y := p.point(t.Time(i), s[i])
		dx, dy := x-px, y-py
		n := float32(math.Hypot(float64(dx), float64(dy)))
		if n == 0 {
			dx, dy, n = 1, 0, 1
		}
		nx, ny := -dy/n*half, dx/n*half

		z.MoveTo(px+nx, py+ny)
		z.LineTo(x+nx, y+ny)
		z.LineTo(x-nx, y-ny)
		z.LineTo(px-nx, py-ny)
		z.ClosePath()

		px, py = x, y
	}

	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

// drawFrame draws the plot area's left and bottom axes.
func drawFrame(img *image.RGBA, area image.Rectangle, c color.RGBA) {
	for x := area.Min.X; x <= area.Max.X; x++ {
		img.SetRGBA(x, area.Max.Y, c)
	}
	for y := area.Min.Y; y <= area.Max.Y; y++ {
		img.SetRGBA(area.Min.X, y, c)
	}
}

func drawLabel(d *font.Drawer, x, y int, text string) {
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x << 6),
		Y: fixed.Int26_6(y << 6),
	}
	d.DrawString(text)
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.3g", v)
}
