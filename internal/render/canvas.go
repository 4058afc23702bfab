package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/raster"
	"github.com/neolee/qidao/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Cubic bezier control distance for a quarter circle.
const kappa = 0.5522847498307936

// canvas wraps an RGBA image with anti-aliased drawing primitives.
// Coordinates address pixel corners; integer positions are shifted to
// pixel centers so one pixel wide lines stay crisp.
type canvas struct {
	img     *image.RGBA
	rast    *raster.Rasterizer
	painter *raster.RGBAPainter
}

func newCanvas(size int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	return &canvas{
		img:     img,
		rast:    raster.NewRasterizer(size, size),
		painter: raster.NewRGBAPainter(img),
	}
}

func (c *canvas) FillBackground(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *canvas) DrawLine(seg layout.Segment, width float64, col color.Color) {
	var path raster.Path
	path.Start(pt(seg.From.X, seg.From.Y))
	path.Add1(pt(seg.To.X, seg.To.Y))
	c.rast.Clear()
	c.rast.AddStroke(path, fix(width), raster.ButtCapper, raster.BevelJoiner)
	c.paint(col)
}

func (c *canvas) FillCircle(center layout.Point, radius float64, col color.Color) {
	c.rast.Clear()
	c.rast.AddPath(circlePath(center, radius))
	c.paint(col)
}

// StrokeCircle paints a ring of the given width just inside radius.
func (c *canvas) StrokeCircle(center layout.Point, radius, width float64, col color.Color) {
	inner := radius - width
	c.rast.Clear()
	c.rast.AddPath(circlePath(center, radius))
	if inner > 0 {
		// Even-odd filling punches the inner disk out of the outer one.
		c.rast.UseNonZeroWinding = false
		c.rast.AddPath(circlePath(center, inner))
	}
	c.paint(col)
}

// DrawTextShadowed draws text centered on the canvas, raised by lift
// pixels: first in shadow color shifted by offset on both axes, then in
// the foreground color.
func (c *canvas) DrawTextShadowed(text string, face font.Face, lift, offset float64, fg, shadow color.Color) {
	x, y := c.textOrigin(text, face, lift)
	c.drawTextAt(text, face, x+offset, y+offset, shadow)
	c.drawTextAt(text, face, x, y, fg)
}

// textOrigin returns the dot position that centers the ink bounds of text.
// Faces without ink for text (a missing glyph in a bitmap font) fall back
// to advance and line metrics.
func (c *canvas) textOrigin(text string, face font.Face, lift float64) (float64, float64) {
	size := float64(c.img.Bounds().Dx())
	bounds, advance := font.BoundString(face, text)
	w := unfix(bounds.Max.X - bounds.Min.X)
	h := unfix(bounds.Max.Y - bounds.Min.Y)
	if w <= 0 || h <= 0 {
		metrics := face.Metrics()
		ascent := unfix(metrics.Ascent)
		height := ascent + unfix(metrics.Descent)
		return (size - unfix(advance)) / 2, (size-height)/2 + ascent - lift
	}
	left := (size - w) / 2
	top := (size-h)/2 - lift
	return left - unfix(bounds.Min.X), top - unfix(bounds.Min.Y)
}

func (c *canvas) drawTextAt(text string, face font.Face, x, y float64, col color.Color) {
	drawer := &font.Drawer{Dst: c.img, Src: &image.Uniform{C: col}, Face: face}
	drawer.Dot = fixed.Point26_6{X: fix(x), Y: fix(y)}
	drawer.DrawString(text)
}

func (c *canvas) paint(col color.Color) {
	c.painter.SetColor(col)
	c.rast.Rasterize(c.painter)
}

func circlePath(center layout.Point, radius float64) raster.Path {
	cx, cy := center.X, center.Y
	k := radius * kappa
	var path raster.Path
	path.Start(pt(cx+radius, cy))
	path.Add3(pt(cx+radius, cy+k), pt(cx+k, cy+radius), pt(cx, cy+radius))
	path.Add3(pt(cx-k, cy+radius), pt(cx-radius, cy+k), pt(cx-radius, cy))
	path.Add3(pt(cx-radius, cy-k), pt(cx-k, cy-radius), pt(cx, cy-radius))
	path.Add3(pt(cx+k, cy-radius), pt(cx+radius, cy-k), pt(cx+radius, cy))
	return path
}

func pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fix(x + 0.5), Y: fix(y + 0.5)}
}

func fix(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }

func unfix(v fixed.Int26_6) float64 { return float64(v) / 64 }
