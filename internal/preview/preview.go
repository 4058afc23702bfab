// Package preview shows a rendered icon on a Linux framebuffer console, for
// checking the artwork on a device without a desktop.
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/neolee/qidao/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// ErrUnsupported is returned on platforms without framebuffer support.
var ErrUnsupported = errors.New("framebuffer preview is only supported on linux")

// Target is the part of a framebuffer device the preview writes to.
type Target interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// Blit fills dst with bg and draws img centered, scaled with nearest
// neighbour sampling to the largest square that fits.
func Blit(dst Target, img image.Image, bg color.Color) {
	bounds := dst.Bounds()
	square := layout.CenterSquare(bounds, -1)

	// Compose off-screen first; device writes are per pixel anyway.
	frame := image.NewRGBA(bounds)
	draw.Draw(frame, bounds, &image.Uniform{C: bg}, image.Point{}, draw.Src)
	if img != nil && !square.Empty() {
		xdraw.NearestNeighbor.Scale(frame, square, img, img.Bounds(), xdraw.Over, nil)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := frame.RGBAAt(x, y)
			dst.Set(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
