package render

import "image/color"

// Icon palette, taken from the board theme of the app.
var (
	BoardColor = color.RGBA{R: 240, G: 215, B: 180, A: 0xFF}
	LineColor  = color.RGBA{R: 190, G: 170, B: 150, A: 0xFF}

	DarkStoneFill     = color.RGBA{R: 120, G: 120, B: 120, A: 0xFF}
	LightStoneFill    = color.RGBA{R: 250, G: 250, B: 250, A: 0xFF}
	LightStoneOutline = color.RGBA{R: 220, G: 220, B: 220, A: 0xFF}

	GlyphColor = color.RGBA{R: 40, G: 30, B: 20, A: 0xFF}
	// Non-premultiplied so the drawer blends it over the board.
	ShadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 80}
)

// Glyph is the watermark drawn over the board.
const Glyph = "道"

// Sizes lists every pixel size written to the iconset, smallest first.
var Sizes = []int{16, 32, 64, 128, 256, 512, 1024}
