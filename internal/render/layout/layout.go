package layout

import (
	"image"
	"math"
)

// Reference geometry, in pixels of a ReferenceSize icon.
const (
	ReferenceSize = 1024
	GridLines     = 7

	refMargin       = 80
	refLineWidth    = 6
	refStoneInset   = 5
	refOutlineWidth = 2
	refGlyphSize    = 650
	refShadowOffset = 10
	refGlyphLift    = 40
)

// Point is a position on the canvas in (fractional) pixels.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// Board holds the drawing parameters of one icon size. Every length is the
// reference value scaled by Size/ReferenceSize.
type Board struct {
	Size  int
	Scale float64

	Margin  float64
	Spacing float64

	LineWidth    int
	StoneRadius  int
	OutlineWidth int

	GlyphSize    int
	ShadowOffset float64
	GlyphLift    float64
}

// NewBoard computes the board geometry for a size x size canvas.
func NewBoard(size int) Board {
	scale := float64(size) / ReferenceSize
	margin := refMargin * scale
	spacing := math.Floor((float64(size) - 2*margin) / (GridLines - 1))
	if spacing < 0 {
		spacing = 0
	}
	return Board{
		Size:         size,
		Scale:        scale,
		Margin:       margin,
		Spacing:      spacing,
		LineWidth:    atLeastOne(int(refLineWidth * scale)),
		StoneRadius:  atLeastOne(int(math.Floor(spacing/2)) - int(refStoneInset*scale)),
		OutlineWidth: atLeastOne(int(refOutlineWidth * scale)),
		GlyphSize:    int(refGlyphSize * scale),
		ShadowOffset: refShadowOffset * scale,
		GlyphLift:    refGlyphLift * scale,
	}
}

// Intersection returns the canvas position of grid point (col, row),
// counted from the top-left line.
func (b Board) Intersection(col, row int) Point {
	return Point{
		X: b.Margin + float64(col)*b.Spacing,
		Y: b.Margin + float64(row)*b.Spacing,
	}
}

// Lines returns the grid lines, each vertical line followed by the
// horizontal line of the same index. Lines run from the margin to the
// opposite margin regardless of spacing rounding.
func (b Board) Lines() []Segment {
	far := float64(b.Size) - b.Margin
	lines := make([]Segment, 0, 2*GridLines)
	for i := 0; i < GridLines; i++ {
		offset := b.Margin + float64(i)*b.Spacing
		lines = append(lines,
			Segment{From: Point{X: offset, Y: b.Margin}, To: Point{X: offset, Y: far}},
			Segment{From: Point{X: b.Margin, Y: offset}, To: Point{X: far, Y: offset}},
		)
	}
	return lines
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenterSquare returns the largest square no bigger than sidePx that fits
// into rect, centered on both axes.
func CenterSquare(rect image.Rectangle, sidePx int) image.Rectangle {
	rect = Normalize(rect)
	side := rect.Dx()
	if rect.Dy() < side {
		side = rect.Dy()
	}
	if sidePx >= 0 && sidePx < side {
		side = sidePx
	}
	if side < 0 {
		side = 0
	}
	x := rect.Min.X + (rect.Dx()-side)/2
	y := rect.Min.Y + (rect.Dy()-side)/2
	return image.Rect(x, y, x+side, y+side)
}
