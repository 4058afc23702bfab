package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/neolee/qidao/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ErrInvalidSize is returned for canvas sizes below one pixel.
var ErrInvalidSize = errors.New("icon size must be positive")

// FaceSource builds glyph faces for a pixel em size.
type FaceSource interface {
	Face(sizePx int) (font.Face, error)
}

type stoneStyle int

const (
	stoneDark stoneStyle = iota
	stoneLight
)

type stone struct {
	col, row int
	style    stoneStyle
}

var stones = []stone{
	{col: 1, row: 1, style: stoneDark},
	{col: 1, row: 5, style: stoneLight},
	{col: 5, row: 1, style: stoneLight},
	{col: 5, row: 5, style: stoneDark},
	{col: 3, row: 3, style: stoneLight},
}

// IconRenderer draws the app icon composition. It keeps no state between
// calls beyond its configuration.
type IconRenderer struct {
	Faces  FaceSource
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewIconRenderer(faces FaceSource) *IconRenderer { return &IconRenderer{Faces: faces} }

// Render returns a size x size opaque canvas holding the board, grid,
// stones and the shadowed watermark glyph.
func (r *IconRenderer) Render(size int) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	board := layout.NewBoard(size)
	c := newCanvas(size)

	c.FillBackground(BoardColor)
	for _, seg := range board.Lines() {
		c.DrawLine(seg, float64(board.LineWidth), LineColor)
	}
	for _, s := range stones {
		center := board.Intersection(s.col, s.row)
		radius := float64(board.StoneRadius)
		switch s.style {
		case stoneDark:
			c.FillCircle(center, radius, DarkStoneFill)
		case stoneLight:
			c.FillCircle(center, radius, LightStoneFill)
			c.StrokeCircle(center, radius, float64(board.OutlineWidth), LightStoneOutline)
		}
	}

	face, err := r.face(board.GlyphSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()
	c.DrawTextShadowed(Glyph, face, board.GlyphLift, board.ShadowOffset, GlyphColor, ShadowColor)

	return c.img, nil
}

func (r *IconRenderer) face(sizePx int) (font.Face, error) {
	if r.Faces == nil {
		if r.Logger != nil {
			r.Logger.Errorf("render", "no face source, defaulting to basicfont")
		}
		return basicfont.Face7x13, nil
	}
	face, err := r.Faces.Face(sizePx)
	if err != nil {
		return nil, fmt.Errorf("glyph face at %dpx: %w", sizePx, err)
	}
	return face, nil
}

// Icon renders one icon with a throwaway renderer.
func Icon(size int, faces FaceSource) (*image.RGBA, error) {
	return NewIconRenderer(faces).Render(size)
}
