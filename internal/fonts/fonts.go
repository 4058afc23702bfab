package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Default candidates for the watermark font, most preferred first.
const (
	PrimaryPath   = "/Library/Fonts/AdobeKaitiStd-Regular.otf"
	SecondaryPath = "/System/Library/Fonts/Supplemental/Songti.ttc"
)

// DefaultPaths returns the default candidate list.
func DefaultPaths() []string { return []string{PrimaryPath, SecondaryPath} }

// Source says which candidate supplied the font.
type Source int

const (
	SourcePrimary Source = iota
	SourceSecondary
	SourceBuiltin
)

func (s Source) String() string {
	switch s {
	case SourcePrimary:
		return "primary"
	case SourceSecondary:
		return "secondary"
	case SourceBuiltin:
		return "builtin"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Skip records a candidate that could not be used.
type Skip struct {
	Path string
	Err  error
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Source  Source
	Path    string // empty for SourceBuiltin
	Skipped []Skip

	otf *opentype.Font
	ttf *truetype.Font
}

// Resolve picks the first candidate path that exists and parses. The
// first path counts as primary and any later one as secondary. When no
// candidate works the builtin Go Regular font is used; running out of
// candidates is never an error.
func Resolve(paths ...string) (*Resolution, error) {
	res := &Resolution{}
	for i, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		fnt, err := load(path)
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Path: path, Err: err})
			continue
		}
		res.Source = SourceSecondary
		if i == 0 {
			res.Source = SourcePrimary
		}
		res.Path = path
		res.otf = fnt
		return res, nil
	}

	res.Source = SourceBuiltin
	if tt, err := truetype.Parse(goregular.TTF); err == nil {
		res.ttf = tt
	}
	return res, nil
}

func load(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse collection: %w", err)
		}
		if coll.NumFonts() == 0 {
			return nil, errors.New("empty font collection")
		}
		fnt, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("collection font 0: %w", err)
		}
		return fnt, nil
	default:
		fnt, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		return fnt, nil
	}
}

// Face returns a face whose em size is sizePx pixels.
func (r *Resolution) Face(sizePx int) (font.Face, error) {
	if sizePx < 1 {
		sizePx = 1
	}
	switch {
	case r.otf != nil:
		face, err := opentype.NewFace(r.otf, &opentype.FaceOptions{Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return nil, fmt.Errorf("font face %s at %dpx: %w", r.Path, sizePx, err)
		}
		return face, nil
	case r.ttf != nil:
		return truetype.NewFace(r.ttf, &truetype.Options{Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull}), nil
	default:
		return basicfont.Face7x13, nil
	}
}

// HasGlyph reports whether the resolved font maps ch to a glyph.
func (r *Resolution) HasGlyph(ch rune) bool {
	switch {
	case r.otf != nil:
		var buf sfnt.Buffer
		idx, err := r.otf.GlyphIndex(&buf, ch)
		return err == nil && idx != 0
	case r.ttf != nil:
		return r.ttf.Index(ch) != 0
	default:
		_, _, ok := basicfont.Face7x13.GlyphBounds(ch)
		return ok
	}
}
