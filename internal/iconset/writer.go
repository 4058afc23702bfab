package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/neolee/qidao/internal/assets"
)

// DefaultDir is where the Xcode project expects the app icon set.
const DefaultDir = "QiDao/QiDao/Assets.xcassets/AppIcon.appiconset"

// Writer persists rendered icons and the manifest into one directory.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer { return &Writer{Dir: dir} }

// FileName returns the conventional file name for a pixel size.
func FileName(size int) string { return fmt.Sprintf("app_%d.png", size) }

// Prepare creates the output directory and its parents if needed.
func (w *Writer) Prepare() error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", w.Dir, err)
	}
	return nil
}

// WriteIcon encodes img as an opaque RGB PNG named after size, replacing
// any previous file. It returns the written path.
func (w *Writer) WriteIcon(size int, img image.Image) (string, error) {
	path := filepath.Join(w.Dir, FileName(size))
	var buf bytes.Buffer
	if err := png.Encode(&buf, opaque(img)); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// WriteManifest writes data as the iconset's Contents.json.
func (w *Writer) WriteManifest(data []byte) (string, error) {
	path := filepath.Join(w.Dir, assets.ManifestName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// opaque copies img into an RGBA with every alpha forced to 0xFF, so the
// PNG encoder emits RGB without an alpha channel.
func opaque(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			c.A = 0xFF
			out.SetRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return out
}
