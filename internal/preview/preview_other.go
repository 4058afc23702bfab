//go:build !linux

package preview

import (
	"image"
	"image/color"
)

func Show(path string, img image.Image, bg color.Color) error {
	return ErrUnsupported
}
