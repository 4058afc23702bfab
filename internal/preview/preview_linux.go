//go:build linux

package preview

import (
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// Show opens the framebuffer device at path and blits img onto it.
func Show(path string, img image.Image, bg color.Color) error {
	dev, err := fb.Open(path)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	defer dev.Close()
	Blit(dev, img, bg)
	return nil
}
