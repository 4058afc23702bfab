package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrMissingImage means a slot references a file that is not on disk.
	ErrMissingImage = errors.New("manifest references missing image")
	// ErrSlotMismatch means a slot's size times scale disagrees with the
	// pixel size in its file name.
	ErrSlotMismatch = errors.New("manifest slot does not match image size")
)

// Image is one icon slot.
type Image struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
	Scale    string `json:"scale"`
}

type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// Manifest is a decoded Contents.json of an .appiconset.
type Manifest struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// Parse decodes a Contents.json document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// Filenames returns the distinct referenced file names, sorted.
func (m *Manifest) Filenames() []string {
	seen := make(map[string]struct{}, len(m.Images))
	names := make([]string, 0, len(m.Images))
	for _, img := range m.Images {
		if _, ok := seen[img.Filename]; ok {
			continue
		}
		seen[img.Filename] = struct{}{}
		names = append(names, img.Filename)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every referenced file exists in dir.
func (m *Manifest) Validate(dir string) error {
	for _, name := range m.Filenames() {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrMissingImage, name)
			}
			return fmt.Errorf("stat %s: %w", name, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrMissingImage, name)
		}
	}
	return nil
}

// CheckPixelSizes verifies each slot against the app_<px>.png naming.
func (m *Manifest) CheckPixelSizes() error {
	for _, img := range m.Images {
		want, err := img.PixelSize()
		if err != nil {
			return err
		}
		got, err := filePixelSize(img.Filename)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("%w: %s %s@%s needs %dpx, file has %dpx", ErrSlotMismatch, img.Filename, img.Size, img.Scale, want, got)
		}
	}
	return nil
}

// PixelSize returns the logical size multiplied by the scale factor.
func (img Image) PixelSize() (int, error) {
	w, h, ok := strings.Cut(img.Size, "x")
	if !ok || w != h {
		return 0, fmt.Errorf("%w: bad size %q", ErrSlotMismatch, img.Size)
	}
	points, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("%w: bad size %q", ErrSlotMismatch, img.Size)
	}
	factor, err := strconv.Atoi(strings.TrimSuffix(img.Scale, "x"))
	if err != nil || !strings.HasSuffix(img.Scale, "x") {
		return 0, fmt.Errorf("%w: bad scale %q", ErrSlotMismatch, img.Scale)
	}
	return points * factor, nil
}

func filePixelSize(name string) (int, error) {
	raw := strings.TrimSuffix(strings.TrimPrefix(name, "app_"), ".png")
	px, err := strconv.Atoi(raw)
	if err != nil || raw == name {
		return 0, fmt.Errorf("%w: unexpected file name %q", ErrSlotMismatch, name)
	}
	return px, nil
}
