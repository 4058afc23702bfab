package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/neolee/qidao/internal/assets"
)

var producedFiles = []string{
	"app_1024.png", "app_128.png", "app_16.png", "app_256.png",
	"app_32.png", "app_512.png", "app_64.png",
}

func TestParseEmbeddedManifest(t *testing.T) {
	m, err := Parse(assets.ContentsJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(m.Images) != 10 {
		t.Fatalf("expected 10 image entries, got %d", len(m.Images))
	}
	if m.Info.Version != 1 || m.Info.Author != "xcode" {
		t.Fatalf("unexpected info block %+v", m.Info)
	}
	for _, img := range m.Images {
		if img.Idiom != "mac" {
			t.Fatalf("expected mac idiom, got %q", img.Idiom)
		}
	}
	names := m.Filenames()
	if len(names) != len(producedFiles) {
		t.Fatalf("expected %d distinct files, got %v", len(producedFiles), names)
	}
	for i, name := range names {
		if name != producedFiles[i] {
			t.Fatalf("expected %s at %d, got %s", producedFiles[i], i, name)
		}
	}
	if err := m.CheckPixelSizes(); err != nil {
		t.Fatalf("check pixel sizes: %v", err)
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"images": [`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidate(t *testing.T) {
	m, err := Parse(assets.ContentsJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	dir := t.TempDir()
	for _, name := range producedFiles {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := m.Validate(dir); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if err := os.Remove(filepath.Join(dir, "app_64.png")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := m.Validate(dir); !errors.Is(err, ErrMissingImage) {
		t.Fatalf("expected ErrMissingImage, got %v", err)
	}
}

func TestCheckPixelSizesMismatch(t *testing.T) {
	tests := []struct {
		name string
		img  Image
	}{
		{name: "wrong file", img: Image{Size: "16x16", Scale: "2x", Filename: "app_16.png"}},
		{name: "bad size", img: Image{Size: "16x32", Scale: "1x", Filename: "app_16.png"}},
		{name: "bad scale", img: Image{Size: "16x16", Scale: "two", Filename: "app_32.png"}},
		{name: "bad file name", img: Image{Size: "16x16", Scale: "1x", Filename: "icon.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{Images: []Image{tt.img}}
			if err := m.CheckPixelSizes(); !errors.Is(err, ErrSlotMismatch) {
				t.Fatalf("expected ErrSlotMismatch, got %v", err)
			}
		})
	}
}

func TestPixelSize(t *testing.T) {
	got, err := Image{Size: "512x512", Scale: "2x"}.PixelSize()
	if err != nil {
		t.Fatalf("pixel size: %v", err)
	}
	if got != 1024 {
		t.Fatalf("expected 1024, got %d", got)
	}
}
