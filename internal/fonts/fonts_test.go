package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func writeFont(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	return path
}

func TestResolveFallsBackToBuiltin(t *testing.T) {
	dir := t.TempDir()
	res, err := Resolve(filepath.Join(dir, "missing.otf"), filepath.Join(dir, "missing.ttc"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Source != SourceBuiltin {
		t.Fatalf("expected builtin source, got %s", res.Source)
	}
	if res.Path != "" {
		t.Fatalf("expected empty path, got %q", res.Path)
	}
	if len(res.Skipped) != 2 {
		t.Fatalf("expected 2 skipped candidates, got %d", len(res.Skipped))
	}
	for _, skip := range res.Skipped {
		if !errors.Is(skip.Err, fs.ErrNotExist) {
			t.Fatalf("expected not-exist error for %s, got %v", skip.Path, skip.Err)
		}
	}
	if res.HasGlyph('道') {
		t.Fatal("expected builtin font to lack the watermark glyph")
	}
	if !res.HasGlyph('A') {
		t.Fatal("expected builtin font to cover latin letters")
	}
}

func TestResolveNoCandidates(t *testing.T) {
	res, err := Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Source != SourceBuiltin {
		t.Fatalf("expected builtin source, got %s", res.Source)
	}
}

func TestResolvePrimary(t *testing.T) {
	primary := writeFont(t, "primary.ttf", goregular.TTF)
	res, err := Resolve(primary, filepath.Join(t.TempDir(), "missing.ttc"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Source != SourcePrimary {
		t.Fatalf("expected primary source, got %s", res.Source)
	}
	if res.Path != primary {
		t.Fatalf("expected path %q, got %q", primary, res.Path)
	}
	if len(res.Skipped) != 0 {
		t.Fatalf("expected no skipped candidates, got %d", len(res.Skipped))
	}
}

func TestResolveSecondaryAfterBrokenPrimary(t *testing.T) {
	broken := writeFont(t, "broken.otf", []byte("not a font"))
	secondary := writeFont(t, "secondary.ttf", goregular.TTF)
	res, err := Resolve(broken, secondary)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Source != SourceSecondary {
		t.Fatalf("expected secondary source, got %s", res.Source)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Path != broken {
		t.Fatalf("expected broken primary to be skipped, got %+v", res.Skipped)
	}
}

func TestResolveRejectsBrokenCollection(t *testing.T) {
	broken := writeFont(t, "broken.ttc", []byte("ttcf but not really"))
	res, err := Resolve(broken)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Source != SourceBuiltin {
		t.Fatalf("expected builtin source, got %s", res.Source)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("expected 1 skipped candidate, got %d", len(res.Skipped))
	}
}

func TestFaceScalesWithSize(t *testing.T) {
	tests := []struct {
		name string
		res  func(t *testing.T) *Resolution
	}{
		{name: "opentype", res: func(t *testing.T) *Resolution {
			r, err := Resolve(writeFont(t, "font.ttf", goregular.TTF))
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			return r
		}},
		{name: "builtin", res: func(t *testing.T) *Resolution {
			r, err := Resolve()
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			return r
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.res(t)
			small, err := res.Face(10)
			if err != nil {
				t.Fatalf("face 10: %v", err)
			}
			large, err := res.Face(100)
			if err != nil {
				t.Fatalf("face 100: %v", err)
			}
			if small.Metrics().Height >= large.Metrics().Height {
				t.Fatalf("expected larger face to be taller: %v >= %v", small.Metrics().Height, large.Metrics().Height)
			}
			if _, err := res.Face(0); err != nil {
				t.Fatalf("face 0: %v", err)
			}
		})
	}
}

func TestSourceString(t *testing.T) {
	tests := map[Source]string{
		SourcePrimary:   "primary",
		SourceSecondary: "secondary",
		SourceBuiltin:   "builtin",
		Source(9):       "source(9)",
	}
	for src, want := range tests {
		if got := src.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
