package app

import (
	"context"
	"fmt"
	"image"

	"github.com/neolee/qidao/internal/assets"
	"github.com/neolee/qidao/internal/fonts"
	"github.com/neolee/qidao/internal/iconset"
	"github.com/neolee/qidao/internal/manifest"
	"github.com/neolee/qidao/internal/render"
)

// Options configures one generator run.
type Options struct {
	OutDir    string
	FontPaths []string
	Sizes     []int // defaults to render.Sizes
	Logger    Logger
}

// App renders every icon size and writes the iconset.
type App struct {
	OutDir    string
	FontPaths []string
	Sizes     []int
	Logger    Logger

	// Manifest is the document written next to the images.
	Manifest []byte
}

func New(opts Options) *App {
	a := &App{
		OutDir:    opts.OutDir,
		FontPaths: opts.FontPaths,
		Sizes:     opts.Sizes,
		Logger:    opts.Logger,
		Manifest:  assets.ContentsJSON,
	}
	if a.OutDir == "" {
		a.OutDir = iconset.DefaultDir
	}
	if a.FontPaths == nil {
		a.FontPaths = fonts.DefaultPaths()
	}
	if a.Sizes == nil {
		a.Sizes = render.Sizes
	}
	if a.Logger == nil {
		a.Logger = NoopLogger{}
	}
	return a
}

// WrittenFile describes one file produced by a run.
type WrittenFile struct {
	Path string
	Size int // pixel size; 0 for the manifest
}

// Report summarises a finished run.
type Report struct {
	OutDir     string
	FontSource fonts.Source
	FontPath   string
	Files      []WrittenFile

	// Largest is the biggest rendered canvas, kept for previews.
	Largest image.Image
}

// Run resolves the watermark font, writes one PNG per size and then the
// manifest. Any filesystem or encoding error aborts the run; files already
// written stay on disk.
func (app *App) Run(ctx context.Context) (*Report, error) {
	res, err := fonts.Resolve(app.FontPaths...)
	if err != nil {
		return nil, fmt.Errorf("resolve font: %w", err)
	}
	for _, skip := range res.Skipped {
		app.Logger.Infof("fonts", "skipped %s: %v", skip.Path, skip.Err)
	}
	app.Logger.Infof("fonts", "using %s font %s", res.Source, res.Path)
	if !res.HasGlyph([]rune(render.Glyph)[0]) {
		app.Logger.Errorf("fonts", "%s font has no glyph for %q, icon watermark will be a placeholder", res.Source, render.Glyph)
	}

	writer := iconset.NewWriter(app.OutDir)
	if err := writer.Prepare(); err != nil {
		return nil, err
	}

	report := &Report{OutDir: app.OutDir, FontSource: res.Source, FontPath: res.Path}
	renderer := render.NewIconRenderer(res)
	renderer.Logger = app.Logger
	for _, size := range app.Sizes {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		img, err := renderer.Render(size)
		if err != nil {
			return report, fmt.Errorf("render %dpx: %w", size, err)
		}
		path, err := writer.WriteIcon(size, img)
		if err != nil {
			return report, err
		}
		app.Logger.Infof("iconset", "wrote %s (%dx%d)", path, size, size)
		report.Files = append(report.Files, WrittenFile{Path: path, Size: size})
		if report.Largest == nil || size > report.Largest.Bounds().Dx() {
			report.Largest = img
		}
	}

	path, err := writer.WriteManifest(app.Manifest)
	if err != nil {
		return report, err
	}
	app.Logger.Infof("iconset", "wrote %s", path)
	report.Files = append(report.Files, WrittenFile{Path: path})

	m, err := manifest.Parse(app.Manifest)
	if err != nil {
		return report, err
	}
	if err := m.Validate(app.OutDir); err != nil {
		app.Logger.Errorf("iconset", "manifest validation failed: %v", err)
		return report, err
	}
	if err := m.CheckPixelSizes(); err != nil {
		app.Logger.Errorf("iconset", "manifest slot check failed: %v", err)
		return report, err
	}
	return report, nil
}
