package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/neolee/qidao/internal/app"
	"github.com/neolee/qidao/internal/config"
	"github.com/neolee/qidao/internal/preview"
	"github.com/neolee/qidao/internal/render"
)

const debugLogPath = "./qidao-icongen-debug.log"

func main() {
	defaults, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}

	outDir := flag.String("out", defaults.OutDir, "iconset output directory; also configurable via "+config.EnvOutDir)
	fontList := flag.String("font", strings.Join(defaults.Fonts, ","), "comma separated watermark font candidates, most preferred first; also configurable via "+config.EnvFonts)
	debug := flag.Bool("debug", defaults.Debug, "log to "+debugLogPath+" and stderr; also configurable via "+config.EnvDebug)
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	previewFB := flag.String("preview-fb", defaults.PreviewFB, "show the largest icon on this framebuffer device, e.g. /dev/fb0; also configurable via "+config.EnvPreviewFB)
	flag.Parse()

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
			logger = app.NewFileLogger(os.Stderr)
		} else {
			defer f.Close()
			logger = app.NewFileLogger(io.MultiWriter(f, os.Stderr))
		}
		logger.Infof("main", "debug logging enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.Options{
		OutDir:    *outDir,
		FontPaths: splitList(*fontList),
		Logger:    logger,
	})
	report, err := a.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "icon generation failed:", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d files to %s (%s font", len(report.Files), report.OutDir, report.FontSource)
	if report.FontPath != "" {
		fmt.Printf(" %s", report.FontPath)
	}
	fmt.Println(")")

	if *previewFB != "" {
		if err := preview.Show(*previewFB, report.Largest, render.BoardColor); err != nil {
			fmt.Fprintln(os.Stderr, "preview error:", err)
		}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
