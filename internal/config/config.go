package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment variable names.
const (
	EnvOutDir    = "QIDAO_ICON_OUT_DIR"
	EnvFonts     = "QIDAO_ICON_FONTS"
	EnvDebug     = "QIDAO_ICON_DEBUG"
	EnvStdioLog  = "QIDAO_ICON_STDIO_LOG"
	EnvPreviewFB = "QIDAO_ICON_PREVIEW_FB"
)

// Config holds the generator settings. The zero-argument defaults write the
// Xcode iconset relative to the working directory.
type Config struct {
	OutDir    string   `env:"QIDAO_ICON_OUT_DIR" envDefault:"QiDao/QiDao/Assets.xcassets/AppIcon.appiconset"`
	Fonts     []string `env:"QIDAO_ICON_FONTS" envSeparator:"," envDefault:"/Library/Fonts/AdobeKaitiStd-Regular.otf,/System/Library/Fonts/Supplemental/Songti.ttc"`
	Debug     bool     `env:"QIDAO_ICON_DEBUG" envDefault:"false"`
	StdioLog  string   `env:"QIDAO_ICON_STDIO_LOG"`
	PreviewFB string   `env:"QIDAO_ICON_PREVIEW_FB"`
}

// FromEnv loads Config from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
