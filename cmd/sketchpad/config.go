package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ha1tch/sketchpad/pkg/sketch"
	"github.com/ha1tch/sketchpad/pkg/sketchfile"
	"github.com/ha1tch/sketchpad/pkg/xlog"
)

// fileConfig is the on-disk layout of ~/.sketchpad.toml. Zero fields keep
// their defaults.
type fileConfig struct {
	StrokeWidth float64 `toml:"stroke_width"`
	CellSize    int     `toml:"cell_size"`
	Step        float64 `toml:"step"`
	HitRadius   float64 `toml:"hit_radius"`
	FrameRate   int     `toml:"frame_rate"`
	Overlay     string  `toml:"overlay"`
	ExportType  string  `toml:"export_type"`
	ExportDir   string  `toml:"export_dir"`
	LogLevel    string  `toml:"log_level"`
	LogPath     string  `toml:"log_path"`
}

// Settings holds everything the sketchpad reads at startup.
type Settings struct {
	Sketch     sketch.Config
	ExportType sketchfile.Format
	ExportDir  string
	Log        xlog.Conf
}

// DefaultSettings returns the reference tuning, PNG export to the working
// directory and file logging.
func DefaultSettings() Settings {
	cwd, _ := os.Getwd()
	return Settings{
		Sketch:     sketch.DefaultConfig(),
		ExportType: sketchfile.FormatPNG,
		ExportDir:  cwd,
		Log:        xlog.Conf{Mode: xlog.ModeFile, Filename: "sketchpad.log"},
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sketchpad.toml"
	}
	return filepath.Join(home, ".sketchpad.toml")
}

// LoadSettings reads the config file at path. A missing file yields the
// defaults. A malformed file yields the defaults and an error.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := parseSettings(data)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parseSettings(data []byte) (Settings, error) {
	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return Settings{}, err
	}

	s := DefaultSettings()
	c := &s.Sketch
	if fc.StrokeWidth != 0 {
		c.StrokeWidth = fc.StrokeWidth
	}
	if fc.CellSize != 0 {
		c.CellSize = fc.CellSize
	}
	if fc.Step != 0 {
		c.Step = fc.Step
	}
	if fc.HitRadius != 0 {
		c.HitRadius = fc.HitRadius
	}
	if fc.FrameRate != 0 {
		c.FrameRate = fc.FrameRate
	}
	switch sketch.OverlayMode(fc.Overlay) {
	case "":
	case sketch.OverlaySmooth, sketch.OverlayResampled:
		c.Overlay = sketch.OverlayMode(fc.Overlay)
	default:
		return Settings{}, fmt.Errorf("overlay %q: want %s or %s", fc.Overlay, sketch.OverlaySmooth, sketch.OverlayResampled)
	}
	if fc.ExportType != "" {
		f, err := sketchfile.ParseFormat(fc.ExportType)
		if err != nil {
			return Settings{}, err
		}
		s.ExportType = f
	}
	if fc.ExportDir != "" {
		s.ExportDir = fc.ExportDir
	}
	if fc.LogLevel != "" {
		s.Log.Level = fc.LogLevel
	}
	if fc.LogPath != "" {
		s.Log.Path = fc.LogPath
	}

	if err := c.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
