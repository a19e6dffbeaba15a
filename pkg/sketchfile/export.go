package sketchfile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ha1tch/sketchpad/pkg/sketch"
)

// Format is an export file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want png or svg)", s)
}

// FormatForPath picks the format from a file extension. Anything but .svg
// is PNG.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatPNG
}

// Render draws one frame of st in the given format and writes it to w.
// st is cloned so its own label backend is left alone.
func Render(w io.Writer, st *sketch.State, cfg sketch.Config, f Format) error {
	switch f {
	case FormatSVG:
		svg := NewSVG(DefaultSVGOptions(cfg))
		sketch.RenderFrame(svg, st.Clone(svg), cfg)
		return svg.Encode(w)
	case FormatPNG:
		r, err := NewRaster(DefaultRasterOptions(cfg))
		if err != nil {
			return err
		}
		defer r.Close()
		sketch.RenderFrame(r, st.Clone(r), cfg)
		return r.EncodePNG(w)
	}
	return fmt.Errorf("unknown export format %q", f)
}
