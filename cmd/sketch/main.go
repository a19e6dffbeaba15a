// Command sketch samples and renders Bézier curves from the command line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ha1tch/sketchpad/pkg/sketch"
	"github.com/ha1tch/sketchpad/pkg/sketchfile"
	"github.com/ha1tch/sketchpad/pkg/xlog"
)

const usage = `sketch - Bézier curve sketchpad tools

Usage:
  sketch <command> [options] <x,y>...

Commands:
  sample     Print curve samples, one "x y" per line
  render     Render one frame to PNG or SVG
  binomial   Print the binomial coefficient C(n, k)
  run        Drive a sketch session from commands on stdin

Global options:
  -v, --verbose   Log at debug level to stderr

Examples:
  sketch sample --step 0.1 0,0 50,-50 100,0
  sketch render -o curve.png --test 100,600 350,100 600,600
  sketch render -o curve.svg --hide-labels 100,600 350,100 600,600
  sketch binomial 10 4
  sketch run < session.txt

Use "sketch <command> -h" for more information about a command.
`

func main() {
	args, verbose := stripVerbose(os.Args[1:])
	conf := xlog.Conf{Mode: xlog.ModeStderr, Level: "warn"}
	if verbose {
		conf.Level = "debug"
	}
	xlog.Load(conf)
	defer xlog.Sync()

	if len(args) < 1 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := args[0]
	args = args[1:]

	var err error
	switch cmd {
	case "sample":
		err = cmdSample(args, os.Stdout)
	case "render":
		err = cmdRender(args, os.Stdout)
	case "binomial":
		err = cmdBinomial(args, os.Stdout)
	case "run":
		err = cmdRun(args, os.Stdin, os.Stdout)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}

	if err != nil {
		xlog.Write().Error("command failed", zap.String("command", cmd), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func stripVerbose(args []string) ([]string, bool) {
	out := args[:0:0]
	verbose := false
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			verbose = true
			continue
		}
		out = append(out, a)
	}
	return out, verbose
}

// usageError is returned for malformed command lines.
type usageError string

func (e usageError) Error() string { return "usage: " + string(e) }

func cmdSample(args []string, out io.Writer) error {
	const use = "sketch sample [--step s] <x,y>..."
	step := sketch.DefaultStep
	var rest []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			return usageError(use)
		case "--step":
			if i+1 >= len(args) {
				return usageError(use)
			}
			s, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return fmt.Errorf("bad step %q: %w", args[i+1], err)
			}
			step = s
			i++
		default:
			rest = append(rest, args[i])
		}
	}

	pts, err := parsePoints(rest)
	if err != nil {
		return err
	}
	if len(pts) < 2 {
		return usageError(use + " (at least two points)")
	}
	if !(step >= sketch.MinStep && step < 1) {
		return fmt.Errorf("step must be in [%g, 1), got %g", sketch.MinStep, step)
	}

	w := bufio.NewWriter(out)
	n := 0
	for p := range sketch.Evaluate(pts, step) {
		fmt.Fprintf(w, "%s %s\n", formatFloat(p.X), formatFloat(p.Y))
		n++
	}
	xlog.Write().Debug("sampled", zap.Int("points", len(pts)), zap.Int("samples", n), zap.Float64("step", step))
	return w.Flush()
}

func cmdRender(args []string, out io.Writer) error {
	const use = "sketch render [-o out.png|out.svg] [--test] [--resampled] [--hide-labels] [--width w] [--height h] [--step s] <x,y>..."
	cfg := sketch.DefaultConfig()
	output := "sketch.png"
	test, hide := false, false
	var rest []string

	intArg := func(i int, dst *int) error {
		if i+1 >= len(args) {
			return usageError(use)
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil {
			return fmt.Errorf("bad %s %q: %w", args[i], args[i+1], err)
		}
		*dst = n
		return nil
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			return usageError(use)
		case "-o", "--output":
			if i+1 >= len(args) {
				return usageError(use)
			}
			output = args[i+1]
			i++
		case "--test":
			test = true
		case "--resampled":
			cfg.Overlay = sketch.OverlayResampled
		case "--hide-labels":
			hide = true
		case "--width":
			if err := intArg(i, &cfg.CanvasWidth); err != nil {
				return err
			}
			i++
		case "--height":
			if err := intArg(i, &cfg.CanvasHeight); err != nil {
				return err
			}
			i++
		case "--step":
			if i+1 >= len(args) {
				return usageError(use)
			}
			s, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return fmt.Errorf("bad step %q: %w", args[i+1], err)
			}
			cfg.Step = s
			i++
		default:
			rest = append(rest, args[i])
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	pts, err := parsePoints(rest)
	if err != nil {
		return err
	}

	st := sketch.NewState(nil)
	for _, p := range pts {
		st.Store.Add(p)
	}
	if test {
		st.ToggleOverlay()
	}
	if hide {
		st.ToggleLabels()
	}

	if err := writeFrame(output, st, cfg); err != nil {
		return err
	}
	xlog.Write().Info("rendered", zap.String("path", output), zap.Int("points", len(pts)))
	fmt.Fprintf(out, "Written: %s\n", output)
	return nil
}

func writeFrame(path string, st *sketch.State, cfg sketch.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sketchfile.Render(f, st, cfg, sketchfile.FormatForPath(path)); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}

func cmdBinomial(args []string, out io.Writer) error {
	const use = "sketch binomial <n> <k>"
	if len(args) != 2 {
		return usageError(use)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad n %q: %w", args[0], err)
	}
	k, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad k %q: %w", args[1], err)
	}
	if n < 0 {
		return fmt.Errorf("n must be non-negative, got %d", n)
	}
	fmt.Fprintln(out, formatFloat(sketch.Binomial(n, k)))
	return nil
}

// parsePoints parses "x,y" arguments.
func parsePoints(args []string) ([]sketch.Point, error) {
	pts := make([]sketch.Point, 0, len(args))
	for _, a := range args {
		p, err := parsePoint(a)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func parsePoint(s string) (sketch.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return sketch.Point{}, fmt.Errorf("bad point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return sketch.Point{}, fmt.Errorf("bad point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return sketch.Point{}, fmt.Errorf("bad point %q: %w", s, err)
	}
	return sketch.Pt(x, y), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
