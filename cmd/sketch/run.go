package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ha1tch/sketchpad/pkg/sketch"
	"github.com/ha1tch/sketchpad/pkg/xlog"
)

const runHelp = `Commands:
  click <x> <y>  - Click at device coordinates (add or remove a point)
  r | t | h      - Reset, toggle test overlay, toggle labels
  points         - List points with their labels
  status         - Show point count and modes
  render <file>  - Render the current frame to PNG or SVG
  quit           - Exit
`

// cmdRun drives one sketch session from line commands, the way the
// sketchpad's input handlers would.
func cmdRun(args []string, in io.Reader, out io.Writer) error {
	const use = "sketch run [--origin x,y] [--radius r]"
	cfg := sketch.DefaultConfig()
	var origin sketch.Origin

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			return usageError(use)
		case "--origin":
			if i+1 >= len(args) {
				return usageError(use)
			}
			p, err := parsePoint(args[i+1])
			if err != nil {
				return err
			}
			origin = sketch.Origin{X: p.X, Y: p.Y}
			i++
		case "--radius":
			if i+1 >= len(args) {
				return usageError(use)
			}
			r, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return fmt.Errorf("bad radius %q: %w", args[i+1], err)
			}
			cfg.HitRadius = r
			i++
		default:
			return usageError(use)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st := sketch.NewState(nil)
	log := xlog.Write().Named("run")
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch cmd := fields[0]; cmd {
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprint(out, runHelp)
		case "click":
			if len(fields) != 3 {
				fmt.Fprintln(out, "Error: click <x> <y>")
				continue
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			if errX != nil || errY != nil {
				fmt.Fprintf(out, "Error: bad coordinates %s %s\n", fields[1], fields[2])
				continue
			}
			e := st.Click(sketch.Pt(x, y), origin, cfg.HitThreshold())
			if e.Added {
				fmt.Fprintf(out, "Added %d\n", e.Index)
			} else {
				fmt.Fprintf(out, "Removed %d\n", e.Index)
			}
			log.Debug("click", zap.Float64("x", x), zap.Float64("y", y), zap.Bool("added", e.Added), zap.Int("index", e.Index))
		case "r", "t", "h":
			a := st.HandleKey(rune(cmd[0]))
			fmt.Fprintln(out, a)
		case "points":
			printPoints(out, st)
		case "status":
			printStatus(out, st)
		case "render":
			if len(fields) != 2 {
				fmt.Fprintln(out, "Error: render <file>")
				continue
			}
			if err := writeFrame(fields[1], st, cfg); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Written: %s\n", fields[1])
		default:
			fmt.Fprintf(out, "Unknown command: %s\n", cmd)
		}
	}
	return scanner.Err()
}

func printPoints(out io.Writer, st *sketch.State) {
	if st.Store.Len() == 0 {
		fmt.Fprintln(out, "No points")
		return
	}
	for i := 0; i < st.Store.Len(); i++ {
		p := st.Store.At(i)
		fmt.Fprintf(out, "  %d: %s,%s\n", st.Store.Label(i), formatFloat(p.Pos.X), formatFloat(p.Pos.Y))
	}
}

func printStatus(out io.Writer, st *sketch.State) {
	overlay, labels := "off", "shown"
	if st.TestOverlay {
		overlay = "on"
	}
	if st.LabelsHidden {
		labels = "hidden"
	}
	fmt.Fprintf(out, "Points: %d, overlay %s, labels %s\n", st.Store.Len(), overlay, labels)
}
