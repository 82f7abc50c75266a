// Command pathconv converts robot path files: it decodes a LemLib v0.4
// file, optionally re-targets the unit of length or point density, and
// encodes it again.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/jerryio/pathcore"
)

func main() {
	var (
		in      = flag.String("in", "", "input path file (default stdin)")
		out     = flag.String("out", "", "output path file (default stdout)")
		unit    = flag.String("unit", "", "re-target unit of length (mm, cm, m, inch, ft)")
		density = flag.Float64("density", 0, "override point density, in the output unit")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		pathcore.SetLogger(slog.Default())
	}

	data, err := readInput(*in)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	format, ok := pathcore.FormatByName("LemLib v0.4")
	if !ok {
		log.Fatal("LemLib v0.4 format not registered")
	}

	doc, err := loadDocument(format, data)
	if err != nil {
		log.Fatalf("Failed to decode: %v", err)
	}

	if *unit != "" {
		target, ok := pathcore.ParseUnit(*unit)
		if !ok {
			log.Fatalf("Unknown unit %q", *unit)
		}
		for i, p := range doc.Paths {
			if p == nil {
				log.Fatalf("Document path %d is null", i)
			}
			converted, err := retarget(p, target, *density)
			if err != nil {
				log.Fatalf("Failed to convert path %q: %v", p.Name, err)
			}
			doc.Paths[i] = converted
		}
	}

	encoded, err := format.Encode(doc)
	if err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	if err := writeOutput(*out, encoded); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// loadDocument prefers the embedded full-fidelity payload when the input
// carries one, falling back to the plain format grammar.
func loadDocument(format pathcore.Format, data []byte) (*pathcore.Document, error) {
	if doc, err := pathcore.DecodeDocument(data); err == nil {
		return doc, nil
	}
	path, err := format.Decode(data)
	if err != nil {
		return nil, err
	}
	return pathcore.NewDocument(format.Name(), path), nil
}

// retarget rebuilds a path with every control point converted into the
// target unit. A non-zero density overrides the converted point density.
func retarget(p *pathcore.Path, unit pathcore.UnitOfLength, density float64) (*pathcore.Path, error) {
	conv := pathcore.NewUnitConverter(p.Config().Unit, unit)

	end := func(e pathcore.EndPointControl) pathcore.EndPointControl {
		return pathcore.NewEndPointControl(conv.FromAtoB(e.X), conv.FromAtoB(e.Y), e.Heading)
	}
	ctrl := func(pt pathcore.Point) pathcore.Control {
		return pathcore.NewControl(conv.FromAtoB(pt.X), conv.FromAtoB(pt.Y))
	}

	splines := make([]pathcore.Spline, 0, len(p.Splines()))
	for _, s := range p.Splines() {
		if s.IsLine() {
			splines = append(splines, pathcore.NewLineSpline(end(s.First()), end(s.Last())))
			continue
		}
		cubic := s.Cubic()
		splines = append(splines, pathcore.NewCubicSpline(
			end(s.First()), ctrl(cubic.P1), ctrl(cubic.P2), end(s.Last())))
	}

	cfg := p.Config()
	cfg.PointDensity = conv.FromAtoB(cfg.PointDensity)
	cfg.Unit = unit
	if density > 0 {
		cfg.PointDensity = density
	}

	converted, err := pathcore.NewPath(cfg, p.SpeedLimit(), splines...)
	if err != nil {
		return nil, err
	}
	converted.Name = p.Name
	return converted, nil
}

func readInput(name string) ([]byte, error) {
	if name == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func writeOutput(name string, data []byte) error {
	if name == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", name, len(data))
	return nil
}
