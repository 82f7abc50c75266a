// Command pathview renders a robot path file to a PNG preview. It
// decodes the file, samples the path at its configured density and
// strokes the resulting polyline.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/jerryio/pathcore"
)

func main() {
	var (
		in     = flag.String("in", "", "input path file (default stdin)")
		out    = flag.String("out", "path.png", "output PNG file")
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		stroke = flag.Float64("stroke", 3, "stroke width in pixels")
	)
	flag.Parse()

	data, err := readInput(*in)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	format, ok := pathcore.FormatByName("LemLib v0.4")
	if !ok {
		log.Fatal("LemLib v0.4 format not registered")
	}
	path, err := format.Decode(data)
	if err != nil {
		log.Fatalf("Failed to decode: %v", err)
	}

	points, err := pathcore.DensitySampler{}.Sample(path)
	if err != nil {
		log.Fatalf("Failed to sample: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	project := fitToImage(points, *width, *height)
	strokePolyline(img, points, project, *stroke, color.RGBA{R: 0x1a, G: 0x73, B: 0xe8, A: 0xff})

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	log.Printf("Preview saved to %s (%d samples)", *out, len(points))
}

// fitToImage returns a projection from field coordinates to image
// coordinates: uniform scale, centered, 10% margin, y axis flipped.
func fitToImage(points []pathcore.SamplePoint, width, height int) func(pathcore.Point) (float32, float32) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	margin := 0.1
	scale := math.Min(
		float64(width)*(1-2*margin)/spanX,
		float64(height)*(1-2*margin)/spanY,
	)
	offsetX := (float64(width) - spanX*scale) / 2
	offsetY := (float64(height) - spanY*scale) / 2
	return func(p pathcore.Point) (float32, float32) {
		x := offsetX + (p.X-minX)*scale
		y := float64(height) - offsetY - (p.Y-minY)*scale
		return float32(x), float32(y)
	}
}

// strokePolyline fills one quad per segment. Good enough for a preview;
// joints are left unmitered.
func strokePolyline(img *image.RGBA, points []pathcore.SamplePoint, project func(pathcore.Point) (float32, float32), width float64, c color.Color) {
	bounds := img.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	half := float32(width / 2)

	for i := 1; i < len(points); i++ {
		ax, ay := project(points[i-1].Point)
		bx, by := project(points[i].Point)
		dx, dy := bx-ax, by-ay
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		// Perpendicular offset of half the stroke width.
		nx, ny := -dy/length*half, dx/length*half
		r.MoveTo(ax+nx, ay+ny)
		r.LineTo(bx+nx, by+ny)
		r.LineTo(bx-nx, by-ny)
		r.LineTo(ax-nx, ay-ny)
		r.ClosePath()
	}
	r.Draw(img, bounds, image.NewUniform(c), image.Point{})
}

func readInput(name string) ([]byte, error) {
	if name == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
