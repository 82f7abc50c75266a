package pathcore

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	lemlibSentinel  = "endData"
	lemlibSeparator = ", "

	// The format cannot express deceleration or multiplier values, so
	// exports carry this placeholder and imports discard the fields.
	lemlibPlaceholder = "200"

	// Speed bounds the format can express.
	lemlibMinSpeed float64 = 0
	lemlibMaxSpeed float64 = 127

	// Extra stopping distance, in inches, appended past the final sampled
	// point. The overrun smooths physical deceleration in the downstream
	// motion consumer.
	lemlibOverrunInches float64 = 20

	// Point spacing assumed for imported paths, in inches. The format
	// does not record the density it was sampled at.
	defaultPointDensity float64 = 2
)

// LemLibV04 implements the LemLib v0.4 path file format: a line-oriented
// text grammar of sampled trajectory points, an "endData" sentinel, a
// speed trailer and the spline control points, fixed to inches and
// 3-decimal precision. Exports additionally append an embedded document
// payload so the editor can round-trip what the grammar cannot express.
type LemLibV04 struct {
	sampler  PointSampler
	exporter DocumentExporter
}

// NewLemLibV04 creates the format with the given collaborators. A nil
// sampler falls back to DensitySampler, a nil exporter to JSONExporter.
func NewLemLibV04(sampler PointSampler, exporter DocumentExporter) *LemLibV04 {
	if sampler == nil {
		sampler = DensitySampler{}
	}
	if exporter == nil {
		exporter = JSONExporter{}
	}
	return &LemLibV04{sampler: sampler, exporter: exporter}
}

func init() {
	_ = RegisterFormat(NewLemLibV04(nil, nil))
}

// Name implements Format.
func (f *LemLibV04) Name() string {
	return "LemLib v0.4"
}

// Decode implements Format. It reconstructs the path from the spline
// control lines after the sentinel; the sampled point lines before it
// carry no information the control points do not.
func (f *LemLibV04) Decode(data []byte) (*Path, error) {
	lines := strings.Split(string(data), "\n")

	sentinel := -1
	for i, line := range lines {
		if line == lemlibSentinel {
			sentinel = i
			break
		}
	}
	if sentinel < 0 {
		return nil, ErrMissingSentinel
	}
	if sentinel+2 >= len(lines) {
		return nil, fmt.Errorf("%w: input truncated after sentinel", ErrInvalidMaxSpeed)
	}

	// Deceleration value: unsupported by this tool, discarded.
	if _, err := strconv.ParseFloat(strings.TrimSpace(lines[sentinel+1]), 64); err != nil {
		Logger().Warn("unreadable deceleration value", "line", sentinel+2, "value", lines[sentinel+1])
	}

	rawSpeed := strings.TrimSpace(lines[sentinel+2])
	maxSpeed, err := strconv.ParseFloat(rawSpeed, 64)
	if err != nil || math.IsNaN(maxSpeed) || math.IsInf(maxSpeed, 0) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMaxSpeed, rawSpeed)
	}
	limit := SpeedLimit{MinLimit: lemlibMinSpeed, MaxLimit: lemlibMaxSpeed}
	limit.To = limit.Clamp(fixPrecision(maxSpeed, formatPrecision))

	// Line sentinel+3 holds the multiplier value: unsupported, discarded.

	var path *Path
	// The final line of a well-formed file is empty and skipped. A file
	// missing it is still accepted; the scan simply stops one line short.
	for idx := sentinel + 4; idx <= len(lines)-2; idx++ {
		line := lines[idx]
		if strings.HasPrefix(line, "#") {
			continue
		}
		spline, err := parseLemLibSplineLine(line, idx+1)
		if err != nil {
			return nil, err
		}
		if path == nil {
			path, err = NewPath(GeneralConfig{Unit: UnitInch, PointDensity: defaultPointDensity}, limit, spline)
			if err != nil {
				return nil, err
			}
			continue
		}
		if err := appendDecoded(path, spline, idx+1); err != nil {
			return nil, err
		}
	}
	if path == nil {
		return nil, ErrNoSplines
	}

	Logger().Debug("decoded lemlib path",
		"lines", len(lines), "splines", len(path.Splines()), "maxSpeed", limit.To)
	return path, nil
}

// appendDecoded appends during decoding, stamping the 1-based line
// number onto any discontinuity so the caller can report where the file
// broke.
func appendDecoded(path *Path, s Spline, lineNo int) error {
	err := path.Append(s)
	if err != nil {
		var de *DiscontinuityError
		if errors.As(err, &de) {
			de.Line = lineNo
		}
	}
	return err
}

// parseLemLibSplineLine parses one 8-field control line into a cubic
// spline. The grammar cannot express headings, so both end points get
// heading 0.
func parseLemLibSplineLine(line string, lineNo int) (Spline, error) {
	tokens := strings.Split(line, lemlibSeparator)
	if len(tokens) != 8 {
		return Spline{}, &MalformedLineError{
			Line:   lineNo,
			Reason: fmt.Sprintf("expected 8 fields, got %d", len(tokens)),
		}
	}
	var vals [8]float64
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Spline{}, &MalformedLineError{
				Line:   lineNo,
				Reason: fmt.Sprintf("field %d: %q is not a number", i+1, tok),
			}
		}
		vals[i] = fixPrecision(v, formatPrecision)
	}
	first := NewEndPointControl(vals[0], vals[1], 0)
	c1 := NewControl(vals[2], vals[3])
	c2 := NewControl(vals[4], vals[5])
	last := NewEndPointControl(vals[6], vals[7], 0)
	return NewCubicSpline(first, c1, c2, last), nil
}

// Encode implements Format. The first path of the document is rendered;
// the format has no multi-path concept.
func (f *LemLibV04) Encode(doc *Document) ([]byte, error) {
	if doc == nil || len(doc.Paths) == 0 {
		return nil, ErrEmptyPath
	}
	path := doc.Paths[0]
	if path == nil {
		return nil, ErrEmptyPath
	}
	if len(path.Splines()) == 0 {
		return nil, ErrNoSplines
	}

	// The format is inch-fixed; when the path is authored in inches the
	// converter is the identity (up to precision fixing).
	conv := NewUnitConverter(path.Config().Unit, UnitInch)

	points, err := f.sampler.Sample(path)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for _, pt := range points {
		writeLemLibPoint(&b, conv.FromAtoB(pt.X), conv.FromAtoB(pt.Y), conv.FixPrecision(pt.Speed))
	}

	// Ghost point: extrapolated past the final sampled point, along the
	// direction of the final inter-point step, by that step plus a fixed
	// 20-inch overrun. The overrun is anchored on the sampled points,
	// not the last control point.
	if len(points) > 1 {
		last2 := points[len(points)-2].Point
		last1 := points[len(points)-1].Point
		ghost := last2.Interpolate(last1, last2.Distance(last1)+conv.FromBtoA(lemlibOverrunInches))
		writeLemLibPoint(&b, conv.FromAtoB(ghost.X), conv.FromAtoB(ghost.Y), 0)
	}

	b.WriteString(lemlibSentinel)
	b.WriteByte('\n')
	b.WriteString(lemlibPlaceholder) // deceleration
	b.WriteByte('\n')
	b.WriteString(formatNumber(path.SpeedLimit().To))
	b.WriteByte('\n')
	b.WriteString(lemlibPlaceholder) // multiplier
	b.WriteByte('\n')

	for _, s := range path.Splines() {
		cubic := s.Cubic()
		fields := make([]string, 0, 8)
		for _, p := range []Point{cubic.P0, cubic.P1, cubic.P2, cubic.P3} {
			fields = append(fields, formatNumber(conv.FromAtoB(p.X)), formatNumber(conv.FromAtoB(p.Y)))
		}
		b.WriteString(strings.Join(fields, lemlibSeparator))
		b.WriteByte('\n')
	}

	payload, err := f.exporter.Export(doc)
	if err != nil {
		return nil, fmt.Errorf("pathcore: document export failed: %w", err)
	}
	b.WriteString(documentPrefix)
	b.Write(payload)
	b.WriteByte('\n')

	Logger().Debug("encoded lemlib path",
		"points", len(points), "splines", len(path.Splines()))
	return []byte(b.String()), nil
}

func writeLemLibPoint(b *strings.Builder, x, y, speed float64) {
	b.WriteString(formatNumber(x))
	b.WriteString(lemlibSeparator)
	b.WriteString(formatNumber(y))
	b.WriteString(lemlibSeparator)
	b.WriteString(formatNumber(speed))
	b.WriteByte('\n')
}
