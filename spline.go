package pathcore

import (
	"encoding/json"
	"fmt"
)

// Spline is one segment of a path: a full cubic Bezier with two interior
// controls, or a degenerate straight segment with none. The first and
// last control points are always EndPointControls.
type Spline struct {
	first EndPointControl
	mid   []Control
	last  EndPointControl
}

// NewSpline creates a spline from a boundary pair and its interior
// controls. The interior must hold exactly 0 (straight segment) or
// 2 (cubic) controls; any other count fails with a SplineShapeError.
func NewSpline(first EndPointControl, interior []Control, last EndPointControl) (Spline, error) {
	if len(interior) != 0 && len(interior) != 2 {
		return Spline{}, &SplineShapeError{Controls: len(interior) + 2}
	}
	var mid []Control
	if len(interior) > 0 {
		mid = append(mid, interior...)
	}
	return Spline{first: first, mid: mid, last: last}, nil
}

// NewLineSpline creates a degenerate straight spline between two end points.
func NewLineSpline(first, last EndPointControl) Spline {
	return Spline{first: first, last: last}
}

// NewCubicSpline creates a full cubic spline from four control points.
func NewCubicSpline(first EndPointControl, c1, c2 Control, last EndPointControl) Spline {
	return Spline{first: first, mid: []Control{c1, c2}, last: last}
}

// First returns the spline's starting end point.
func (s Spline) First() EndPointControl {
	return s.first
}

// Last returns the spline's ending end point.
func (s Spline) Last() EndPointControl {
	return s.last
}

// IsLine reports whether the spline is a degenerate straight segment.
func (s Spline) IsLine() bool {
	return len(s.mid) == 0
}

// Controls returns the spline's control point positions in order.
// The result has 2 points for a straight segment, 4 for a cubic.
func (s Spline) Controls() []Point {
	points := make([]Point, 0, len(s.mid)+2)
	points = append(points, s.first.Point)
	for _, c := range s.mid {
		points = append(points, c.Point)
	}
	return append(points, s.last.Point)
}

// Cubic returns the cubic Bezier form of the spline. Straight segments
// are lifted using the segment midpoint as both interior controls,
// which encodes the line as a cubic with zero curvature.
func (s Spline) Cubic() CubicBez {
	if s.IsLine() {
		mid := s.first.Point.Midpoint(s.last.Point)
		return CubicBez{P0: s.first.Point, P1: mid, P2: mid, P3: s.last.Point}
	}
	return CubicBez{P0: s.first.Point, P1: s.mid[0].Point, P2: s.mid[1].Point, P3: s.last.Point}
}

// controlJSON is the wire form of one control point. Heading is present
// only on boundary points.
type controlJSON struct {
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Heading *float64 `json:"heading,omitempty"`
}

// MarshalJSON encodes the spline as an ordered control point array.
func (s Spline) MarshalJSON() ([]byte, error) {
	controls := make([]controlJSON, 0, len(s.mid)+2)
	firstHeading := s.first.Heading
	controls = append(controls, controlJSON{X: s.first.X, Y: s.first.Y, Heading: &firstHeading})
	for _, c := range s.mid {
		controls = append(controls, controlJSON{X: c.X, Y: c.Y})
	}
	lastHeading := s.last.Heading
	controls = append(controls, controlJSON{X: s.last.X, Y: s.last.Y, Heading: &lastHeading})
	return json.Marshal(struct {
		Controls []controlJSON `json:"controls"`
	}{Controls: controls})
}

// UnmarshalJSON decodes an ordered control point array, validating the
// spline shape.
func (s *Spline) UnmarshalJSON(data []byte) error {
	var raw struct {
		Controls []controlJSON `json:"controls"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pathcore: invalid spline payload: %w", err)
	}
	n := len(raw.Controls)
	if n != 2 && n != 4 {
		return &SplineShapeError{Controls: n}
	}
	heading := func(c controlJSON) float64 {
		if c.Heading != nil {
			return *c.Heading
		}
		return 0
	}
	first := NewEndPointControl(raw.Controls[0].X, raw.Controls[0].Y, heading(raw.Controls[0]))
	last := NewEndPointControl(raw.Controls[n-1].X, raw.Controls[n-1].Y, heading(raw.Controls[n-1]))
	if n == 2 {
		*s = NewLineSpline(first, last)
		return nil
	}
	c1 := NewControl(raw.Controls[1].X, raw.Controls[1].Y)
	c2 := NewControl(raw.Controls[2].X, raw.Controls[2].Y)
	*s = NewCubicSpline(first, c1, c2, last)
	return nil
}
