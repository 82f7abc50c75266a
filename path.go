package pathcore

import (
	"encoding/json"
	"fmt"
	"slices"
)

// SpeedLimit describes the speed configuration of a path. MinLimit and
// MaxLimit are the hard bounds the target format can express; From and
// To are the authored range, with To being the path's maximum speed.
type SpeedLimit struct {
	MinLimit float64 `json:"minLimit"`
	MaxLimit float64 `json:"maxLimit"`
	From     float64 `json:"from"`
	To       float64 `json:"to"`
}

// Clamp bounds v into [MinLimit, MaxLimit].
func (l SpeedLimit) Clamp(v float64) float64 {
	if v < l.MinLimit {
		return l.MinLimit
	}
	if v > l.MaxLimit {
		return l.MaxLimit
	}
	return v
}

// GeneralConfig holds the per-path authoring configuration: the unit of
// length the control points are expressed in, and the arc-length spacing
// between sampled points.
type GeneralConfig struct {
	Unit         UnitOfLength `json:"unitOfLength"`
	PointDensity float64      `json:"pointDensity"`
}

// Path is an ordered, continuity-constrained sequence of splines plus
// its speed and general configuration. Adjacent splines must share a
// boundary point at the format's rounding resolution; Append enforces
// this and never silently corrects a violation.
type Path struct {
	Name string

	splines []Spline
	speed   SpeedLimit
	config  GeneralConfig
}

// NewPath creates a path from its configuration and an initial run of
// splines. The splines are appended in order under the continuity
// invariant; a path with no splines is valid for editing but cannot be
// encoded.
func NewPath(config GeneralConfig, speed SpeedLimit, splines ...Spline) (*Path, error) {
	p := &Path{Name: "Path", speed: speed, config: config}
	for _, s := range splines {
		if err := p.Append(s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Append adds a spline to the end of the path. The spline's first end
// point must coincide with the current last end point at the format's
// rounding resolution; otherwise Append fails with a DiscontinuityError
// carrying both coordinates.
func (p *Path) Append(s Spline) error {
	if n := len(p.splines); n > 0 {
		prev := p.splines[n-1].Last().Point
		next := s.First().Point
		if !coincide(prev, next) {
			return &DiscontinuityError{Got: next, Want: prev}
		}
	}
	p.splines = append(p.splines, s)
	return nil
}

// Splines returns a copy of the path's splines in order. Mutating the
// returned slice cannot break the continuity invariant Append enforces.
func (p *Path) Splines() []Spline {
	return slices.Clone(p.splines)
}

// Config returns the path's general configuration.
func (p *Path) Config() GeneralConfig {
	return p.config
}

// SpeedLimit returns the path's speed configuration.
func (p *Path) SpeedLimit() SpeedLimit {
	return p.speed
}

// coincide reports whether two points are equal at the format's
// 3-decimal rounding resolution.
func coincide(a, b Point) bool {
	return fixPrecision(a.X, formatPrecision) == fixPrecision(b.X, formatPrecision) &&
		fixPrecision(a.Y, formatPrecision) == fixPrecision(b.Y, formatPrecision)
}

// pathJSON is the wire form of a Path for the embedded document payload.
type pathJSON struct {
	Name       string        `json:"name"`
	Splines    []Spline      `json:"splines"`
	SpeedLimit SpeedLimit    `json:"speedLimit"`
	Config     GeneralConfig `json:"generalConfig"`
}

// MarshalJSON encodes the path with full fidelity, including fields the
// line-oriented formats cannot express.
func (p *Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(pathJSON{
		Name:       p.Name,
		Splines:    p.splines,
		SpeedLimit: p.speed,
		Config:     p.config,
	})
}

// UnmarshalJSON decodes a path payload, re-validating the continuity
// invariant across its splines.
func (p *Path) UnmarshalJSON(data []byte) error {
	var raw pathJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pathcore: invalid path payload: %w", err)
	}
	rebuilt, err := NewPath(raw.Config, raw.SpeedLimit, raw.Splines...)
	if err != nil {
		return err
	}
	rebuilt.Name = raw.Name
	*p = *rebuilt
	return nil
}
