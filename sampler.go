package pathcore

import "math"

// SamplePoint is one dense sample along a path: a position plus the
// target speed at that position.
type SamplePoint struct {
	Point
	Speed float64
}

// PointSampler produces an ordered, finite sequence of speed-annotated
// samples along a path at the path's configured point density. Encoders
// treat the sampler as opaque; any implementation that yields the same
// sequence for the same path is interchangeable.
type PointSampler interface {
	Sample(p *Path) ([]SamplePoint, error)
}

// lengthTolerance bounds the arc-length estimation error when deciding
// how many samples a spline needs.
const lengthTolerance = 1e-3

// DensitySampler is the built-in PointSampler. It walks each spline in
// cubic form and emits one sample per point-density step of estimated
// arc length. The boundary point shared by adjacent splines is emitted
// once. Every sample carries the path's maximum speed; shaping a full
// kinematic profile is left to the downstream motion consumer.
type DensitySampler struct{}

// Sample implements PointSampler.
func (DensitySampler) Sample(p *Path) ([]SamplePoint, error) {
	splines := p.Splines()
	if len(splines) == 0 {
		return nil, ErrNoSplines
	}
	density := p.Config().PointDensity
	if density <= 0 {
		density = defaultPointDensity
	}
	speed := p.SpeedLimit().To

	var out []SamplePoint
	for i, s := range splines {
		cubic := s.Cubic()
		steps := int(math.Ceil(cubic.Length(lengthTolerance) / density))
		if steps < 1 {
			steps = 1
		}
		start := 0
		if i > 0 {
			start = 1
		}
		for k := start; k <= steps; k++ {
			t := float64(k) / float64(steps)
			out = append(out, SamplePoint{Point: cubic.Eval(t), Speed: speed})
		}
	}
	return out, nil
}
