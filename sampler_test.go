package pathcore

import (
	"errors"
	"math"
	"testing"
)

func TestDensitySampler_StraightLine(t *testing.T) {
	p, err := NewPath(testConfig(), testLimit(), lineSpline(0, 0, 10, 0))
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}

	points, err := DensitySampler{}.Sample(p)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	// 10 units of arc length at density 2 -> 5 steps -> 6 samples.
	if len(points) != 6 {
		t.Fatalf("len(points) = %d, want 6", len(points))
	}
	if !pointsEqual(points[0].Point, Pt(0, 0), epsilon) {
		t.Errorf("first sample = %v, want (0, 0)", points[0].Point)
	}
	if !pointsEqual(points[len(points)-1].Point, Pt(10, 0), epsilon) {
		t.Errorf("last sample = %v, want (10, 0)", points[len(points)-1].Point)
	}
	for i, pt := range points {
		if pt.Speed != 100 {
			t.Errorf("points[%d].Speed = %v, want 100", i, pt.Speed)
		}
		if math.Abs(pt.Y) > epsilon {
			t.Errorf("points[%d].Y = %v, want 0", i, pt.Y)
		}
		if i > 0 && points[i].X <= points[i-1].X {
			t.Errorf("points[%d].X = %v, not monotonically increasing", i, points[i].X)
		}
	}
}

func TestDensitySampler_SharedBoundaryEmittedOnce(t *testing.T) {
	p, err := NewPath(testConfig(), testLimit(),
		lineSpline(0, 0, 10, 0),
		lineSpline(10, 0, 20, 0),
	)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}

	points, err := DensitySampler{}.Sample(p)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	// 6 samples for the first spline, 5 more for the second: the shared
	// point (10, 0) appears exactly once.
	if len(points) != 11 {
		t.Fatalf("len(points) = %d, want 11", len(points))
	}
	seen := 0
	for _, pt := range points {
		if pointsEqual(pt.Point, Pt(10, 0), 1e-6) {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("boundary point emitted %d times, want 1", seen)
	}
}

func TestDensitySampler_DefaultDensity(t *testing.T) {
	cfg := testConfig()
	cfg.PointDensity = 0
	p, err := NewPath(cfg, testLimit(), lineSpline(0, 0, 10, 0))
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	points, err := DensitySampler{}.Sample(p)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(points) != 6 {
		t.Errorf("len(points) = %d, want 6 (default density 2)", len(points))
	}
}

func TestDensitySampler_EmptyPath(t *testing.T) {
	p, err := NewPath(testConfig(), testLimit())
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	if _, err := (DensitySampler{}).Sample(p); !errors.Is(err, ErrNoSplines) {
		t.Errorf("Sample error = %v, want ErrNoSplines", err)
	}
}

func TestDensitySampler_ShortSpline(t *testing.T) {
	// A spline shorter than the density still yields its two endpoints.
	p, err := NewPath(testConfig(), testLimit(), lineSpline(0, 0, 0.5, 0))
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	points, err := DensitySampler{}.Sample(p)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}
}
