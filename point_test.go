package pathcore

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, 2)); !pointsEqual(got, Pt(4, 6), epsilon) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := p.Sub(Pt(1, 2)); !pointsEqual(got, Pt(2, 2), epsilon) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := p.Mul(2); !pointsEqual(got, Pt(6, 8), epsilon) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := p.Div(2); !pointsEqual(got, Pt(1.5, 2), epsilon) {
		t.Errorf("Div = %v, want (1.5, 2)", got)
	}
}

func TestPoint_Distance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{name: "same point", p: Pt(1, 1), q: Pt(1, 1), want: 0},
		{name: "horizontal", p: Pt(0, 0), q: Pt(10, 0), want: 10},
		{name: "pythagorean", p: Pt(0, 0), q: Pt(3, 4), want: 5},
		{name: "negative coords", p: Pt(-3, -4), q: Pt(0, 0), want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Distance(tt.q); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPoint_Lerp(t *testing.T) {
	p, q := Pt(0, 0), Pt(10, 20)
	if got := p.Lerp(q, 0); !pointsEqual(got, p, epsilon) {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); !pointsEqual(got, q, epsilon) {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got := p.Lerp(q, 0.5); !pointsEqual(got, Pt(5, 10), epsilon) {
		t.Errorf("Lerp(0.5) = %v, want (5, 10)", got)
	}
}

func TestPoint_Interpolate(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		distance float64
		want     Point
	}{
		{name: "between", p: Pt(0, 0), q: Pt(10, 0), distance: 4, want: Pt(4, 0)},
		{name: "at target", p: Pt(0, 0), q: Pt(10, 0), distance: 10, want: Pt(10, 0)},
		{name: "beyond target", p: Pt(10, 0), q: Pt(14, 0), distance: 24, want: Pt(34, 0)},
		{name: "diagonal", p: Pt(0, 0), q: Pt(3, 4), distance: 10, want: Pt(6, 8)},
		{name: "coincident points", p: Pt(5, 5), q: Pt(5, 5), distance: 7, want: Pt(5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Interpolate(tt.q, tt.distance); !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("Interpolate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPoint_Midpoint(t *testing.T) {
	if got := Pt(0, 0).Midpoint(Pt(10, 0)); !pointsEqual(got, Pt(5, 0), epsilon) {
		t.Errorf("Midpoint = %v, want (5, 0)", got)
	}
	if got := Pt(-2, 3).Midpoint(Pt(4, -5)); !pointsEqual(got, Pt(1, -1), epsilon) {
		t.Errorf("Midpoint = %v, want (1, -1)", got)
	}
}
