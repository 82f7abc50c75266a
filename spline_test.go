package pathcore

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewSpline_Shape(t *testing.T) {
	first := NewEndPointControl(0, 0, 0)
	last := NewEndPointControl(10, 0, 0)

	tests := []struct {
		name     string
		interior []Control
		wantErr  bool
		controls int
	}{
		{name: "no interior controls", interior: nil, controls: 2},
		{name: "two interior controls", interior: []Control{NewControl(2, 2), NewControl(8, 2)}, controls: 4},
		{name: "one interior control", interior: []Control{NewControl(5, 5)}, wantErr: true},
		{name: "three interior controls", interior: []Control{NewControl(1, 1), NewControl(2, 2), NewControl(3, 3)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSpline(first, tt.interior, last)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSplineShape) {
					t.Fatalf("NewSpline error = %v, want ErrInvalidSplineShape", err)
				}
				var shapeErr *SplineShapeError
				if !errors.As(err, &shapeErr) {
					t.Fatalf("NewSpline error %v is not a *SplineShapeError", err)
				}
				if shapeErr.Controls != len(tt.interior)+2 {
					t.Errorf("SplineShapeError.Controls = %d, want %d", shapeErr.Controls, len(tt.interior)+2)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSpline failed: %v", err)
			}
			if got := len(s.Controls()); got != tt.controls {
				t.Errorf("len(Controls) = %d, want %d", got, tt.controls)
			}
		})
	}
}

func TestSpline_FirstLast(t *testing.T) {
	first := NewEndPointControl(0, 0, 45)
	last := NewEndPointControl(10, 5, 90)
	s := NewCubicSpline(first, NewControl(2, 2), NewControl(8, 2), last)

	if got := s.First(); got != first {
		t.Errorf("First = %v, want %v", got, first)
	}
	if got := s.Last(); got != last {
		t.Errorf("Last = %v, want %v", got, last)
	}
	if s.IsLine() {
		t.Error("cubic spline reported IsLine = true")
	}
}

func TestSpline_CubicLift(t *testing.T) {
	// A straight spline lifts to a cubic with the segment midpoint as
	// both interior controls.
	s := NewLineSpline(NewEndPointControl(0, 0, 0), NewEndPointControl(10, 0, 0))
	if !s.IsLine() {
		t.Fatal("line spline reported IsLine = false")
	}
	c := s.Cubic()
	if !pointsEqual(c.P0, Pt(0, 0), epsilon) || !pointsEqual(c.P3, Pt(10, 0), epsilon) {
		t.Errorf("Cubic endpoints = %v, %v, want (0,0), (10,0)", c.P0, c.P3)
	}
	if !pointsEqual(c.P1, Pt(5, 0), epsilon) || !pointsEqual(c.P2, Pt(5, 0), epsilon) {
		t.Errorf("Cubic interior = %v, %v, want midpoint (5,0) twice", c.P1, c.P2)
	}
}

func TestSpline_CubicPassthrough(t *testing.T) {
	s := NewCubicSpline(
		NewEndPointControl(0, 0, 0),
		NewControl(2, 4),
		NewControl(8, 4),
		NewEndPointControl(10, 0, 0),
	)
	c := s.Cubic()
	want := NewCubicBez(Pt(0, 0), Pt(2, 4), Pt(8, 4), Pt(10, 0))
	if c != want {
		t.Errorf("Cubic = %+v, want %+v", c, want)
	}
}

func TestSpline_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		s    Spline
	}{
		{
			name: "line spline with headings",
			s:    NewLineSpline(NewEndPointControl(0, 0, 45), NewEndPointControl(10, 0, 270)),
		},
		{
			name: "cubic spline",
			s: NewCubicSpline(
				NewEndPointControl(1.25, -3, 90),
				NewControl(2, 4),
				NewControl(8, 4),
				NewEndPointControl(10, 0, 180),
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.s)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			var got Spline
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if got.First() != tt.s.First() || got.Last() != tt.s.Last() {
				t.Errorf("round trip endpoints = %v/%v, want %v/%v",
					got.First(), got.Last(), tt.s.First(), tt.s.Last())
			}
			if got.IsLine() != tt.s.IsLine() {
				t.Errorf("round trip IsLine = %v, want %v", got.IsLine(), tt.s.IsLine())
			}
		})
	}
}

func TestSpline_UnmarshalInvalidShape(t *testing.T) {
	payload := `{"controls":[{"x":0,"y":0},{"x":5,"y":5},{"x":10,"y":10}]}`
	var s Spline
	err := json.Unmarshal([]byte(payload), &s)
	if !errors.Is(err, ErrInvalidSplineShape) {
		t.Fatalf("Unmarshal error = %v, want ErrInvalidSplineShape", err)
	}
}
