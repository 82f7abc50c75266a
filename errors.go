package pathcore

import (
	"errors"
	"fmt"
)

// Sentinel errors for decode and encode failures. Structured errors
// below match these via errors.Is while carrying extra context for
// errors.As.
var (
	// ErrMissingSentinel indicates the input has no "endData" line.
	ErrMissingSentinel = errors.New(`pathcore: missing "endData" sentinel`)

	// ErrInvalidMaxSpeed indicates the max speed line is not a finite number.
	ErrInvalidMaxSpeed = errors.New("pathcore: invalid max speed")

	// ErrMalformedSplineLine indicates a spline line that does not follow
	// the format grammar. Use errors.As with *MalformedLineError to
	// recover the line number.
	ErrMalformedSplineLine = errors.New("pathcore: malformed spline line")

	// ErrDiscontinuousPath indicates two adjacent splines that do not
	// share a boundary point. Use errors.As with *DiscontinuityError to
	// recover the offending coordinates.
	ErrDiscontinuousPath = errors.New("pathcore: discontinuous path")

	// ErrInvalidSplineShape indicates a spline built from a control point
	// count other than 2 or 4.
	ErrInvalidSplineShape = errors.New("pathcore: invalid spline shape")

	// ErrEmptyPath indicates an export was requested with no path at all.
	ErrEmptyPath = errors.New("pathcore: no path to export")

	// ErrNoSplines indicates a path that contains no splines. Kept
	// distinct from ErrEmptyPath: one means "nothing selected", the
	// other "selected but empty".
	ErrNoSplines = errors.New("pathcore: path contains no splines")

	// ErrNoDocument indicates the input carries no embedded document
	// payload to recover.
	ErrNoDocument = errors.New("pathcore: no embedded document payload")
)

// MalformedLineError reports a spline line that does not follow the
// format grammar. Line is the 1-based line number in the input.
type MalformedLineError struct {
	Line   int
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("pathcore: malformed spline line %d: %s", e.Line, e.Reason)
}

// Is reports that a MalformedLineError matches ErrMalformedSplineLine.
func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedSplineLine
}

// DiscontinuityError reports two adjacent splines whose shared boundary
// point differs by more than the format's rounding resolution. Got is
// the first point of the appended spline, Want the last point of the
// spline before it. Line is the 1-based line number when the violation
// was found during decoding, 0 otherwise.
type DiscontinuityError struct {
	Line      int
	Got, Want Point
}

func (e *DiscontinuityError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("pathcore: discontinuous path at line %d: spline starts at (%g, %g), want (%g, %g)",
			e.Line, e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
	}
	return fmt.Sprintf("pathcore: discontinuous path: spline starts at (%g, %g), want (%g, %g)",
		e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}

// Is reports that a DiscontinuityError matches ErrDiscontinuousPath.
func (e *DiscontinuityError) Is(target error) bool {
	return target == ErrDiscontinuousPath
}

// SplineShapeError reports a spline construction attempt with a control
// point count other than 2 or 4.
type SplineShapeError struct {
	Controls int
}

func (e *SplineShapeError) Error() string {
	return fmt.Sprintf("pathcore: invalid spline shape: %d control points, want 2 or 4", e.Controls)
}

// Is reports that a SplineShapeError matches ErrInvalidSplineShape.
func (e *SplineShapeError) Is(target error) bool {
	return target == ErrInvalidSplineShape
}
