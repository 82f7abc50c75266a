package pathcore

// Control is an interior control point of a spline. It shapes the curve
// but the robot never drives through it.
type Control struct {
	Point
}

// NewControl creates an interior control point.
func NewControl(x, y float64) Control {
	return Control{Point: Pt(x, y)}
}

// EndPointControl is a boundary control point of a spline. It carries
// the robot heading in degrees. Only end points may be shared between
// adjacent splines.
type EndPointControl struct {
	Control
	Heading float64
}

// NewEndPointControl creates a boundary control point with the given
// heading in degrees.
func NewEndPointControl(x, y, heading float64) EndPointControl {
	return EndPointControl{Control: NewControl(x, y), Heading: heading}
}
