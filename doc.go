// Package pathcore is the path file codec and spline geometry engine
// behind the robot path editor.
//
// # Overview
//
// A path is an ordered, continuity-constrained sequence of cubic Bezier
// splines built from control points, together with its speed and unit
// configuration. pathcore converts paths to and from the LemLib v0.4
// line-oriented text format, byte-for-byte compatible with the motion
// consumer that reads it: geometric reconstruction on import, unit
// conversion, speed-limit encoding and the extrapolated stopping point
// on export.
//
// # Quick start
//
//	import "github.com/jerryio/pathcore"
//
//	f, _ := pathcore.FormatByName("LemLib v0.4")
//
//	// Import a path file.
//	path, err := f.Decode(data)
//
//	// Export it again.
//	out, err := f.Encode(pathcore.NewDocument(f.Name(), path))
//
// Exports append a trailing "#PATH.JERRYIO-DATA" payload carrying the
// full authoring document; DecodeDocument recovers it so round-trips
// keep headings, units and densities the LemLib grammar cannot express.
//
// # Architecture
//
// The package is a pure, synchronous transformation layer with no I/O:
//   - Geometry: Point, Control, EndPointControl, CubicBez
//   - Model: Spline, Path, SpeedLimit, GeneralConfig, UnitConverter
//   - Codec: the Format interface and the LemLib v0.4 implementation
//
// The editor UI, file persistence and HTTP transport live outside this
// package (see cmd/).
package pathcore
