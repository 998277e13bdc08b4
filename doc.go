// Package lousa turns noisy freehand strokes into clean geometric
// primitives.
//
// # Overview
//
// lousa is a pure Go implementation of a stroke-to-shape pipeline for
// sketch surfaces: it takes the raw points of one pointer gesture,
// cleans them up, simplifies them with Ramer-Douglas-Peucker, and
// classifies the result as a line, circle, axis-aligned rectangle, or
// generic polyline. The library does no rendering and keeps no state
// across strokes; every call is a pure function of its points and
// tolerances.
//
// # Quick Start
//
//	import "github.com/Mathweuzz/lousa-rdp"
//
//	// Capture one gesture
//	st := lousa.NewStroke()
//	st.Append(lousa.Pt(0, 0), 0)
//	st.Append(lousa.Pt(48, 1), 40*time.Millisecond)
//	st.Append(lousa.Pt(100, 0), 90*time.Millisecond)
//
//	// Classify at release
//	res := st.Finalize(lousa.DefaultConfig())
//	if res.Kind == lousa.KindLine {
//	    line := res.Shape.(lousa.Line)
//	    fmt.Println(line.Start, line.End)
//	}
//
// # Pipeline
//
// The stages run in a fixed order and are each usable on their own:
//   - Preprocess: Dedupe, IsClosedPath, ClosePath, Resample
//   - Simplify: Ramer-Douglas-Peucker under a perpendicular-distance
//     tolerance
//   - Classify: line, circle, rect, polyline in strict priority order
//
// Recognize composes them; Recognizer adds a live-adjustable
// configuration on top.
//
// # Coordinate System
//
// Uses standard screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Logging
//
// The package is silent by default. Install a logger with SetLogger to
// get one Info record per classified stroke and Debug records for the
// intermediate stages.
package lousa

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
