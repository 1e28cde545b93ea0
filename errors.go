package convexhull

import "fmt"

// PreconditionError reports that a caller violated a documented
// precondition of an operation, such as constructing an outline from
// fewer than four points or requesting an angle hull with an aperture
// outside the open interval (0°, 180°).
//
// PreconditionError values are returned, never panicked; they indicate
// misuse by the caller rather than a defect in the engine.
type PreconditionError struct {
	// Op names the operation whose precondition was violated.
	Op string

	// Reason describes the violated precondition.
	Reason string
}

// Error implements the error interface.
func (e PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Reason)
}

// InvariantError reports that an internal invariant of the engine failed
// at runtime. If the algorithms are correct this can never happen;
// InvariantError values are raised via panic and test suites assert
// their absence.
type InvariantError struct {
	// Op names the operation whose invariant failed.
	Op string

	// Reason describes the failed invariant.
	Reason string
}

// Error implements the error interface.
func (e InvariantError) Error() string {
	return fmt.Sprintf("%s: invariant failed: %s", e.Op, e.Reason)
}
