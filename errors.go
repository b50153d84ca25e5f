package unbusy

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors carry their context and unwrap to one of
// these sentinels so that callers can classify failures with errors.Is.
var (
	// ErrParse is returned when textual input could not be interpreted as
	// the expected numeric or date form.
	ErrParse = errors.New("parse error")

	// ErrInvalidRoll is returned when an integer does not satisfy the Roll
	// construction invariants.
	ErrInvalidRoll = errors.New("invalid roll")

	// ErrCourseNotFound is returned when no course entry exists for a
	// (department, code) pair.
	ErrCourseNotFound = errors.New("course not found")

	// ErrInvalidSpan is returned for a multi-day holiday span whose start
	// date falls after its end date.
	ErrInvalidSpan = errors.New("invalid holiday span")

	// ErrInvariant is returned when a total function observes an impossible
	// input. It can only arise from values built outside the validated
	// constructors, such as the zero Roll.
	ErrInvariant = errors.New("invariant violated")
)

// RollError reports an integer that failed Roll construction.
type RollError struct {
	Roll uint32
}

func (e *RollError) Error() string { return fmt.Sprintf("invalid roll: %d", e.Roll) }

func (e *RollError) Unwrap() error { return ErrInvalidRoll }

// CourseError reports a course lookup miss. Code is empty when the
// department has no course table at all.
type CourseError struct {
	Department Department
	Code       string
}

func (e *CourseError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("no course available for %s", e.Department)
	}
	return fmt.Sprintf("no course %q available for %s", e.Code, e.Department)
}

func (e *CourseError) Unwrap() error { return ErrCourseNotFound }

// SpanError reports a multi-day holiday span that starts after it ends.
type SpanError struct {
	From Date
	To   Date
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("holiday span starts %s after it ends %s", e.From, e.To)
}

func (e *SpanError) Unwrap() error { return ErrInvalidSpan }

// InvariantError reports an impossible value observed by a total function.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string { return "invariant violated: " + e.Message }

func (e *InvariantError) Unwrap() error { return ErrInvariant }
