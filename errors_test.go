package unbusy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorDiagnostics(t *testing.T) {
	t.Parallel()

	// Every error kind renders a single-line diagnostic with its context.
	assert.EqualError(t, &RollError{Roll: 1000181}, "invalid roll: 1000181")

	assert.EqualError(t,
		&CourseError{Department: DeptEEE, Code: "EEE 9999"},
		`no course "EEE 9999" available for EEE`)
	assert.EqualError(t,
		&CourseError{Department: DeptCSE},
		"no course available for CSE")

	assert.EqualError(t,
		&SpanError{From: NewDate(2021, time.January, 2), To: NewDate(2020, time.December, 20)},
		"holiday span starts 2021-01-02 after it ends 2020-12-20")

	assert.EqualError(t,
		&InvariantError{Message: "invalid roll in department: 181"},
		"invariant violated: invalid roll in department: 181")
}
