package roster

import "errors"

// MaxStudents bounds a class read from input.
const MaxStudents = 10000

var (
	ErrBadCount      = errors.New("roster: student count must be an integer from 0 to 10000")
	ErrBadStandard   = errors.New("roster: standard must be an integer")
	ErrTrailingInput = errors.New("roster: unexpected input after standard")
)
