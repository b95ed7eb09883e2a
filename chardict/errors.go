package chardict

import "errors"

// MaxEntries is the largest input batch a Dict can be built from.
const MaxEntries = 128

var (
	ErrTooManyEntries = errors.New("chardict: too many entries")
	ErrLengthMismatch = errors.New("chardict: keys and values differ in length")
)
