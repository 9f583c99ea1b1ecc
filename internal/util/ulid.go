package util

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID returns a new ULID string. ulid.Make draws from a process-wide
// monotonic entropy source, so ids minted in the same millisecond still sort.
func NewULID() string {
	return ulid.Make().String()
}

// ULIDTime extracts the creation time encoded in a ULID.
func ULIDTime(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}

// IsULID reports whether s is a canonical 26-character ULID.
func IsULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
