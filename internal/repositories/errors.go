package repositories

import "errors"

// ErrNotFound is returned when a lookup by ID matches no record. GORM and
// in-memory implementations both wrap it so callers can use errors.Is.
var ErrNotFound = errors.New("record not found")
