package store

import "errors"

// ErrNotFound is returned when a referenced id has no record. Mongo's
// ErrNoDocuments is mapped to this at the store boundary so handlers never
// depend on driver errors.
var ErrNotFound = errors.New("record not found")
