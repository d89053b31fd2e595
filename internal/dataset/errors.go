package dataset

import (
	"errors"
	"fmt"
)

// ErrNotLoaded indicates that no snapshot has been loaded successfully yet.
var ErrNotLoaded = errors.New("dataset: no snapshot loaded")

// ErrUnknownDataset indicates a lookup for a key that is not registered.
var ErrUnknownDataset = errors.New("dataset: unknown dataset")

// MissingFileError reports a declared input file that does not exist.
// The first missing file aborts the entire load; no partial dataset set
// is ever exposed.
type MissingFileError struct {
	Key  string // dataset key
	File string // file name as declared in the source
	Dir  string // directory the file was expected in
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("dataset %q: file %q not found in %s", e.Key, e.File, e.Dir)
}

// ParseError reports a malformed value in a source file.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
