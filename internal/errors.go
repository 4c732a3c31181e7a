package internal

import (
	"errors"
	"fmt"
)

// Sentinel errors for bag path resolution.
var (
	// ErrPathNotFound is returned when the supplied bag path does not exist.
	ErrPathNotFound = errors.New("bag path does not exist")
	// ErrNoDataFile is returned when a bag directory contains no .db3 file.
	ErrNoDataFile = errors.New("no .db3 data file found")
	// ErrInvalidBagPath is returned when the path is neither a bag directory
	// nor a .db3 file.
	ErrInvalidBagPath = errors.New("not a ROS2 bag directory or .db3 file")
)

// BagError represents errors opening or reading a bag
type BagError struct {
	Dir string
	Op  string // "open", "metadata", "read", "decode"
	Err error
}

func (e *BagError) Error() string {
	return fmt.Sprintf("bag error: %s %s: %v", e.Op, e.Dir, e.Err)
}

func (e *BagError) Unwrap() error {
	return e.Err
}

// DecodeError represents a CDR deserialization failure for a single message
type DecodeError struct {
	Topic   string
	MsgType string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error [%s] %s: %v", e.Topic, e.MsgType, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
