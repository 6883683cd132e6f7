package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRecordList marks a top-level value that is neither a list nor a nodes wrapper.
	ErrNotRecordList = errors.New("dataset is not a list of dictionaries")
	// ErrNonRecordElement marks a list element that is not an object.
	ErrNonRecordElement = errors.New("dataset contains non-dictionary elements")
)

// ParseError reports input that is not syntactically valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("input file is not valid JSON: %v", e.Err)
	}
	return fmt.Sprintf("input file %s is not valid JSON: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StructuralError reports a decoded dataset with the wrong shape.
// Index is the offending element position, or -1 for the top-level value.
type StructuralError struct {
	Index int
	Err   error
}

func (e *StructuralError) Error() string {
	if e.Index < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (element %d)", e.Err, e.Index)
}

func (e *StructuralError) Unwrap() error { return e.Err }
