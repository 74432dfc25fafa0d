// Package boltzerrors contains generic errors returned throughout boltzctl.
// Command-level code matches on these types (via errors.As) to decide how a
// failure is reported to the operator.
//
// If multiple errors occur in some function (e.g., if several submissions in
// a batch fail), that function should return an error of type
// multierror.Error from package github.com/hashicorp/go-multierror that
// encapsulates those individual errors.
package boltzerrors

import (
	"fmt"
)

// ErrNotFound is a generic error to be returned whenever some resource isn't
// found. Type and Message are optional and are omitted from the error message
// if not provided.
type ErrNotFound struct {
	Type    string // Resource type, e.g., "input directory"
	Value   string // Resource name, e.g., "/data/inputs"
	Message string // An optional message to include in the error message
}

func (err *ErrNotFound) Error() (s string) {
	if err.Type != "" {
		s = fmt.Sprintf("resource %q of type %q does not exist", err.Value, err.Type)
	} else {
		s = fmt.Sprintf("resource %q does not exist", err.Value)
	}
	if err.Message != "" {
		return s + fmt.Sprintf("; %s", err.Message)
	}
	return s
}

// ErrInvalidArgument is a generic error to be returned on invalid argument.
// Message is optional and is omitted from the error message if not provided.
type ErrInvalidArgument struct {
	Name    string      // Name of the field referred to, e.g., "cpusPerTask"
	Value   interface{} // The invalid value that was provided
	Message string      // An optional message explaining why the value is invalid
}

func (err *ErrInvalidArgument) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %q is invalid for field %q", err.Value, err.Name)
	}
	return fmt.Sprintf("value %q is invalid for field %q; %s", err.Value, err.Name, err.Message)
}

// ErrNoInput indicates that input discovery found nothing to submit: the
// directory exists but contains no file with the expected suffix. It aborts
// a run before any job is submitted.
type ErrNoInput struct {
	Dir    string
	Suffix string
}

func (err *ErrNoInput) Error() string {
	return fmt.Sprintf("no input files matching *%s found in directory %q", err.Suffix, err.Dir)
}
