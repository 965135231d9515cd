package essence

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by essence and its sub-packages wraps
// one of these, so callers can test with errors.Is.
var (
	// ErrIndex is wrapped by IndexError.
	ErrIndex = errors.New("essence: index out of range")

	// ErrConversion is wrapped by ConversionError.
	ErrConversion = errors.New("essence: conversion not supported")

	// ErrDegenerate is wrapped by DegenerateInputError.
	ErrDegenerate = errors.New("essence: degenerate input")

	// ErrParse is wrapped by ParseError.
	ErrParse = errors.New("essence: malformed input")
)

// IndexError reports a component index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("essence: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndex }

// ConversionError reports a tuple conversion that cannot be performed.
type ConversionError struct {
	From   Shape
	To     Shape
	Reason string
}

func (e *ConversionError) Error() string {
	if !e.From.Valid() {
		return fmt.Sprintf("essence: cannot convert to %v: %s", e.To, e.Reason)
	}
	return fmt.Sprintf("essence: cannot convert %v to %v: %s", e.From, e.To, e.Reason)
}

func (e *ConversionError) Unwrap() error { return ErrConversion }

// DegenerateInputError reports geometry for which an operation is undefined:
// zero-length vectors, coincident defining points, parallel axes, singular
// transforms.
type DegenerateInputError struct {
	Op     string
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("essence: %s: %s", e.Op, e.Reason)
}

func (e *DegenerateInputError) Unwrap() error { return ErrDegenerate }

// Degenerate returns a DegenerateInputError for op and logs the rejection at
// debug level.
func Degenerate(op, reason string) error {
	Logger().Debug("essence: degenerate input", "op", op, "reason", reason)
	return &DegenerateInputError{Op: op, Reason: reason}
}

// ParseError reports text that does not match the tuple grammar.
type ParseError struct {
	Input string
	Shape Shape
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("essence: parse %v from %q: %v", e.Shape, e.Input, e.Err)
	}
	return fmt.Sprintf("essence: parse %v from %q", e.Shape, e.Input)
}

// Unwrap exposes both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}
