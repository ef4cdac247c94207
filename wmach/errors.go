package wmach

import (
	"errors"
	"fmt"
)

var (
	// ErrParse wraps any lexing/grammar failure from the underlying
	// parser.
	ErrParse = errors.New("wmach: parse error")
	// ErrDuplicateLabel is returned when the same label is defined
	// twice in one program.
	ErrDuplicateLabel = errors.New("wmach: duplicate label")
	// ErrUnknownTarget is returned when a jmp references a label that
	// was never defined.
	ErrUnknownTarget = errors.New("wmach: unknown jump target")
)

type duplicateLabelError struct {
	label string
}

func (e *duplicateLabelError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateLabel, e.label)
}

func (e *duplicateLabelError) Unwrap() error {
	return ErrDuplicateLabel
}

type unknownTargetError struct {
	offset InsnOffset
	target string
}

func (e *unknownTargetError) Error() string {
	return fmt.Sprintf("%s: at instruction %d referenced %q", ErrUnknownTarget, e.offset, e.target)
}

func (e *unknownTargetError) Unwrap() error {
	return ErrUnknownTarget
}
