/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error vocabulary shared by every package
// of this module. Failures are reported as wrapped sentinel errors so that
// callers can branch on the error kind with errors.Is while still receiving
// a precise reason string.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSize states that a value cannot describe a finite quantity
	// of bytes, e.g. a NaN or an infinity leaking in from an upstream float.
	ErrInvalidSize = errors.New("invalid size")
	// ErrUnknownUnit states that a unit symbol is not part of the fixed
	// unit table.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrInvalidOperation states that an arithmetic combination has no
	// meaning in the byte-quantity domain, e.g. multiplying two sizes.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrDivisionByZero states that a division by a zero scalar or a zero
	// size was attempted.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrParsing states that a textual representation could not be decoded.
	ErrParsing = errors.New("parsing failure")

	ErrUndefined   = errors.New("undefined")
	ErrInvalid     = errors.New("invalid")
	ErrUnsupported = errors.New("unsupported")
	ErrOutOfRange  = errors.New("out of range")
	ErrMarshalling = errors.New("unserialisable")
)

// New returns an error of kind `kind` described by `description`.
func New(kind error, description string) error {
	return fmt.Errorf("%w: %v", kind, description)
}

// Newf returns an error of kind `kind` with a formatted description.
func Newf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %v", kind, fmt.Sprintf(format, args...))
}

// WrapError returns an error of kind `kind` caused by `cause`. Both the kind
// and the cause remain visible to errors.Is and errors.As.
func WrapError(kind error, cause error, description string) error {
	if cause == nil {
		return New(kind, description)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: %w", kind, cause)
	}
	return fmt.Errorf("%w: %v: %w", kind, description, cause)
}

// WrapErrorf is similar to WrapError but accepts a formatted description.
func WrapErrorf(kind error, cause error, format string, args ...any) error {
	return WrapError(kind, cause, fmt.Sprintf(format, args...))
}

// Any returns whether the target error matches any of the errors `err`.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None returns whether the target error matches none of the errors `err`.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the target error corresponds to one of the
// descriptions, i.e. whether its message contains one of them regardless of
// case.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	errStr := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(errStr, strings.ToLower(d)) {
			return true
		}
	}
	return false
}
