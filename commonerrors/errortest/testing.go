/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package errortest provides test assertions over the module's error
// vocabulary.
package errortest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sizekit/sizekit/commonerrors"
)

// AssertError asserts that the error matches one of the `expectedKinds`.
// This is a wrapper for commonerrors.Any.
func AssertError(t *testing.T, err error, expectedKinds ...error) bool {
	t.Helper()
	if commonerrors.Any(err, expectedKinds...) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Failed error assertion:\n actual: %v\n expected: %+v", err, expectedKinds))
}

// AssertErrorDescription asserts that the error description corresponds to one
// of the `expectedDescriptions`. This is a wrapper for
// commonerrors.CorrespondTo.
func AssertErrorDescription(t *testing.T, err error, expectedDescriptions ...string) bool {
	t.Helper()
	if commonerrors.CorrespondTo(err, expectedDescriptions...) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Failed error description assertion:\n actual: %v\n expected: %+v", err, expectedDescriptions))
}

// RequireError requires that the error matches one of the `expectedKinds`.
// This is a wrapper for commonerrors.Any.
func RequireError(t *testing.T, err error, expectedKinds ...error) {
	t.Helper()
	if commonerrors.Any(err, expectedKinds...) {
		return
	}
	t.FailNow()
}

// RequireErrorDescription requires that the error description corresponds to
// one of the `expectedDescriptions`. This is a wrapper for
// commonerrors.CorrespondTo.
func RequireErrorDescription(t *testing.T, err error, expectedDescriptions ...string) {
	t.Helper()
	if commonerrors.CorrespondTo(err, expectedDescriptions...) {
		return
	}
	t.FailNow()
}
