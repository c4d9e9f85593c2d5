/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package rounding

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizekit/sizekit/commonerrors"
	"github.com/sizekit/sizekit/commonerrors/errortest"
)

func TestRoundToInt(t *testing.T) {
	tests := []struct {
		name     string
		value    *big.Rat
		mode     Mode
		expected int64
	}{
		{name: "down truncates below half", value: big.NewRat(1536, 1024), mode: Down, expected: 1},
		{name: "up always steps", value: big.NewRat(1536, 1024), mode: Up, expected: 2},
		{name: "half-even above half", value: big.NewRat(1536, 1024), mode: HalfEven, expected: 2},
		{name: "half-away above half", value: big.NewRat(1536, 1024), mode: HalfAwayFromZero, expected: 2},
		{name: "half-even tie down to even", value: big.NewRat(5, 2), mode: HalfEven, expected: 2},
		{name: "half-even tie up to even", value: big.NewRat(7, 2), mode: HalfEven, expected: 4},
		{name: "half-away tie", value: big.NewRat(5, 2), mode: HalfAwayFromZero, expected: 3},
		{name: "half-even below half", value: big.NewRat(9, 4), mode: HalfEven, expected: 2},
		{name: "negative down toward zero", value: big.NewRat(-3, 2), mode: Down, expected: -1},
		{name: "negative up away from zero", value: big.NewRat(-3, 2), mode: Up, expected: -2},
		{name: "negative half-even tie", value: big.NewRat(-5, 2), mode: HalfEven, expected: -2},
		{name: "negative half-away tie", value: big.NewRat(-5, 2), mode: HalfAwayFromZero, expected: -3},
		{name: "negative half-even above half", value: big.NewRat(-1536, 1024), mode: HalfEven, expected: -2},
		{name: "whole value passes through exact", value: big.NewRat(4096, 1024), mode: Exact, expected: 4},
		{name: "whole value passes through down", value: big.NewRat(-8, 2), mode: Down, expected: -4},
		{name: "zero", value: new(big.Rat), mode: HalfAwayFromZero, expected: 0},
		{name: "small fraction up", value: big.NewRat(1, 1000), mode: Up, expected: 1},
		{name: "small negative fraction down", value: big.NewRat(-1, 1000), mode: Down, expected: 0},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			rounded, err := RoundToInt(test.value, test.mode)
			require.NoError(t, err)
			assert.Equal(t, test.expected, rounded.Int64())
		})
	}
}

func TestRoundToIntDoesNotMutateInput(t *testing.T) {
	value := big.NewRat(2560, 1024)
	_, err := RoundToInt(value, HalfEven)
	require.NoError(t, err)
	assert.Equal(t, "5/2", value.RatString())
}

func TestRoundToIntErrors(t *testing.T) {
	_, err := RoundToInt(nil, Down)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)

	_, err = RoundToInt(big.NewRat(3, 2), Exact)
	errortest.AssertError(t, err, commonerrors.ErrUnsupported)

	_, err = RoundToInt(big.NewRat(1, 2), Mode(42))
	errortest.AssertError(t, err, commonerrors.ErrUnsupported)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		text     string
		expected Mode
	}{
		{text: "exact", expected: Exact},
		{text: "down", expected: Down},
		{text: "UP", expected: Up},
		{text: "Half-Even", expected: HalfEven},
		{text: "half_even", expected: HalfEven},
		{text: " half-away-from-zero ", expected: HalfAwayFromZero},
		{text: "HALF_AWAY_FROM_ZERO", expected: HalfAwayFromZero},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.text, func(t *testing.T) {
			mode, err := ParseMode(test.text)
			require.NoError(t, err)
			assert.Equal(t, test.expected, mode)
		})
	}
}

func TestParseModeUnknown(t *testing.T) {
	_, err := ParseMode("ceiling")
	errortest.AssertError(t, err, commonerrors.ErrUnsupported)
	_, err = ParseMode("")
	errortest.AssertError(t, err, commonerrors.ErrUnsupported)
}

func TestModeText(t *testing.T) {
	for _, mode := range Modes() {
		text, err := mode.MarshalText()
		require.NoError(t, err)
		var parsed Mode
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, mode, parsed)
	}

	_, err := Mode(42).MarshalText()
	errortest.AssertError(t, err, commonerrors.ErrMarshalling)

	var mode Mode
	errortest.AssertError(t, mode.UnmarshalText([]byte("nearest")), commonerrors.ErrUnsupported)
}

func TestModeValidate(t *testing.T) {
	for _, mode := range Modes() {
		assert.NoError(t, mode.Validate())
	}
	errortest.AssertError(t, Mode(-1).Validate(), commonerrors.ErrUnsupported)
	assert.Equal(t, "unknown", Mode(-1).String())
}
