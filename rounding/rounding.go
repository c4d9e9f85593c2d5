/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package rounding defines the rounding modes applied when an exact rational
// byte quantity must be reduced to a whole number of some unit, together with
// the integer rounding primitive shared by conversion and formatting.
package rounding

import (
	"math/big"
	"strings"

	"github.com/sizekit/sizekit/commonerrors"
)

// Mode selects how a fractional amount is resolved to an integer. The zero
// value is Exact: no rounding takes place and operations that would have to
// discard precision fail instead.
type Mode int

const (
	// Exact performs no rounding; values that are not already whole are
	// reported as such rather than approximated.
	Exact Mode = iota
	// Down rounds toward zero (truncation).
	Down
	// Up rounds away from zero.
	Up
	// HalfEven rounds to the nearest integer, resolving ties to the even
	// neighbour (banker's rounding).
	HalfEven
	// HalfAwayFromZero rounds to the nearest integer, resolving ties away
	// from zero.
	HalfAwayFromZero
)

// Modes returns every supported rounding mode.
func Modes() []Mode {
	return []Mode{Exact, Down, Up, HalfEven, HalfAwayFromZero}
}

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Down:
		return "down"
	case Up:
		return "up"
	case HalfEven:
		return "half-even"
	case HalfAwayFromZero:
		return "half-away-from-zero"
	}
	return "unknown"
}

// Validate states whether the mode is one of the supported modes.
func (m Mode) Validate() error {
	switch m {
	case Exact, Down, Up, HalfEven, HalfAwayFromZero:
		return nil
	}
	return commonerrors.Newf(commonerrors.ErrUnsupported, "rounding mode [%d]", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	err := m.Validate()
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrMarshalling, err, "cannot marshal rounding mode")
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseMode converts a textual mode name into a Mode. Matching is
// case-insensitive and tolerates underscores in place of hyphens.
func ParseMode(text string) (Mode, error) {
	normalised := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(text)), "_", "-")
	for _, mode := range Modes() {
		if normalised == mode.String() {
			return mode, nil
		}
	}
	return Exact, commonerrors.Newf(commonerrors.ErrUnsupported, "rounding mode '%v'", text)
}

// RoundToInt resolves an exact rational value to an integer according to the
// mode. Values that are already whole pass through unchanged whatever the
// mode; otherwise Exact fails with ErrUnsupported since rounding would lose
// precision.
func RoundToInt(value *big.Rat, mode Mode) (*big.Int, error) {
	if value == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "no value provided")
	}
	err := mode.Validate()
	if err != nil {
		return nil, err
	}
	quo, rem := new(big.Int).QuoRem(value.Num(), value.Denom(), new(big.Int))
	if rem.Sign() == 0 {
		return quo, nil
	}
	switch mode {
	case Down:
		return quo, nil
	case Up:
		return stepAwayFromZero(quo, value.Sign()), nil
	case HalfEven, HalfAwayFromZero:
		twiceRem := rem.Abs(rem)
		twiceRem = twiceRem.Lsh(twiceRem, 1)
		switch twiceRem.Cmp(value.Denom()) {
		case -1:
			return quo, nil
		case 1:
			return stepAwayFromZero(quo, value.Sign()), nil
		}
		if mode == HalfAwayFromZero || quo.Bit(0) == 1 {
			return stepAwayFromZero(quo, value.Sign()), nil
		}
		return quo, nil
	}
	// Only Exact reaches this point.
	return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "value [%v] is not a whole number and cannot be rounded exactly", value.RatString())
}

func stepAwayFromZero(quo *big.Int, sign int) *big.Int {
	if sign < 0 {
		return quo.Sub(quo, big.NewInt(1))
	}
	return quo.Add(quo, big.NewInt(1))
}
