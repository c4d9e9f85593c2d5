/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package bytesize implements exact quantities of digital storage. A Size is
// an immutable arbitrary-precision rational number of bytes: arithmetic,
// comparison, unit conversion and parsing/formatting never go through
// floating point, so no precision is ever lost silently. Rounding happens
// only where a caller explicitly asks for it with a rounding mode.
package bytesize

import (
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/sizekit/sizekit/commonerrors"
	"github.com/sizekit/sizekit/units"
)

// Size is an exact, possibly negative, possibly fractional number of bytes.
// The zero value is 0 B and ready to use. Sizes are immutable: every
// operation returns a new Size and accessors return copies. Compare sizes
// with Equal or Cmp, not with ==.
type Size struct {
	value *big.Rat
}

var zeroRat = new(big.Rat)

// rat returns the underlying rational. It must be treated as read-only.
func (s Size) rat() *big.Rat {
	if s.value == nil {
		return zeroRat
	}
	return s.value
}

// FromBytes returns the size counting n whole bytes.
func FromBytes[T constraints.Integer](n T) Size {
	count := new(big.Int)
	if n >= 0 {
		count.SetUint64(uint64(n))
	} else {
		count.SetInt64(int64(n))
	}
	return Size{value: new(big.Rat).SetInt(count)}
}

// FromBigInt returns the size counting n whole bytes.
func FromBigInt(n *big.Int) (Size, error) {
	if n == nil {
		return Size{}, commonerrors.New(commonerrors.ErrUndefined, "no byte count provided")
	}
	return Size{value: new(big.Rat).SetInt(n)}, nil
}

// FromRat returns the size of exactly r bytes.
func FromRat(r *big.Rat) (Size, error) {
	if r == nil {
		return Size{}, commonerrors.New(commonerrors.ErrUndefined, "no byte count provided")
	}
	return Size{value: new(big.Rat).Set(r)}, nil
}

// FromFloat64 returns the size of the exact binary value of f. NaN and the
// infinities have no rational value and fail with ErrInvalidSize.
func FromFloat64(f float64) (Size, error) {
	value := new(big.Rat).SetFloat64(f)
	if value == nil {
		return Size{}, commonerrors.Newf(commonerrors.ErrInvalidSize, "[%v] is not a finite number", f)
	}
	return Size{value: value}, nil
}

// New returns the size of value units, e.g. New("1.5", units.GiB). The value
// may be any precise number: a Go integer, *big.Int, *big.Rat, or a numeric
// string (decimal, scientific or fraction notation). Floats are rejected
// with ErrInvalidSize as their precision is ambiguous; convert explicitly
// with FromFloat64 instead. A Size operand is rejected with
// ErrInvalidOperation since a size already carries its unit.
func New(value any, unit units.Unit) (Size, error) {
	magnitude, err := toRat(value)
	if err != nil {
		return Size{}, err
	}
	bytes := new(big.Rat).SetInt(unit.Factor())
	return Size{value: bytes.Mul(bytes, magnitude)}, nil
}

// toRat converts a precise numeric operand into a rational.
func toRat(value any) (*big.Rat, error) {
	switch v := value.(type) {
	case Size:
		return nil, commonerrors.New(commonerrors.ErrInvalidOperation, "a size is not a dimensionless number")
	case *Size:
		return nil, commonerrors.New(commonerrors.ErrInvalidOperation, "a size is not a dimensionless number")
	case *big.Rat:
		if v == nil {
			return nil, commonerrors.New(commonerrors.ErrUndefined, "no number provided")
		}
		return new(big.Rat).Set(v), nil
	case *big.Int:
		if v == nil {
			return nil, commonerrors.New(commonerrors.ErrUndefined, "no number provided")
		}
		return new(big.Rat).SetInt(v), nil
	case int:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int8:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int16:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int32:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int64:
		return new(big.Rat).SetInt64(v), nil
	case uint:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Rat).SetUint64(v), nil
	case string:
		numeral, err := parseNumeral(v)
		if err != nil {
			return nil, err
		}
		return numeral, nil
	case float32, float64:
		return nil, commonerrors.Newf(commonerrors.ErrInvalidSize, "float [%v] is not a precise number; convert with FromFloat64 if the binary value is intended", v)
	}
	return nil, commonerrors.Newf(commonerrors.ErrInvalid, "operand of type %T is not a precise number", value)
}

// Magnitude returns a copy of the exact byte count.
func (s Size) Magnitude() *big.Rat {
	return new(big.Rat).Set(s.rat())
}

// Sign returns -1, 0 or 1 depending on the sign of the size.
func (s Size) Sign() int {
	return s.rat().Sign()
}

// IsZero states whether the size is exactly zero bytes.
func (s Size) IsZero() bool {
	return s.rat().Sign() == 0
}

// IsNegative states whether the size is below zero.
func (s Size) IsNegative() bool {
	return s.rat().Sign() < 0
}

// IsWhole states whether the size is a whole number of bytes.
func (s Size) IsWhole() bool {
	return s.rat().IsInt()
}

// Trunc returns the whole byte count, fractions discarded toward zero.
func (s Size) Trunc() *big.Int {
	return new(big.Int).Quo(s.rat().Num(), s.rat().Denom())
}

// Int64 returns the whole byte count as an int64, fractions discarded toward
// zero. Counts beyond the int64 range fail with ErrOutOfRange.
func (s Size) Int64() (int64, error) {
	count := s.Trunc()
	if !count.IsInt64() {
		return 0, commonerrors.Newf(commonerrors.ErrOutOfRange, "[%v] bytes does not fit in an int64", count)
	}
	return count.Int64(), nil
}

// Uint64 returns the whole byte count as a uint64, fractions discarded
// toward zero. Negative sizes and counts beyond the uint64 range fail with
// ErrOutOfRange.
func (s Size) Uint64() (uint64, error) {
	count := s.Trunc()
	if !count.IsUint64() {
		return 0, commonerrors.Newf(commonerrors.ErrOutOfRange, "[%v] bytes does not fit in a uint64", count)
	}
	return count.Uint64(), nil
}
