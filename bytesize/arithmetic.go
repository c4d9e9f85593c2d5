/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytesize

import (
	"math/big"

	"github.com/sizekit/sizekit/commonerrors"
)

// Add returns s + o exactly.
func (s Size) Add(o Size) Size {
	return Size{value: new(big.Rat).Add(s.rat(), o.rat())}
}

// Sub returns s - o exactly.
func (s Size) Sub(o Size) Size {
	return Size{value: new(big.Rat).Sub(s.rat(), o.rat())}
}

// Neg returns the size with its sign flipped.
func (s Size) Neg() Size {
	return Size{value: new(big.Rat).Neg(s.rat())}
}

// Abs returns the size with a non-negative sign.
func (s Size) Abs() Size {
	return Size{value: new(big.Rat).Abs(s.rat())}
}

// Mul returns s scaled by a dimensionless number. Multiplying two sizes is
// meaningless (bytes squared) and fails with ErrInvalidOperation.
func (s Size) Mul(n any) (Size, error) {
	scalar, err := toRat(n)
	if err != nil {
		return Size{}, err
	}
	return Size{value: scalar.Mul(scalar, s.rat())}, nil
}

// Div returns s divided by a dimensionless number. A zero divisor fails with
// ErrDivisionByZero; dividing by another size is the job of Ratio.
func (s Size) Div(n any) (Size, error) {
	scalar, err := toRat(n)
	if err != nil {
		return Size{}, err
	}
	if scalar.Sign() == 0 {
		return Size{}, commonerrors.New(commonerrors.ErrDivisionByZero, "cannot divide a size by zero")
	}
	return Size{value: scalar.Quo(s.rat(), scalar)}, nil
}

// Ratio returns the exact dimensionless ratio s / o. A zero denominator
// fails with ErrDivisionByZero.
func (s Size) Ratio(o Size) (*big.Rat, error) {
	if o.IsZero() {
		return nil, commonerrors.New(commonerrors.ErrDivisionByZero, "cannot take the ratio to a zero size")
	}
	return new(big.Rat).Quo(s.rat(), o.rat()), nil
}

// FloorDiv returns the floored dimensionless quotient s / o, i.e. the
// largest integer not above the exact ratio.
func (s Size) FloorDiv(o Size) (*big.Int, error) {
	ratio, err := s.Ratio(o)
	if err != nil {
		return nil, err
	}
	return floorRat(ratio), nil
}

// Mod returns the remainder of the floored division s / o. The remainder is
// zero or carries the sign of o, and s = o*FloorDiv(o) + Mod(o) holds
// exactly.
func (s Size) Mod(o Size) (Size, error) {
	_, remainder, err := s.DivMod(o)
	return remainder, err
}

// DivMod returns the floored quotient and the remainder of s / o in a single
// call.
func (s Size) DivMod(o Size) (*big.Int, Size, error) {
	quotient, err := s.FloorDiv(o)
	if err != nil {
		return nil, Size{}, err
	}
	rounded := new(big.Rat).SetInt(quotient)
	rounded.Mul(rounded, o.rat())
	return quotient, Size{value: rounded.Sub(s.rat(), rounded)}, nil
}

// FloorDivScalar returns the size floor-divided by a dimensionless number:
// the largest whole number of bytes not above the exact quotient.
func (s Size) FloorDivScalar(n any) (Size, error) {
	quotient, err := s.Div(n)
	if err != nil {
		return Size{}, err
	}
	return Size{value: new(big.Rat).SetInt(floorRat(quotient.rat()))}, nil
}

// ModScalar returns the remainder of the floored division of the size by a
// dimensionless number, as a size.
func (s Size) ModScalar(n any) (Size, error) {
	_, remainder, err := s.DivModScalar(n)
	return remainder, err
}

// DivModScalar returns the floored quotient and the remainder of the size
// divided by a dimensionless number, both as sizes.
func (s Size) DivModScalar(n any) (Size, Size, error) {
	quotient, err := s.FloorDivScalar(n)
	if err != nil {
		return Size{}, Size{}, err
	}
	scalar, err := toRat(n)
	if err != nil {
		return Size{}, Size{}, err
	}
	remainder := scalar.Mul(scalar, quotient.rat())
	return quotient, Size{value: remainder.Sub(s.rat(), remainder)}, nil
}

// floorRat returns the largest integer not above r. Denominators are
// normalised positive so Euclidean division is a floor.
func floorRat(r *big.Rat) *big.Int {
	return new(big.Int).Div(r.Num(), r.Denom())
}
