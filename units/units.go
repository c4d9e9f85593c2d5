/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package units defines the fixed catalogue of storage units: the byte, the
// decimal (SI, 1000-based) prefixes kB through YB and the binary (IEC,
// 1024-based) prefixes KiB through YiB. The catalogue is built once at
// start-up, never mutated afterwards, and safe for unsynchronised concurrent
// use.
package units

import (
	"iter"
	"math/big"

	"github.com/sizekit/sizekit/commonerrors"
)

// Base identifies a unit family by its numeric radix.
type Base int

const (
	// IEC designates the binary family whose prefixes multiply by 1024.
	IEC Base = 2
	// SI designates the decimal family whose prefixes multiply by 1000.
	SI Base = 10
)

// MaxExponent is the largest prefix exponent of both ladders (yotta/yobi).
const MaxExponent = 8

// Ladder returns the multiplier between two consecutive exponents of the
// family, i.e. 1024 for IEC and 1000 for SI.
func (b Base) Ladder() (*big.Int, error) {
	switch b {
	case IEC:
		return big.NewInt(1024), nil
	case SI:
		return big.NewInt(1000), nil
	}
	return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "unit base [%d]", int(b))
}

func (b Base) String() string {
	switch b {
	case IEC:
		return "IEC"
	case SI:
		return "SI"
	}
	return "unknown"
}

// Unit describes one recognised storage unit. Units are plain comparable
// values; two units are the same unit if and only if they compare equal.
type Unit struct {
	symbol   string
	name     string
	base     Base
	exponent int
}

// Symbol returns the unit symbol, e.g. "KiB". Symbols are case-sensitive:
// "kB" is the decimal kilobyte whereas "KiB" is the binary kibibyte.
func (u Unit) Symbol() string {
	return u.symbol
}

// Name returns the full unit name, e.g. "kibibyte".
func (u Unit) Name() string {
	return u.name
}

// Base returns the family the unit belongs to. The byte belongs to both
// families and reports a zero Base.
func (u Unit) Base() Base {
	return u.base
}

// Exponent returns the position of the unit on its family's prefix ladder;
// the byte sits at exponent 0.
func (u Unit) Exponent() int {
	return u.exponent
}

// Factor returns the number of bytes per unit, i.e. ladder^exponent. The
// returned value is a fresh copy which the caller may freely mutate.
func (u Unit) Factor() *big.Int {
	if u.exponent == 0 {
		return big.NewInt(1)
	}
	ladder, err := u.base.Ladder()
	if err != nil {
		return big.NewInt(1)
	}
	return ladder.Exp(ladder, big.NewInt(int64(u.exponent)), nil)
}

// IsByte states whether the unit is the byte itself.
func (u Unit) IsByte() bool {
	return u.exponent == 0
}

func (u Unit) String() string {
	return u.symbol
}

// B is the byte, the exponent-0 unit shared by both families.
var B = Unit{symbol: "B", name: "byte"}

// Decimal (SI) units.
var (
	KB = Unit{symbol: "kB", name: "kilobyte", base: SI, exponent: 1}
	MB = Unit{symbol: "MB", name: "megabyte", base: SI, exponent: 2}
	GB = Unit{symbol: "GB", name: "gigabyte", base: SI, exponent: 3}
	TB = Unit{symbol: "TB", name: "terabyte", base: SI, exponent: 4}
	PB = Unit{symbol: "PB", name: "petabyte", base: SI, exponent: 5}
	EB = Unit{symbol: "EB", name: "exabyte", base: SI, exponent: 6}
	ZB = Unit{symbol: "ZB", name: "zettabyte", base: SI, exponent: 7}
	YB = Unit{symbol: "YB", name: "yottabyte", base: SI, exponent: 8}
)

// Binary (IEC) units.
var (
	KiB = Unit{symbol: "KiB", name: "kibibyte", base: IEC, exponent: 1}
	MiB = Unit{symbol: "MiB", name: "mebibyte", base: IEC, exponent: 2}
	GiB = Unit{symbol: "GiB", name: "gibibyte", base: IEC, exponent: 3}
	TiB = Unit{symbol: "TiB", name: "tebibyte", base: IEC, exponent: 4}
	PiB = Unit{symbol: "PiB", name: "pebibyte", base: IEC, exponent: 5}
	EiB = Unit{symbol: "EiB", name: "exbibyte", base: IEC, exponent: 6}
	ZiB = Unit{symbol: "ZiB", name: "zebibyte", base: IEC, exponent: 7}
	YiB = Unit{symbol: "YiB", name: "yobibyte", base: IEC, exponent: 8}
)

var (
	decimalFamily = [MaxExponent]Unit{KB, MB, GB, TB, PB, EB, ZB, YB}
	binaryFamily  = [MaxExponent]Unit{KiB, MiB, GiB, TiB, PiB, EiB, ZiB, YiB}
	bySymbol      = make(map[string]Unit, 2*MaxExponent+1)
)

func init() {
	bySymbol[B.symbol] = B
	for _, u := range decimalFamily {
		bySymbol[u.symbol] = u
	}
	for _, u := range binaryFamily {
		bySymbol[u.symbol] = u
	}
}

// ForBase returns a restartable sequence of the units of the requested
// family, ordered by ascending exponent and starting at the byte.
func ForBase(b Base) (iter.Seq[Unit], error) {
	var family *[MaxExponent]Unit
	switch b {
	case IEC:
		family = &binaryFamily
	case SI:
		family = &decimalFamily
	default:
		return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "unit base [%d]", int(b))
	}
	return func(yield func(Unit) bool) {
		if !yield(B) {
			return
		}
		for _, u := range family {
			if !yield(u) {
				return
			}
		}
	}, nil
}

// Decimal returns the byte followed by the SI units kB..YB.
func Decimal() iter.Seq[Unit] {
	seq, _ := ForBase(SI)
	return seq
}

// Binary returns the byte followed by the IEC units KiB..YiB.
func Binary() iter.Seq[Unit] {
	seq, _ := ForBase(IEC)
	return seq
}

// All returns every recognised unit: the byte, then the decimal family, then
// the binary family, each family in ascending exponent order.
func All() iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		if !yield(B) {
			return
		}
		for _, u := range decimalFamily {
			if !yield(u) {
				return
			}
		}
		for _, u := range binaryFamily {
			if !yield(u) {
				return
			}
		}
	}
}

// Symbols returns the symbols of every recognised unit, in All() order. It
// allows callers to validate or enumerate units without parsing.
func Symbols() []string {
	symbols := make([]string, 0, 2*MaxExponent+1)
	for u := range All() {
		symbols = append(symbols, u.symbol)
	}
	return symbols
}

// Lookup returns the unit whose symbol matches exactly, or fails with
// ErrUnknownUnit. Matching is case-sensitive so that the decimal "kB" and
// the binary "KiB" families cannot be confused.
func Lookup(symbol string) (Unit, error) {
	u, ok := bySymbol[symbol]
	if !ok {
		return Unit{}, commonerrors.Newf(commonerrors.ErrUnknownUnit, "symbol '%v' is not recognised", symbol)
	}
	return u, nil
}

// ForExponent returns the unit of the given family sitting at the given
// exponent. Exponent 0 returns the byte for either family.
func ForExponent(b Base, exponent int) (Unit, error) {
	if b != IEC && b != SI {
		return Unit{}, commonerrors.Newf(commonerrors.ErrUnsupported, "unit base [%d]", int(b))
	}
	if exponent < 0 || exponent > MaxExponent {
		return Unit{}, commonerrors.Newf(commonerrors.ErrOutOfRange, "exponent [%d] is not within [0, %d]", exponent, MaxExponent)
	}
	if exponent == 0 {
		return B, nil
	}
	if b == IEC {
		return binaryFamily[exponent-1], nil
	}
	return decimalFamily[exponent-1], nil
}
