/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytesize

import (
	"iter"
	"math/big"
	"slices"

	"github.com/sizekit/sizekit/collection"
	"github.com/sizekit/sizekit/commonerrors"
	"github.com/sizekit/sizekit/rounding"
	"github.com/sizekit/sizekit/units"
)

// ConvertTo returns the exact value of the size expressed in the given unit,
// e.g. 1536 bytes in KiB is 3/2. Unit factors are strictly positive so the
// conversion never fails.
func (s Size) ConvertTo(u units.Unit) *big.Rat {
	factor := new(big.Rat).SetInt(u.Factor())
	return factor.Quo(s.rat(), factor)
}

// Quantize returns the value of the size in the given unit resolved with the
// rounding mode. Exact returns the raw rational untouched; every other mode
// returns a whole-valued rational. Only a mode outside the supported set
// makes Quantize fail.
func (s Size) Quantize(u units.Unit, mode rounding.Mode) (*big.Rat, units.Unit, error) {
	value := s.ConvertTo(u)
	if mode == rounding.Exact {
		return value, u, nil
	}
	rounded, err := rounding.RoundToInt(value, mode)
	if err != nil {
		return nil, u, err
	}
	return new(big.Rat).SetInt(rounded), u, nil
}

// RoundTo returns the size rounded to a whole multiple of the unit. With the
// Exact mode the size must already be a whole multiple, otherwise the call
// fails rather than lose precision.
func (s Size) RoundTo(u units.Unit, mode rounding.Mode) (Size, error) {
	step, err := FromBigInt(u.Factor())
	if err != nil {
		return Size{}, err
	}
	return s.RoundToMultiple(step, mode)
}

// RoundToMultiple returns the size rounded to a whole multiple of an
// arbitrary step, e.g. a 4096 B allocation block. A zero step yields zero; a
// negative step fails with ErrInvalidSize.
func (s Size) RoundToMultiple(step Size, mode rounding.Mode) (Size, error) {
	if step.IsNegative() {
		return Size{}, commonerrors.Newf(commonerrors.ErrInvalidSize, "rounding step [%v] must not be negative", step.rat().RatString())
	}
	if step.IsZero() {
		return Size{}, nil
	}
	quotient := new(big.Rat).Quo(s.rat(), step.rat())
	rounded, err := rounding.RoundToInt(quotient, mode)
	if err != nil {
		return Size{}, err
	}
	value := new(big.Rat).SetInt(rounded)
	return Size{value: value.Mul(value, step.rat())}, nil
}

// RoundToBounded rounds to a whole multiple of the unit and then clamps the
// result into [lower, upper]; nil bounds are open. Clamping can move the
// result against the rounding direction, e.g. rounding down below the lower
// bound ends up at the bound. Bounds with lower above upper fail with
// ErrInvalid.
func (s Size) RoundToBounded(u units.Unit, mode rounding.Mode, lower, upper *Size) (Size, error) {
	if lower != nil && upper != nil && lower.GreaterThan(*upper) {
		return Size{}, commonerrors.Newf(commonerrors.ErrInvalid, "lower bound [%v] is above upper bound [%v]", lower, upper)
	}
	rounded, err := s.RoundTo(u, mode)
	if err != nil {
		return Size{}, err
	}
	if lower != nil && rounded.LessThan(*lower) {
		return *lower, nil
	}
	if upper != nil && rounded.GreaterThan(*upper) {
		return *upper, nil
	}
	return rounded, nil
}

// BestUnit returns the largest unit of the family in which the size is at
// least one, e.g. 1536 bytes is best read in KiB. Sizes below one unit of
// the whole ladder, zero included, select the byte. Bases other than SI
// select the binary family.
func (s Size) BestUnit(base units.Base) units.Unit {
	_, unit := s.Components(base)
	return unit
}

// Components returns the exact value of the size in its best-fitting unit
// together with that unit.
func (s Size) Components(base units.Base) (*big.Rat, units.Unit) {
	value, unit, err := s.ComponentsFor(FormatOptions{Base: normalizeBase(base)})
	if err != nil {
		return s.Magnitude(), units.B
	}
	return value, unit
}

type valueInUnit struct {
	value *big.Rat
	unit  units.Unit
}

// ComponentsFor returns the value/unit pair the options select. A forced
// unit short-circuits; otherwise the best fit is the smallest prefix leaving
// fewer than ladder x MinMagnitude to the left of the decimal point, the
// largest prefix when the size defeats the whole ladder. With ExactOnly the
// candidates up to that best fit are searched largest-first for one whose
// digits render without loss, falling back to bytes.
func (s Size) ComponentsFor(opts FormatOptions) (*big.Rat, units.Unit, error) {
	err := opts.Validate()
	if err != nil {
		return nil, units.Unit{}, err
	}
	if opts.Unit != nil {
		return s.ConvertTo(*opts.Unit), *opts.Unit, nil
	}

	base := normalizeBase(opts.Base)
	family, err := units.ForBase(base)
	if err != nil {
		return nil, units.Unit{}, err
	}
	ladder, err := base.Ladder()
	if err != nil {
		return nil, units.Unit{}, err
	}
	limit := new(big.Rat).SetInt(ladder)
	if opts.MinMagnitude != nil {
		limit.Mul(limit, opts.MinMagnitude)
	}

	all := func(yield func(valueInUnit) bool) {
		for u := range family {
			if !yield(valueInUnit{value: s.ConvertTo(u), unit: u}) {
				return
			}
		}
	}
	candidates := slices.Collect(collection.TakeThrough(all, func(p valueInUnit) bool {
		return new(big.Rat).Abs(p.value).Cmp(limit) < 0
	}))

	if opts.ExactOnly {
		slices.Reverse(candidates)
		chosen, _ := collection.NextOrLast(slices.Values(candidates), func(p valueInUnit) bool {
			return rendersExactly(p.value, opts.MaxPlaces)
		})
		return chosen.value, chosen.unit, nil
	}
	best := candidates[len(candidates)-1]
	return best.value, best.unit, nil
}

// Decompose returns the size expressed in every unit of the family, in
// ascending unit order, e.g. to offer a caller every representation of the
// same quantity.
func (s Size) Decompose(base units.Base) iter.Seq2[*big.Rat, units.Unit] {
	family, _ := units.ForBase(normalizeBase(base))
	return func(yield func(*big.Rat, units.Unit) bool) {
		for u := range family {
			if !yield(s.ConvertTo(u), u) {
				return
			}
		}
	}
}

// normalizeBase maps the zero value, and any base outside the registry, to
// the binary family.
func normalizeBase(base units.Base) units.Base {
	if base == units.SI {
		return units.SI
	}
	return units.IEC
}
