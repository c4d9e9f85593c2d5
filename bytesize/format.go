/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytesize

import (
	"math/big"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sizekit/sizekit/commonerrors"
	"github.com/sizekit/sizekit/field"
	"github.com/sizekit/sizekit/rounding"
	"github.com/sizekit/sizekit/units"
)

// DefaultMaxPlaces is the number of decimal places printed when a rounding
// mode is selected and no explicit place limit is given.
const DefaultMaxPlaces = 2

const approxMarker = "~"

// FormatOptions drives Format. The zero value asks for the lossless default
// rendering: best-fitting binary unit, no rounding.
type FormatOptions struct {
	// Unit forces the representation unit instead of the best fit.
	Unit *units.Unit
	// Base selects the family used for best-fit selection, IEC when unset.
	Base units.Base
	// Mode resolves digits beyond MaxPlaces. The default, Exact, never
	// discards precision: a value whose decimal expansion does not
	// terminate is printed as a reduced fraction p/q.
	Mode rounding.Mode
	// MaxPlaces caps the digits after the decimal point when Mode is not
	// Exact. When nil, terminating expansions are printed in full and
	// DefaultMaxPlaces applies otherwise.
	MaxPlaces *int
	// MinMagnitude is the smallest value best fit may leave to the left of
	// the decimal point, 1 when nil.
	MinMagnitude *big.Rat
	// ExactOnly makes best fit prefer the largest unit whose digits render
	// without loss, falling back to bytes.
	ExactOnly bool
	// ShowApprox prefixes the approximation marker ~ when the printed
	// digits differ from the true value.
	ShowApprox bool
}

// Validate states whether the options are usable.
func (o *FormatOptions) Validate() error {
	err := validation.ValidateStruct(o,
		validation.Field(&o.Unit, validation.By(validateRegistryUnit)),
		validation.Field(&o.Base, validation.In(units.SI, units.IEC)),
		validation.Field(&o.Mode),
		validation.Field(&o.MaxPlaces, validation.Min(0)),
		validation.Field(&o.MinMagnitude, validation.By(validateMinMagnitude)),
	)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid format options")
	}
	return nil
}

func validateRegistryUnit(value interface{}) error {
	unit, ok := value.(*units.Unit)
	if !ok || unit == nil {
		return nil
	}
	_, err := units.Lookup(unit.Symbol())
	return err
}

func validateMinMagnitude(value interface{}) error {
	minimum, ok := value.(*big.Rat)
	if !ok || minimum == nil {
		return nil
	}
	if minimum.Sign() < 0 {
		return commonerrors.New(commonerrors.ErrInvalid, "must not be negative")
	}
	return nil
}

// Format renders the size as "<number> <symbol>" under the given options.
// With the default Exact mode the text is lossless and Parse returns the
// identical size; rounding modes cap the digits at MaxPlaces and, with
// ShowApprox, mark inexact renderings with a leading ~.
func (s Size) Format(opts FormatOptions) (string, error) {
	value, unit, err := s.ComponentsFor(opts)
	if err != nil {
		return "", err
	}
	numeral, exact, err := renderNumeral(value, opts.Mode, opts.MaxPlaces)
	if err != nil {
		return "", err
	}
	if opts.ShowApprox && !exact {
		numeral = approxMarker + numeral
	}
	return numeral + " " + unit.Symbol(), nil
}

// MustFormat is Format for options known to be valid; it panics on error.
func (s Size) MustFormat(opts FormatOptions) string {
	text, err := s.Format(opts)
	if err != nil {
		panic(err)
	}
	return text
}

// String renders the size losslessly in its best-fitting binary unit, e.g.
// "1.5 KiB", "1/3 B" or "-4 GiB".
func (s Size) String() string {
	text, err := s.Format(FormatOptions{})
	if err != nil {
		return s.rat().RatString() + " " + units.B.Symbol()
	}
	return text
}

// renderNumeral prints value according to the mode and place limit, stating
// whether the digits are exact.
func renderNumeral(value *big.Rat, mode rounding.Mode, maxPlaces *int) (numeral string, exact bool, err error) {
	if mode == rounding.Exact {
		return renderExact(value), true, nil
	}
	if maxPlaces == nil {
		if p, terminates := terminatingPlaces(value); terminates {
			return value.FloatString(p), true, nil
		}
	}
	places := field.OptionalInt(maxPlaces, DefaultMaxPlaces)
	scaled := new(big.Rat).SetInt(pow10(places))
	scaled.Mul(scaled, value)
	rounded, err := rounding.RoundToInt(scaled, mode)
	if err != nil {
		return "", false, err
	}
	return renderScaled(rounded, places), scaled.IsInt(), nil
}

// renderExact prints the full decimal expansion when it terminates and the
// reduced fraction p/q otherwise.
func renderExact(value *big.Rat) string {
	if value.IsInt() {
		return value.Num().String()
	}
	if p, terminates := terminatingPlaces(value); terminates {
		return value.FloatString(p)
	}
	return value.RatString()
}

// rendersExactly states whether the decimal digits of value fit without loss
// within the place limit (any length when nil).
func rendersExactly(value *big.Rat, maxPlaces *int) bool {
	p, terminates := terminatingPlaces(value)
	if !terminates {
		return false
	}
	return maxPlaces == nil || p <= *maxPlaces
}

// terminatingPlaces returns the exact number of decimal places of value. A
// reduced rational terminates exactly when its denominator has no prime
// factors besides 2 and 5, after max(twos, fives) places.
func terminatingPlaces(value *big.Rat) (int, bool) {
	denom := new(big.Int).Set(value.Denom())
	twos := int(denom.TrailingZeroBits())
	denom.Rsh(denom, uint(twos))
	fives := 0
	five := big.NewInt(5)
	remainder := new(big.Int)
	for {
		quotient, r := new(big.Int).QuoRem(denom, five, remainder)
		if r.Sign() != 0 {
			break
		}
		denom = quotient
		fives++
	}
	if denom.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	return max(twos, fives), true
}

func pow10(places int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
}

// renderScaled prints n placed against a 10^places denominator, trimming
// trailing zeros.
func renderScaled(n *big.Int, places int) string {
	digits := new(big.Int).Abs(n).String()
	var fracPart string
	if places > 0 {
		if len(digits) <= places {
			digits = strings.Repeat("0", places-len(digits)+1) + digits
		}
		cut := len(digits) - places
		digits, fracPart = digits[:cut], digits[cut:]
		fracPart = strings.TrimRight(fracPart, "0")
	}
	if fracPart != "" {
		digits += "." + fracPart
	}
	if n.Sign() < 0 {
		digits = "-" + digits
	}
	return digits
}
