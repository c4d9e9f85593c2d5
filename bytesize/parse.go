/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytesize

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/sizekit/sizekit/commonerrors"
	"github.com/sizekit/sizekit/units"
)

// Grammar: optional sign, then a decimal numeral with an optional exponent
// or a fraction p/q, then an optional unit symbol separated by at most one
// space. A bare numeral counts bytes.
var (
	sizePattern    = regexp.MustCompile(`^([+-]?)(\d+/\d+|(?:\d+(?:\.\d+)?|\.\d+)(?:[eE][+-]?\d+)?)(?: ?([A-Za-z]+))?$`)
	numeralPattern = regexp.MustCompile(`^[+-]?(\d+/\d+|(?:\d+(?:\.\d+)?|\.\d+)(?:[eE][+-]?\d+)?)$`)
)

// Parse reconstructs a size from its textual form, e.g. "1536", "1.5 KiB",
// "-2e3 kB" or "1/3 B". The numeric value is read exactly; nothing is
// rounded. Unreadable text fails with ErrParsing, which also wraps
// ErrUnknownUnit when the number was fine but the symbol was not.
func Parse(text string) (Size, error) {
	match := sizePattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return Size{}, commonerrors.Newf(commonerrors.ErrParsing, "cannot parse '%v' as a size", text)
	}
	value, ok := ratFromNumeral(match[1] + match[2])
	if !ok {
		return Size{}, commonerrors.Newf(commonerrors.ErrParsing, "cannot parse '%v' as a size", text)
	}
	unit := units.B
	if match[3] != "" {
		found, err := units.Lookup(match[3])
		if err != nil {
			return Size{}, commonerrors.WrapErrorf(commonerrors.ErrParsing, err, "cannot parse '%v' as a size", text)
		}
		unit = found
	}
	return New(value, unit)
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(text string) Size {
	size, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return size
}

// parseNumeral reads a bare numeral (no unit) as an exact rational.
func parseNumeral(text string) (*big.Rat, error) {
	trimmed := strings.TrimSpace(text)
	if !numeralPattern.MatchString(trimmed) {
		return nil, commonerrors.Newf(commonerrors.ErrParsing, "cannot parse '%v' as an exact number", text)
	}
	value, ok := ratFromNumeral(trimmed)
	if !ok {
		// A fraction with a zero denominator passes the pattern.
		return nil, commonerrors.Newf(commonerrors.ErrParsing, "cannot parse '%v' as an exact number", text)
	}
	return value, nil
}

// ratFromNumeral normalises a leading decimal point before handing the
// numeral to big.Rat.
func ratFromNumeral(numeral string) (*big.Rat, bool) {
	switch {
	case strings.HasPrefix(numeral, "."):
		numeral = "0" + numeral
	case strings.HasPrefix(numeral, "+."), strings.HasPrefix(numeral, "-."):
		numeral = numeral[:1] + "0" + numeral[1:]
	}
	return new(big.Rat).SetString(numeral)
}
