/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sizekit/sizekit/bytesize"
	"github.com/sizekit/sizekit/commonerrors"
	"github.com/sizekit/sizekit/value"
)

// IsSize returns a rule checking that a field describes a quantity of bytes:
// a bytesize.Size, a string in the bytesize.Parse grammar, or an integer
// byte count. Empty values are skipped, as with any ozzo rule; pair with
// validation.Required when the field is mandatory.
func IsSize() validation.Rule {
	return validation.By(func(vRaw any) error {
		_, err := sizeOf(vRaw)
		return err
	})
}

// SizeRange returns a rule checking that a size field lies within
// [minimum, maximum], bounds included.
func SizeRange(minimum, maximum bytesize.Size) validation.Rule {
	return validation.By(func(vRaw any) error {
		if minimum.GreaterThan(maximum) {
			return commonerrors.Newf(commonerrors.ErrInvalid, "lower bound [%v] is above upper bound [%v]", minimum, maximum)
		}
		size, err := sizeOf(vRaw)
		if err != nil || size == nil {
			return err
		}
		if size.LessThan(minimum) || size.GreaterThan(maximum) {
			return commonerrors.Newf(commonerrors.ErrOutOfRange, "size [%v] is not within [%v, %v]", size, minimum, maximum)
		}
		return nil
	})
}

// SizeAtLeast returns a rule checking that a size field is at least minimum,
// e.g. that a partition is large enough.
func SizeAtLeast(minimum bytesize.Size) validation.Rule {
	return validation.By(func(vRaw any) error {
		size, err := sizeOf(vRaw)
		if err != nil || size == nil {
			return err
		}
		if size.LessThan(minimum) {
			return commonerrors.Newf(commonerrors.ErrOutOfRange, "size [%v] is below [%v]", size, minimum)
		}
		return nil
	})
}

// sizeOf reads the size a field describes, nil when the field is empty.
func sizeOf(vRaw any) (*bytesize.Size, error) {
	if value.IsEmpty(vRaw) {
		return nil, nil
	}
	switch v := vRaw.(type) {
	case bytesize.Size:
		return &v, nil
	case *bytesize.Size:
		return v, nil
	case string:
		return parseSizeText(v)
	case []byte:
		return parseSizeText(string(v))
	}
	val := reflect.ValueOf(vRaw)
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		size := bytesize.FromBytes(val.Int())
		return &size, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		size := bytesize.FromBytes(val.Uint())
		return &size, nil
	}
	return nil, commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for size validation: %T", vRaw)
}

func parseSizeText(text string) (*bytesize.Size, error) {
	size, err := bytesize.Parse(text)
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
	}
	return &size, nil
}
