/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"reflect"

	mapstructure "github.com/go-viper/mapstructure/v2"

	"github.com/sizekit/sizekit/bytesize"
	"github.com/sizekit/sizekit/commonerrors"
)

var sizeType = reflect.TypeOf(bytesize.Size{})

// StringToSizeHookFunc returns a mapstructure decode hook converting textual
// or integer configuration values into bytesize.Size fields. Strings accept
// anything bytesize.Parse accepts ("2 GiB", "1.5kB", "1024"); integers count
// bytes. Floats are refused so that no configuration value is silently
// approximated.
func StringToSizeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != sizeType {
			return data, nil
		}
		switch f.Kind() {
		case reflect.String:
			return bytesize.Parse(data.(string))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return bytesize.FromBytes(reflect.ValueOf(data).Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return bytesize.FromBytes(reflect.ValueOf(data).Uint()), nil
		case reflect.Float32, reflect.Float64:
			return nil, commonerrors.Newf(commonerrors.ErrInvalidSize, "refusing to read the size field from the float [%v]; provide it as text instead", data)
		}
		return data, nil
	}
}

// SizeToStringHookFunc returns the encoding counterpart of
// StringToSizeHookFunc: bytesize.Size values are flattened to their lossless
// textual form, so that a configuration structure holding sizes can be
// merged into viper as defaults and read back without loss.
func SizeToStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f != sizeType {
			return data, nil
		}
		size, ok := data.(bytesize.Size)
		if !ok {
			return data, nil
		}
		return size.String(), nil
	}
}
