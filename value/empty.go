/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package value provides small helpers over arbitrary values, used by the
// configuration layer to decide whether a field was actually set.
package value

import (
	"reflect"
	"strings"
)

// IsEmpty states whether a value is unset: nil, a blank or whitespace-only
// string, false, zero, an empty collection, or a pointer to any of these.
// Validation rules use it to skip fields that Required is responsible for.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch typed := v.(type) {
	case string:
		return strings.TrimSpace(typed) == ""
	case *string:
		return typed == nil || strings.TrimSpace(*typed) == ""
	case bool:
		return !typed
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return rv.Len() == 0
	case reflect.Ptr:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	}
	return reflect.DeepEqual(v, reflect.Zero(rv.Type()).Interface())
}

// DefaultIfEmpty returns v unless it is empty, in which case it returns
// defaultValue.
func DefaultIfEmpty[T any](v T, defaultValue T) T {
	if IsEmpty(v) {
		return defaultValue
	}
	return v
}
