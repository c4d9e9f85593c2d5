/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package field provides utilities to handle optional structure fields, i.e.
// fields carried as pointers whose nil value means "unset, use the default".
package field

// ToOptional returns a pointer to v.
func ToOptional[T any](v T) *T {
	return &v
}

// Optional returns the value of an optional field or else returns
// defaultValue.
func Optional[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalInt returns a pointer to an int.
func ToOptionalInt(i int) *int {
	return ToOptional(i)
}

// OptionalInt returns the value of an optional field or else returns
// defaultValue.
func OptionalInt(ptr *int, defaultValue int) int {
	return Optional(ptr, defaultValue)
}

// ToOptionalUint64 returns a pointer to a uint64.
func ToOptionalUint64(i uint64) *uint64 {
	return ToOptional(i)
}

// OptionalUint64 returns the value of an optional field or else returns
// defaultValue.
func OptionalUint64(ptr *uint64, defaultValue uint64) uint64 {
	return Optional(ptr, defaultValue)
}

// ToOptionalBool returns a pointer to a bool.
func ToOptionalBool(b bool) *bool {
	return ToOptional(b)
}

// OptionalBool returns the value of an optional field or else returns
// defaultValue.
func OptionalBool(ptr *bool, defaultValue bool) bool {
	return Optional(ptr, defaultValue)
}

// ToOptionalString returns a pointer to a string.
func ToOptionalString(s string) *string {
	return ToOptional(s)
}

// OptionalString returns the value of an optional field or else returns
// defaultValue.
func OptionalString(ptr *string, defaultValue string) string {
	return Optional(ptr, defaultValue)
}
