/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytesize

// Cmp compares two sizes exactly, returning -1, 0 or 1 when s is
// respectively smaller than, equal to or greater than o.
func (s Size) Cmp(o Size) int {
	return s.rat().Cmp(o.rat())
}

// Equal states whether the two sizes denote exactly the same quantity.
func (s Size) Equal(o Size) bool {
	return s.Cmp(o) == 0
}

// LessThan states whether s is strictly smaller than o.
func (s Size) LessThan(o Size) bool {
	return s.Cmp(o) < 0
}

// LessOrEqual states whether s is at most o.
func (s Size) LessOrEqual(o Size) bool {
	return s.Cmp(o) <= 0
}

// GreaterThan states whether s is strictly greater than o.
func (s Size) GreaterThan(o Size) bool {
	return s.Cmp(o) > 0
}

// GreaterOrEqual states whether s is at least o.
func (s Size) GreaterOrEqual(o Size) bool {
	return s.Cmp(o) >= 0
}
