/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides helpers over lazy sequences (iter.Seq).
package collection

import "iter"

// TakeThrough returns the elements of s up to and including the first one
// satisfying pred. Unlike a plain take-while, the element that satisfies the
// predicate is part of the returned sequence.
func TakeThrough[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range s {
			if !yield(e) {
				return
			}
			if pred(e) {
				return
			}
		}
	}
}

// NextOrLast returns the first element of s satisfying pred, or the last
// element when none does. found reports whether the sequence had any element
// at all.
func NextOrLast[T any](s iter.Seq[T], pred func(T) bool) (element T, found bool) {
	for e := range s {
		element = e
		found = true
		if pred(e) {
			return
		}
	}
	return
}

// Last returns the final element of s. found is false for an empty sequence.
func Last[T any](s iter.Seq[T]) (element T, found bool) {
	return NextOrLast(s, func(T) bool { return false })
}
