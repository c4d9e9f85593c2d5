/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeThrough(t *testing.T) {
	tests := []struct {
		input    []int
		stopAt   int
		expected []int
	}{
		{[]int{1, 2, 3, 4, 5}, 3, []int{1, 2, 3}},
		{[]int{1, 2, 3, 4, 5}, 1, []int{1}},
		{[]int{1, 2, 3, 4, 5}, 99, []int{1, 2, 3, 4, 5}},
		{[]int{}, 1, nil},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("stop at %v", test.stopAt), func(t *testing.T) {
			got := slices.Collect(TakeThrough(slices.Values(test.input), func(e int) bool { return e >= test.stopAt }))
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestTakeThroughEarlyBreak(t *testing.T) {
	var seen []int
	for e := range TakeThrough(slices.Values([]int{1, 2, 3, 4}), func(int) bool { return false }) {
		seen = append(seen, e)
		if e == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestNextOrLast(t *testing.T) {
	even := func(e int) bool { return e%2 == 0 }

	element, found := NextOrLast(slices.Values([]int{1, 3, 4, 5}), even)
	assert.True(t, found)
	assert.Equal(t, 4, element)

	element, found = NextOrLast(slices.Values([]int{1, 3, 5}), even)
	assert.True(t, found)
	assert.Equal(t, 5, element)

	_, found = NextOrLast(slices.Values([]int{}), even)
	assert.False(t, found)
}

func TestLast(t *testing.T) {
	element, found := Last(slices.Values([]int{7, 8, 9}))
	assert.True(t, found)
	assert.Equal(t, 9, element)

	_, found = Last(slices.Values([]int{}))
	assert.False(t, found)
}
