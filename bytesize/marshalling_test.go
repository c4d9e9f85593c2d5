/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytesize

import (
	"encoding/json"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"

	"github.com/sizekit/sizekit/commonerrors"
	"github.com/sizekit/sizekit/commonerrors/errortest"
)

type volume struct {
	Name     string `json:"name" yaml:"name"`
	Capacity Size   `json:"capacity" yaml:"capacity"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := volume{Name: "scratch", Capacity: MustParse("1.5 KiB")}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"scratch","capacity":"1.5 KiB"}`, string(data))

	var out volume
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Capacity.Equal(in.Capacity))
}

func TestJSONAcceptsNumbers(t *testing.T) {
	var out volume
	require.NoError(t, json.Unmarshal([]byte(`{"capacity": 1536}`), &out))
	assert.True(t, out.Capacity.Equal(MustParse("1536")))

	// Digits are read exactly, not through a float.
	require.NoError(t, json.Unmarshal([]byte(`{"capacity": 0.1}`), &out))
	assert.Equal(t, "1/10", out.Capacity.Magnitude().RatString())

	require.NoError(t, json.Unmarshal([]byte(`{"capacity": 1.5e3}`), &out))
	assert.True(t, out.Capacity.Equal(MustParse("1500")))
}

func TestJSONNullKeepsValue(t *testing.T) {
	out := volume{Capacity: MustParse("2 GiB")}
	require.NoError(t, json.Unmarshal([]byte(`{"capacity": null}`), &out))
	assert.True(t, out.Capacity.Equal(MustParse("2 GiB")))
}

func TestJSONRejections(t *testing.T) {
	var out volume
	errortest.AssertError(t, json.Unmarshal([]byte(`{"capacity": "1.5 XiB"}`), &out), commonerrors.ErrParsing)
	errortest.AssertError(t, json.Unmarshal([]byte(`{"capacity": true}`), &out), commonerrors.ErrParsing)
}

func TestTextRoundTrip(t *testing.T) {
	size := MustParse("1/3 B")
	text, err := size.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1/3 B", string(text))

	var back Size
	require.NoError(t, back.UnmarshalText(text))
	assert.True(t, back.Equal(size))
}

func TestYAMLRoundTrip(t *testing.T) {
	in := volume{Name: "backing", Capacity: MustParse("2 GiB")}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "name: backing\ncapacity: 2 GiB\n", string(data))

	var out volume
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.True(t, out.Capacity.Equal(in.Capacity))
}

func TestYAMLNumbers(t *testing.T) {
	var out volume
	require.NoError(t, yaml.Unmarshal([]byte("capacity: 1536\n"), &out))
	assert.True(t, out.Capacity.Equal(MustParse("1536")))

	require.NoError(t, yaml.Unmarshal([]byte("capacity: 18446744073709551615\n"), &out))
	assert.True(t, out.Capacity.Equal(FromBytes(uint64(18446744073709551615))))

	// Unquoted floats are ambiguous and refused; quoting keeps them exact.
	errortest.AssertError(t, yaml.Unmarshal([]byte("capacity: 1.5\n"), &out), commonerrors.ErrMarshalling)
	require.NoError(t, yaml.Unmarshal([]byte("capacity: \"1.5\"\n"), &out))
	assert.Equal(t, "3/2", out.Capacity.Magnitude().RatString())
}

func TestFlagValue(t *testing.T) {
	fs := flag.NewFlagSet("sizes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	capacity := MustParse("1 GiB")
	fs.Var(&capacity, "capacity", "capacity of the volume")

	require.NoError(t, fs.Parse([]string{"-capacity", "2.5 MiB"}))
	assert.True(t, capacity.Equal(MustParse("2.5 MiB")))
	assert.Equal(t, "bytesize", capacity.Type())

	err := fs.Parse([]string{"-capacity", "nonsense"})
	require.Error(t, err)
}
