/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytesize

import (
	"encoding"
	"encoding/json"
	"strings"

	"github.com/sizekit/sizekit/commonerrors"
)

var (
	_ encoding.TextMarshaler   = Size{}
	_ encoding.TextUnmarshaler = (*Size)(nil)
	_ json.Marshaler           = Size{}
	_ json.Unmarshaler         = (*Size)(nil)
)

// MarshalText implements encoding.TextMarshaler using the lossless String
// form.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting anything
// Parse accepts.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON renders the size as its lossless string form.
func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a string in the Parse grammar or a bare JSON number,
// whose decimal digits are read exactly. null leaves the size untouched.
func (s *Size) UnmarshalJSON(data []byte) error {
	token := strings.TrimSpace(string(data))
	if token == "null" {
		return nil
	}
	if strings.HasPrefix(token, `"`) {
		var text string
		err := json.Unmarshal(data, &text)
		if err != nil {
			return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "invalid size text")
		}
		return s.UnmarshalText([]byte(text))
	}
	parsed, err := Parse(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface of gopkg.in/yaml.v2
// using the lossless String form.
func (s Size) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface of
// gopkg.in/yaml.v2. Strings go through Parse and whole numbers count bytes.
// Fractional YAML numbers must be quoted so that they are read exactly.
func (s *Size) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var text string
	if unmarshal(&text) == nil {
		return s.UnmarshalText([]byte(text))
	}
	var whole int64
	if unmarshal(&whole) == nil {
		*s = FromBytes(whole)
		return nil
	}
	var huge uint64
	if unmarshal(&huge) == nil {
		*s = FromBytes(huge)
		return nil
	}
	var node interface{}
	_ = unmarshal(&node)
	return commonerrors.Newf(commonerrors.ErrMarshalling, "cannot read a size from [%v]", node)
}

// Set implements flag.Value and pflag.Value so a Size can back a
// command-line flag directly.
func (s *Size) Set(text string) error {
	return s.UnmarshalText([]byte(text))
}

// Type implements pflag.Value.
func (s *Size) Type() string {
	return "bytesize"
}
