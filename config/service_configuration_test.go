/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizekit/sizekit/bytesize"
)

var (
	expectedPath     = fmt.Sprintf("/mnt/%v", faker.Word())
	expectedCapacity = bytesize.MustParse("2 GiB")
	expectedPeriod   = 90 * time.Minute
)

type StorageConfiguration struct {
	Path        string        `mapstructure:"path"`
	Capacity    bytesize.Size `mapstructure:"capacity"`
	BlockSize   bytesize.Size `mapstructure:"block_size"`
	ScrubPeriod time.Duration `mapstructure:"scrub_period"`
}

func (cfg *StorageConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Path, validation.Required),
		validation.Field(&cfg.Capacity, SizeAtLeast(bytesize.MustParse("1 MiB"))),
		validation.Field(&cfg.BlockSize, SizeRange(bytesize.MustParse("512 B"), bytesize.MustParse("1 MiB"))),
	)
}

func DefaultStorageConfiguration() *StorageConfiguration {
	return &StorageConfiguration{
		BlockSize:   bytesize.MustParse("4 KiB"),
		ScrubPeriod: time.Hour,
	}
}

func TestServiceConfigurationLoad(t *testing.T) {
	os.Clearenv()
	configTest := &StorageConfiguration{}
	defaults := DefaultStorageConfiguration()
	err := Load("test", configTest, defaults)
	// The path is required and the environment does not provide it.
	require.Error(t, err)
	require.Error(t, configTest.Validate())

	err = os.Setenv("TEST_PATH", expectedPath)
	require.NoError(t, err)
	err = os.Setenv("TEST_CAPACITY", expectedCapacity.String())
	require.NoError(t, err)
	err = os.Setenv("TEST_SCRUB_PERIOD", expectedPeriod.String())
	require.NoError(t, err)
	err = Load("test", configTest, defaults)
	require.NoError(t, err)
	require.NoError(t, configTest.Validate())
	assert.Equal(t, expectedPath, configTest.Path)
	assert.True(t, expectedCapacity.Equal(configTest.Capacity))
	// Untouched fields keep the default values, sizes included.
	assert.True(t, defaults.BlockSize.Equal(configTest.BlockSize))
	assert.Equal(t, expectedPeriod, configTest.ScrubPeriod)
}

func TestServiceConfigurationLoadExactness(t *testing.T) {
	os.Clearenv()
	configTest := &StorageConfiguration{}
	defaults := DefaultStorageConfiguration()
	err := os.Setenv("TEST_PATH", expectedPath)
	require.NoError(t, err)
	// A fractional size must come through with no precision loss.
	err = os.Setenv("TEST_CAPACITY", "1.5 GiB")
	require.NoError(t, err)
	err = Load("test", configTest, defaults)
	require.NoError(t, err)
	assert.True(t, bytesize.FromBytes(1610612736).Equal(configTest.Capacity))
}

func TestServiceConfigurationLoadInvalidSize(t *testing.T) {
	os.Clearenv()
	configTest := &StorageConfiguration{}
	defaults := DefaultStorageConfiguration()
	err := os.Setenv("TEST_PATH", expectedPath)
	require.NoError(t, err)
	err = os.Setenv("TEST_CAPACITY", "lots of bytes")
	require.NoError(t, err)
	err = Load("test", configTest, defaults)
	require.Error(t, err)
}

func TestBinding(t *testing.T) {
	os.Clearenv()
	configTest := &StorageConfiguration{}
	defaults := DefaultStorageConfiguration()
	session := viper.New()
	flagSet := pflag.FlagSet{}
	prefix := "test"
	var capacity, blockSize bytesize.Size
	SizeVar(&flagSet, &capacity, "capacity", bytesize.MustParse("256 MiB"), "storage capacity")
	SizeVar(&flagSet, &blockSize, "block-size", bytesize.MustParse("4 KiB"), "allocation block size")
	flagSet.String("path", "", "storage path")
	err := BindSizeFlag(session, prefix, "TEST_CAPACITY", flagSet.Lookup("capacity"))
	require.NoError(t, err)
	err = BindSizeFlag(session, prefix, "BLOCK_SIZE", flagSet.Lookup("block-size"))
	require.NoError(t, err)
	err = BindSizeFlag(session, prefix, "TEST_PATH", flagSet.Lookup("path"))
	require.NoError(t, err)
	err = flagSet.Set("capacity", "512 MiB")
	require.NoError(t, err)
	err = flagSet.Set("path", expectedPath)
	require.NoError(t, err)
	err = LoadFromViper(session, prefix, configTest, defaults)
	require.NoError(t, err)
	require.NoError(t, configTest.Validate())
	assert.Equal(t, expectedPath, configTest.Path)
	// The set flag wins over the defaults.
	assert.True(t, bytesize.MustParse("512 MiB").Equal(configTest.Capacity))
	// The unset flag leaves the default in place.
	assert.True(t, defaults.BlockSize.Equal(configTest.BlockSize))
}

func TestSizeVar(t *testing.T) {
	flagSet := pflag.FlagSet{}
	var quota bytesize.Size
	SizeVar(&flagSet, &quota, "quota", bytesize.MustParse("1 GiB"), "user quota")
	assert.True(t, bytesize.MustParse("1 GiB").Equal(quota))
	require.NoError(t, flagSet.Set("quota", "2.5 TiB"))
	assert.True(t, bytesize.MustParse("2.5 TiB").Equal(quota))
	assert.Equal(t, "bytesize", flagSet.Lookup("quota").Value.Type())
	err := flagSet.Set("quota", "not a size")
	require.Error(t, err)
}
