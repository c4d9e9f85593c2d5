/*
 * Copyright (C) 2021-2026 The sizekit Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads service configuration containing byte sizes from the
// environment (.env file, environment variables, command-line flags) into
// typed structures, with bytesize.Size fields decoded exactly from their
// textual form.
package config

import (
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sizekit/sizekit/bytesize"
	"github.com/sizekit/sizekit/commonerrors"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "uniqueprefixforprivateflagbindingkeys123" // Has to be lower case and hopefully unique
)

// Validator is implemented by configuration structures that can state
// whether their content is usable.
type Validator interface {
	Validate() error
}

// Load reads the configuration from the environment (i.e. .env file,
// environment variables) into configurationToSet, falling back to the values
// of defaultConfiguration for anything the environment does not provide.
// envVarPrefix namespaces the environment variables: with prefix "storage",
// the key "capacity" is read from STORAGE_CAPACITY. Size fields accept
// anything bytesize.Parse accepts, e.g. STORAGE_CAPACITY="2 GiB".
func Load(envVarPrefix string, configurationToSet Validator, defaultConfiguration Validator) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as Load but reuses the viper session provided,
// so that flags bound with BindSizeFlag take part. Viper's precedence order
// applies: explicit Set, then flags, then environment, then defaults.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet Validator, defaultConfiguration Validator) (err error) {
	defaults, err := decodeDefaults(defaultConfiguration)
	if err != nil {
		return
	}
	err = viperSession.MergeConfigMap(defaults)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrUnsupported, err, "cannot merge default configuration")
	}

	// Load .env file contents into environment, if it exists
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)

	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		StringToSizeHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode the configuration into the structure")
	}
	return configurationToSet.Validate()
}

// decodeDefaults flattens the default configuration into a viper-mergeable
// map. Size fields are carried as their lossless textual form so that the
// merge does not strip them down to empty structures.
func decodeDefaults(defaultConfiguration Validator) (defaults map[string]interface{}, err error) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &defaults,
		DecodeHook: SizeToStringHookFunc(),
	})
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrUnsupported, err, "cannot create the defaults decoder")
	}
	err = decoder.Decode(defaultConfiguration)
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrMarshalling, err, "cannot decode the default configuration")
	}
	return
}

// SizeVar registers a size flag with the given name, default and usage on
// the flag set. The flag parses through bytesize.Parse, losslessly.
func SizeVar(flagSet *pflag.FlagSet, p *bytesize.Size, name string, value bytesize.Size, usage string) {
	*p = value
	flagSet.Var(p, name, usage)
}

// BindSizeFlag binds a size flag to an environment variable, given with or
// without the envVarPrefix, so that LoadFromViper sees both. The flag value
// takes precedence over the environment.
func BindSizeFlag(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if flag == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "no flag provided")
	}
	setEnvOptions(viperSession, envVarPrefix)
	shortKey, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(shortKey, flag)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrUnsupported, err, "cannot bind the flag")
	}
	err = viperSession.BindEnv(shortKey, cleansedEnvVar)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrUnsupported, err, "cannot bind the environment variable")
	}
	return
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (shortKey string, cleansedEnvVar string) {
	envVarLower := strings.ToLower(envVar)
	envVarPrefixLower := strings.ToLower(envVarPrefix)
	var short string
	if strings.HasPrefix(envVarLower, envVarPrefixLower) {
		short = strings.TrimPrefix(strings.TrimPrefix(envVarLower, envVarPrefixLower), EnvVarSeparator)
	} else {
		short = envVarLower
	}
	shortKey = flagKeyPrefix + configKeySeparator + strings.NewReplacer(EnvVarSeparator, configKeySeparator).Replace(short)
	cleansedEnvVar = strings.ToUpper(strings.NewReplacer(configKeySeparator, EnvVarSeparator).Replace(envVarPrefix + EnvVarSeparator + short))
	return
}

func isFlagKey(key string) bool {
	return strings.HasPrefix(key, flagKeyPrefix)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys aliases the private flag binding keys to the
// real structure keys. Viper's own aliasing does not follow multi-level
// keys, so set flags are copied over explicitly.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	keys := viperSession.AllKeys()
	for i := range keys {
		key := keys[i]
		if isFlagKey(key) {
			continue
		}
		flagKey, _ := generateEnvVarConfigKeys(key, envVarPrefix)
		// A set flag takes precedence over the structured configuration value.
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
		}
		viperSession.RegisterAlias(flagKey, key)
	}
}

var _ pflag.Value = (*bytesize.Size)(nil)
