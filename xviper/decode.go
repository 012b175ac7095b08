// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var durationType = reflect.TypeOf(time.Duration(0))

// MillisecondsHook decodes time.Duration fields.  Strings with units are parsed with time.ParseDuration,
// while bare numbers, whether numeric values or numeric strings, are interpreted as milliseconds.
func MillisecondsHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != durationType || from == durationType {
			return data, nil
		}

		switch from.Kind() {
		case reflect.String:
			s := strings.TrimSpace(reflect.ValueOf(data).String())
			if ms, err := cast.ToInt64E(s); err == nil {
				return time.Duration(ms) * time.Millisecond, nil
			}

			return time.ParseDuration(s)

		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			ms, err := cast.ToInt64E(data)
			if err != nil {
				return nil, err
			}

			return time.Duration(ms) * time.Millisecond, nil

		default:
			return data, nil
		}
	}
}

// Unmarshal decodes the Viper instance into target using MillisecondsHook and comma-separated slices.
func Unmarshal(v *viper.Viper, target interface{}) error {
	return v.Unmarshal(
		target,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				MillisecondsHook(),
				mapstructure.StringToSliceHookFunc(","),
			),
		),
	)
}
