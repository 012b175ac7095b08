// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xviper provides customizations on use of viper for configuration loading.

Configuration steps are expressed as Options and applied in order by New or Configure.
Unmarshal decodes durations leniently: "1500ms", "1.5s", and the bare number 1500 all
mean the same thing.
*/
package xviper
