// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xerrors

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidParameter indicates a value passed to an operation is outside its allowed range,
	// e.g. a nonpositive interval.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidUsage indicates an operation was invoked in a way its contract forbids,
	// e.g. registering an event handler twice.
	ErrInvalidUsage = errors.New("invalid usage")
)

// InvalidParameter produces an error wrapping ErrInvalidParameter that names the offending parameter.
func InvalidParameter(name string, value interface{}) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidParameter, name, value)
}

// InvalidUsage produces an error wrapping ErrInvalidUsage with a formatted description.
func InvalidUsage(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidUsage, fmt.Sprintf(format, args...))
}

// PositiveDuration returns an InvalidParameter error if d is not strictly positive.
func PositiveDuration(name string, d time.Duration) error {
	if d <= 0 {
		return InvalidParameter(name, d)
	}

	return nil
}
