// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrTooManyTags         = errors.New("too many tags")
	ErrInvalidTag          = errors.New("invalid tag")
	ErrTooManyActivities   = errors.New("too many activities")
	ErrInvalidActivity     = errors.New("invalid activity")
	ErrInvalidEntryType    = errors.New("invalid entry type")
	ErrInvalidWeather      = errors.New("invalid weather")
	ErrInvalidTemperature  = errors.New("temperature out of range")
	ErrInvalidLocation     = errors.New("invalid location")
	ErrInvalidSleepHours   = errors.New("sleep hours out of range")
	ErrInvalidSleepQuality = errors.New("sleep quality out of range")
)
