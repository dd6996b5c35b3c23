// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lumimood/moodcore/models"
)

const (
	FieldTags         = "tags"
	FieldActivities   = "activities"
	FieldType         = "type"
	FieldWeather      = "weather"
	FieldTemperature  = "temperature"
	FieldLocation     = "location"
	FieldSleepHours   = "sleep_hours"
	FieldSleepQuality = "sleep_quality"
)

// Boundary limits on the metadata bag.
const (
	MaxTags          = 20
	MaxTagLength     = 50
	MaxActivities    = 20
	MaxActivityLen   = 50
	MaxTypeLength    = 30
	MaxWeatherLength = 50
	MaxLocationLen   = 100

	MinTemperature = -100.0
	MaxTemperature = 100.0
	MaxSleepHours  = 24.0
	MinSleepQual   = 1
	MaxSleepQual   = 5
)

type MetadataValidator struct {
}

func NewMetadataValidator() Validator {
	return &MetadataValidator{}
}

func (v *MetadataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Metadata:
		return v.validateMetadata(ctx, value, fields...)
	case *models.Metadata:
		return v.validateMetadata(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MetadataValidator) validateMetadata(_ context.Context, m models.Metadata, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldTags, FieldActivities, FieldType, FieldWeather,
			FieldTemperature, FieldLocation, FieldSleepHours, FieldSleepQuality,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldTags:
			if len(m.Tags) > MaxTags {
				return ErrTooManyTags
			}
			for _, tag := range m.Tags {
				if err := validateLabel(tag, MaxTagLength); err != nil {
					return fmt.Errorf("%w: %q", ErrInvalidTag, tag)
				}
			}

		case FieldActivities:
			if len(m.Activities) > MaxActivities {
				return ErrTooManyActivities
			}
			for _, activity := range m.Activities {
				if err := validateLabel(activity, MaxActivityLen); err != nil {
					return fmt.Errorf("%w: %q", ErrInvalidActivity, activity)
				}
			}

		case FieldType:
			if utf8.RuneCountInString(m.Type) > MaxTypeLength {
				return ErrInvalidEntryType
			}

		case FieldWeather:
			if utf8.RuneCountInString(m.Weather) > MaxWeatherLength {
				return ErrInvalidWeather
			}

		case FieldTemperature:
			if m.Temperature != nil && (*m.Temperature < MinTemperature || *m.Temperature > MaxTemperature) {
				return ErrInvalidTemperature
			}

		case FieldLocation:
			if utf8.RuneCountInString(m.Location) > MaxLocationLen {
				return ErrInvalidLocation
			}

		case FieldSleepHours:
			if m.SleepHours != nil && (*m.SleepHours < 0 || *m.SleepHours > MaxSleepHours) {
				return ErrInvalidSleepHours
			}

		case FieldSleepQuality:
			if m.SleepQuality != nil && (*m.SleepQuality < MinSleepQual || *m.SleepQuality > MaxSleepQual) {
				return ErrInvalidSleepQuality
			}
		}
	}

	return nil
}

// validateLabel checks a single tag or activity element: non-blank after
// trimming and within the length cap.
func validateLabel(label string, maxLen int) error {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return fmt.Errorf("blank label")
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return fmt.Errorf("label too long")
	}
	return nil
}
