// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata is the optional free-form bag attached to a journal entry,
// restricted to a small closed set of recognized keys. It is validated at
// the service boundary (see internal/validators) and stored as a JSON
// column.
type Metadata struct {
	// Tags are user-chosen labels ("work", "family", ...).
	Tags []string `json:"tags,omitempty"`
	// Activities are things the user did that day ("run", "reading", ...).
	Activities []string `json:"activities,omitempty"`
	// Type marks special entry kinds; "gratitude" feeds the gratitude
	// streak statistics.
	Type string `json:"type,omitempty"`

	Weather     string   `json:"weather,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Location    string   `json:"location,omitempty"`

	SleepHours   *float64 `json:"sleep_hours,omitempty"`
	SleepQuality *int     `json:"sleep_quality,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (m Metadata) IsZero() bool {
	return len(m.Tags) == 0 && len(m.Activities) == 0 && m.Type == "" &&
		m.Weather == "" && m.Temperature == nil && m.Location == "" &&
		m.SleepHours == nil && m.SleepQuality == nil
}

// Value implements driver.Valuer so Metadata can be bound directly as a
// JSON/JSONB column parameter.
func (m Metadata) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON/JSONB metadata columns. NULL scans
// to the zero value.
func (m *Metadata) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata source type %T", src)
	}
}
