// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for file-based
// configuration. Durations are accepted both as strings ("15s") and as
// nanosecond numbers via the [Duration] wrapper.
type StructuredJSONConfig struct {
	App struct {
		EncryptionKeys    string `json:"encryption_keys"`
		KeyDerivationSalt string `json:"key_derivation_salt"`
		Version           string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Analysis struct {
		OpenAIAPIKey   string   `json:"openai_api_key"`
		OpenAIModel    string   `json:"openai_model"`
		OpenAIBaseURL  string   `json:"openai_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"analysis,omitempty"`

	KB struct {
		BaseURL        string   `json:"base_url"`
		TopK           int      `json:"top_k"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"kb,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EncryptionKeys:    jsonCfg.App.EncryptionKeys,
			KeyDerivationSalt: jsonCfg.App.KeyDerivationSalt,
			Version:           jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Analysis: Analysis{
			OpenAIAPIKey:   jsonCfg.Analysis.OpenAIAPIKey,
			OpenAIModel:    jsonCfg.Analysis.OpenAIModel,
			OpenAIBaseURL:  jsonCfg.Analysis.OpenAIBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Analysis.RequestTimeout),
		},
		KB: KnowledgeBase{
			BaseURL:        jsonCfg.KB.BaseURL,
			TopK:           jsonCfg.KB.TopK,
			RequestTimeout: time.Duration(jsonCfg.KB.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
