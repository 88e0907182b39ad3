// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		LogLevel         string   `json:"log_level"`
		PasswordHashCost int      `json:"password_hash_cost"`
		HashConcurrency  int      `json:"hash_concurrency"`
		StoreTimeout     Duration `json:"store_timeout"`
		Version          string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			Host         string `json:"host"`
			Port         int    `json:"port"`
			User         string `json:"user"`
			Password     string `json:"password"`
			Name         string `json:"name"`
			SSLMode      string `json:"sslmode"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server"`
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

	db := jsonCfg.Storage.DB
	cfg := &StructuredConfig{
		App: App{
			LogLevel:         jsonCfg.App.LogLevel,
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			HashConcurrency:  jsonCfg.App.HashConcurrency,
			StoreTimeout:     time.Duration(jsonCfg.App.StoreTimeout),
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver:       db.Driver,
				DSN:          db.DSN,
				Host:         db.Host,
				Port:         db.Port,
				User:         db.User,
				Password:     db.Password,
				Name:         db.Name,
				SSLMode:      db.SSLMode,
				MaxOpenConns: db.MaxOpenConns,
				MaxIdleConns: db.MaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
