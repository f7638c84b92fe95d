// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the configuration shared by the public packages and the options used to
// change it.
package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeContext is used when a negative number of context elements is requested.
	ErrNegativeContext = errors.New("context must not be negative")

	// ErrNilEqual is used when a nil equality function is passed to one of the ...Func variants.
	ErrNilEqual = errors.New("equality function must not be nil")
)

type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks returned.
	Context int

	// If set, find an optimal diff irrespective of the cost.
	Optimal bool
}

var Default = Config{
	Context: 3,
	Optimal: false,
}

type Flag int

const (
	Context Flag = 1 << iota
	Optimal
)

type Option func(*Config) Flag

// FromOptions applies opts to the default configuration.
//
// It panics if an option is not in allowed or if the resulting configuration is invalid. The panic
// value is always an error.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic(fmt.Errorf("option %s not allowed here", printFlag(flag)))
		}
	}
	if cfg.Context < 0 {
		panic(fmt.Errorf("invalid option seqdiff.Context(%d): %w", cfg.Context, ErrNegativeContext))
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "seqdiff.Context"
	case Optimal:
		return "seqdiff.Optimal"
	default:
		panic("never reached")
	}
}
