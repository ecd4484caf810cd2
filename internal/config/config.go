//
// double-chess-sub000 - Double-Move (Marseillais) chess engine in GO
//
// MIT License
//
// Copyright (c) 2026 double-chess-sub000 contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration values, either
// set by defaults, read from a config file, or set by command-line
// options -- the same shape as FrankyGo's config package.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile holds the path to the config file (relative to the
	// working directory).
	ConfFile = "./config.toml"

	// LogLevel is the general log level name, overridable via the
	// config file or command line.
	LogLevel = "info"

	// SearchLogLevel is the search-specific log level.
	SearchLogLevel = "info"

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Search SearchConfiguration
	Eval   EvalConfiguration
}

// Setup reads the configuration file (if present) and applies
// settings on top of the defaults set by each sub-config's init().
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	initialized = true
}

// Reset clears the initialized flag so Setup() re-reads the file.
// Exposed for tests that need a clean config between cases.
func Reset() {
	initialized = false
}
