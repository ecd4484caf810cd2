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

// Package logging is a thin helper over "github.com/op/go-logging" so
// every other package gets a preconfigured *logging.Logger with one
// line, the way FrankyGo's own logging package does.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/yossior/double-chess-sub000/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	dispatchLog *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	dispatchLog = logging.MustGetLogger("dispatch")
	testLog = logging.MustGetLogger("test")
}

func levelFor(name string) logging.Level {
	lvl, err := logging.LogLevel(name)
	if err != nil {
		return logging.INFO
	}
	return lvl
}

func backend(lvl logging.Level) logging.LeveledBackend {
	b := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	f := logging.NewBackendFormatter(b, standardFormat)
	leveled := logging.AddModuleLevel(f)
	leveled.SetLevel(lvl, "")
	return leveled
}

// GetLog returns the standard logger, level sourced from config.LogLevel.
func GetLog() *logging.Logger {
	standardLog.SetBackend(backend(levelFor(config.LogLevel)))
	return standardLog
}

// GetSearchLog returns the search logger, used for node counts and TT
// statistics (spec §4.9 ambient-stack logging).
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(backend(levelFor(config.SearchLogLevel)))
	return searchLog
}

// GetDispatchLog returns the dispatcher logger, used for request
// lifecycle messages.
func GetDispatchLog() *logging.Logger {
	dispatchLog.SetBackend(backend(levelFor(config.LogLevel)))
	return dispatchLog
}

// GetTestLog returns a logger suitable for use from tests.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(backend(logging.DEBUG))
	return testLog
}
