/*
 * minishogi - a Minishogi (5x5 Shogi) engine and PUCT MCTS search library in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 minishogi contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config reads the engine's toml configuration file and exposes it
// through the package-level Settings value, plus a handful of globally
// resolved scalars (LogLevel, MctsLogLevel) that other packages read without
// importing the whole Settings tree.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// LogLevel is the general log level, resolved from config file or defaults.
	LogLevel = 5

	// MctsLogLevel is the log level for the MCTS search log specifically.
	MctsLogLevel = 5

	// Settings is the global configuration tree read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log     logConfiguration
	MCTS    mctsConfiguration
	Attacks attacksConfiguration
}

// Setup reads the toml file at path into Settings and resolves the derived
// globals. A zero-value path, or a file that doesn't exist, leaves defaults
// in place - Setup never fails the caller. Idempotent: the second and later
// calls are no-ops.
func Setup(path string) {
	if initialized {
		return
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			fmt.Println("config: could not read", path, "- using defaults:", err)
		}
	}

	setupLogLvl()
	setupMcts()
	setupAttacks()

	initialized = true
}

// LogLevels maps the string log levels accepted in the config file to the
// numerical levels op/go-logging uses internally (CRITICAL=0 .. DEBUG=5).
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
