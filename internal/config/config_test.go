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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Defaults come from each file's init(), which has already run by the
// time any test executes - this must hold even though nothing has called
// Setup yet.
func TestDefaultsBeforeSetup(t *testing.T) {
	assert.Equal(t, "info", Settings.Log.LogLvl)
	assert.Equal(t, "info", Settings.Log.MctsLogLvl)
	assert.Equal(t, 1<<20, Settings.MCTS.ArenaCapacity)
	assert.Equal(t, 800, Settings.MCTS.Simulations)
	assert.Equal(t, 4, Settings.MCTS.Workers)
	assert.True(t, Settings.Attacks.ForceSoftwarePext)
}

func TestLogLevelsMapMatchesGoLoggingEnum(t *testing.T) {
	assert.Equal(t, 0, LogLevels["critical"])
	assert.Equal(t, 1, LogLevels["error"])
	assert.Equal(t, 2, LogLevels["warning"])
	assert.Equal(t, 3, LogLevels["notice"])
	assert.Equal(t, 4, LogLevels["info"])
	assert.Equal(t, 5, LogLevels["debug"])
}

// Setup must be idempotent: once the first call (regardless of path) has
// resolved the globals, later calls - even with a different path - must
// not change anything.
func TestSetupIsIdempotent(t *testing.T) {
	Setup("")
	assert.Equal(t, LogLevels["info"], LogLevel)

	Settings.Log.LogLvl = "debug"
	Setup("/does/not/exist.toml")
	assert.Equal(t, LogLevels["info"], LogLevel, "Setup must no-op after the first call")
}
