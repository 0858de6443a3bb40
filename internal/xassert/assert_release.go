// +build !debug

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

// Package xassert is a helper for invariant checks that should only run in
// development builds. Using it instead of a bare panic makes it clear at
// the call site that the check is a debug-only assertion, not part of the
// production error-handling contract.
package xassert

// DEBUG is true only in builds compiled with the "debug" build tag.
const DEBUG = false

// Assert is a no-op in release builds. GO still evaluates the arguments
// passed to a disabled call (msg formatting, a... expressions), so callers
// should additionally guard with "if xassert.DEBUG { ... }" when an argument
// is expensive to compute - the compiler then eliminates the whole
// statement since DEBUG is a const.
func Assert(test bool, msg string, a ...interface{}) {}
