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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/minishogi/internal/attacks"
	"github.com/frankkopp/minishogi/internal/config"
	"github.com/frankkopp/minishogi/internal/logging"
	"github.com/frankkopp/minishogi/internal/matesolver"
	"github.com/frankkopp/minishogi/internal/position"
	"github.com/frankkopp/minishogi/internal/selfplay"
	"github.com/frankkopp/minishogi/internal/zobrist"
)

var out = message.NewPrinter(language.German)

const version = "0.1.0"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "", "path to configuration settings file (toml)")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	doProfile := flag.Bool("profile", false, "write a CPU profile of the selected mode to ./profile")
	mode := flag.String("mode", "selfplay", "what to run: selfplay|matesolve|perft")
	sfen := flag.String("sfen", position.StartSFEN, "starting position for selfplay/matesolve/perft")
	depth := flag.Int("depth", 7, "search depth for matesolve, or ply depth for perft")
	games := flag.Int("games", 1, "number of self-play games to run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.Setup(*configFile)
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.GetLog()

	zobrist.Init()
	attacks.Init()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("./profile")).Stop()
	}

	switch *mode {
	case "perft":
		runPerft(*sfen, *depth)
	case "matesolve":
		runMatesolve(*sfen, *depth)
	case "selfplay":
		runSelfplay(*games)
	default:
		log.Errorf("unknown -mode %q (want selfplay|matesolve|perft)", *mode)
		os.Exit(1)
	}
}

func runPerft(sfen string, depth int) {
	pos := position.New()
	if err := pos.SetSFEN(sfen); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		nodes := perft(pos, d)
		out.Printf("perft(%d) = %d\n", d, nodes)
	}
}

// perft counts leaf positions reached by playing out every legal move to
// depth d, recursively. It exercises DoMove/UndoMove and the move
// generator's legality filter the same way the teacher's movegen.Perft
// does for chess.
func perft(pos *position.Position, d int) uint64 {
	if d == 0 {
		return 1
	}
	moves := pos.GenerateMoves()
	if d == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		pos.DoMove(moves.At(i))
		nodes += perft(pos, d-1)
		pos.UndoMove()
	}
	return nodes
}

func runMatesolve(sfen string, depth int) {
	pos := position.New()
	if err := pos.SetSFEN(sfen); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	mate, move := matesolver.Solve(pos, depth)
	if mate {
		out.Printf("forced mate found, first move: %s\n", move.String())
	} else {
		out.Printf("no forced mate found within depth %d\n", depth)
	}
}

func runSelfplay(games int) {
	runner := selfplay.NewRunner(selfplay.MaterialEvaluator{}, 0)
	results := runner.PlayGames(games)
	for i, r := range results {
		out.Printf("game %d: %d plies, white result %.1f\n", i, len(r.Moves), r.WhiteResult)
	}
}

func printVersionInfo() {
	out.Printf("minishogi %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
