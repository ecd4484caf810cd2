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

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yossior/double-chess-sub000/internal/config"
	"github.com/yossior/double-chess-sub000/internal/dispatcher"
	"github.com/yossior/double-chess-sub000/internal/logging"
	"github.com/yossior/double-chess-sub000/internal/movegen"
	"github.com/yossior/double-chess-sub000/internal/position"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version info and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a pprof CPU profile for this run to the working directory")
	perftDepth := flag.Int("perft", 0, "runs perft to the given depth from -fen and exits")
	fen := flag.String("fen", position.StartFEN, "fen used by -perft")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != "" {
		config.LogLevel = *logLvl
	}
	if *searchLogLvl != "" {
		config.SearchLogLevel = *searchLogLvl
	}
	// Every package that grabbed a logger at init() time got the
	// default level; re-fetch now that flags may have overridden it.
	logging.GetLog()
	logging.GetSearchLog()
	logging.GetDispatchLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *perftDepth > 0 {
		runPerft(*fen, *perftDepth)
		return
	}

	runStdio()
}

// runPerft runs internal/movegen's perft at every depth from 1 to
// depth, printing node counts, the way FrankyGo's -perft flag does.
func runPerft(fen string, depth int) {
	pos, err := position.NewFEN(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -fen:", err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		nodes := movegen.Perft(pos, d)
		out.Printf("perft(%d) = %d\n", d, nodes)
	}
}

// runStdio reads one JSON request per line from stdin and writes one
// JSON response per line to stdout -- the simplest transport that
// satisfies spec §5's "messages are delivered whole" requirement,
// leaving worker/thread placement to whatever process embeds this
// binary.
func runStdio() {
	d := dispatcher.New()
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req dispatcher.Request
		if err := json.Unmarshal(line, &req); err != nil {
			writeResponse(writer, dispatcher.Response{Kind: dispatcher.KindError, Message: "malformed request: " + err.Error()})
			continue
		}
		resp := d.HandleRequest(context.Background(), req)
		writeResponse(writer, resp)
	}
}

func writeResponse(w *bufio.Writer, resp dispatcher.Response) {
	b, err := json.Marshal(resp)
	if err != nil {
		b, _ = json.Marshal(dispatcher.Response{Kind: dispatcher.KindError, Message: "failed to marshal response"})
	}
	w.Write(b)
	w.WriteByte('\n')
	w.Flush()
}

func printVersionInfo() {
	out.Println("double-chess engine")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
