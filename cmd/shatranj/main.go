/*
 * shatranj - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 shatranj contributors
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

	"github.com/stannous/shatranj/internal/attacks"
	"github.com/stannous/shatranj/internal/config"
	"github.com/stannous/shatranj/internal/logging"
	"github.com/stannous/shatranj/internal/movegen"
	"github.com/stannous/shatranj/internal/position"
	"github.com/stannous/shatranj/internal/uci"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.Int("loglvl", config.LogLevel, "standard log level (0=critical .. 5=debug)")
	bookFile := flag.String("bookfile", "", "opening book file (gob-encoded, as produced by bookgen)")
	tableCache := flag.String("tablecache", "./shatranj-data.bin", "gob-encoded attack table cache (rebuilt if absent or unreadable)")
	perft := flag.Int("perft", 0, "runs perft to the given depth on -fen and exits")
	fen := flag.String("fen", position.StartFEN, "fen for -perft")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	config.LogLevel = *logLvl
	if *bookFile != "" {
		config.Settings.Search.BookFile = *bookFile
	}

	// Packages keep a global logger initialized at import time with the
	// default level; re-fetch it now that the configured level is known.
	log := logging.GetLog()

	if ok, err := attacks.LoadTables(*tableCache); err != nil || !ok {
		if err != nil {
			log.Warningf("attack table cache not loaded from %s: %s", *tableCache, err)
		}
		attacks.Init()
	}

	if *perft != 0 {
		var p movegen.Perft
		p.StartPerftMulti(*fen, 1, *perft)
		return
	}

	handler := uci.NewHandler(os.Stdin, os.Stdout)
	fmt.Fprintln(os.Stderr, "shatranj ready")
	handler.Loop()
}
