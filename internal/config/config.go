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

// Package config holds globally available configuration variables,
// either defaulted, read from a config.toml file, or set via command
// line flags by cmd/shatranj.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile is the path to the toml file read by Setup.
	ConfFile = "./config.toml"

	// LogLevel is the standard logger's level (op/go-logging scale,
	// 0=CRITICAL .. 5=DEBUG).
	LogLevel = 4

	// SearchLogLevel is the search tracer's level.
	SearchLogLevel = 2

	// TestLogLevel is the level used by package tests.
	TestLogLevel = 4

	// Settings is the global configuration, populated by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

type searchConfiguration struct {
	// MaxDepth is the iterative-deepening depth cap.
	MaxDepth int
	// StartDepth is the first iteration's depth.
	StartDepth int
	// UsePVS enables null-window principal variation search at non-first
	// root/node moves.
	UsePVS bool
	// UseTT enables transposition table probing/storing.
	UseTT bool
	TTSizeMB int
	// MateJitterSeed seeds the RNG used to diversify mating lines at
	// equal depth. 0 means "seed from wall clock".
	MateJitterSeed int64
	// UseBook enables opening book consultation before search.
	UseBook  bool
	BookFile string
}

type evalConfiguration struct {
	// UsePST enables the reserved piece-square-table term. Disabled by
	// default; an optional term, not a mandatory one.
	UsePST bool
	// StalemateScore is the deliberately non-zero, non-draw score
	// awarded for stalemate, kept configurable rather than hardcoded.
	StalemateScore int
}

// Setup reads ConfFile (logs the error and keeps defaults if it cannot
// be read) and applies
// defaults for anything the file does not set. Defaults are applied to
// Settings before decoding so that toml.DecodeFile (which only touches
// keys actually present in the document) can selectively override them.
func Setup() {
	if initialized {
		return
	}
	applyDefaults()
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	initialized = true
}

func applyDefaults() {
	Settings.Search.MaxDepth = 5
	Settings.Search.StartDepth = 3
	Settings.Search.TTSizeMB = 64
	Settings.Search.UsePVS = true
	Settings.Search.UseTT = true
	Settings.Search.UseBook = true
	Settings.Search.BookFile = "./book.bin"
	Settings.Eval.StalemateScore = 30000 // MATE/2, see evaluator.StalemateScore
}

// String prints the current configuration using reflection, for a
// diagnostic dump on startup.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	dump(&b, reflect.ValueOf(&c.Search).Elem())
	b.WriteString("\nEval Config:\n")
	dump(&b, reflect.ValueOf(&c.Eval).Elem())
	return b.String()
}

func dump(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(b, "%-2d: %-16s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}
