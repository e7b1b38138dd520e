// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/code128"
	"github.com/unixdj/code128/split"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	fn      string // output file
	chart   string // candidate chart file
	charset string // input character encoding
	format  string // output format
	naive   bool   // naive split
	manual  bool   // arguments are SET:text segments
	upper   bool   // uppercase
	fold    bool   // fold to ASCII
	verbose bool   // trace log
}{}

var formats = []string{"text", "table", "yaml"}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "Code 128 segmenter\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  With -M, each argument is a segment given as
SET:text, where SET is A, B or C.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`code128 version 0.1.0
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.naive, 'n', "naive split, no code set C")
	getopt.Flag(&g.manual, 'M', "arguments are SET:text segments")
	getopt.Flag(&g.upper, 'i', "ignore case, convert input to uppercase")
	getopt.Flag(&g.fold, 'A', "fold input to ASCII, dropping accents")
	getopt.Flag(&g.verbose, 'v', "log trace messages to standard error")
	getopt.Flag(&g.charset, 'E', `input character encoding, `+
		`as IANA name; default UTF-8`, "charset")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&g.chart, 'g', "write SVG chart of candidate costs "+
		"to file", "file")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+`; if no -o is given and `+
		`standard output is a TTY, default is table, otherwise text`,
		"type")

	getopt.Parse()
	if g.manual {
		for _, v := range "nAEi" {
			if getopt.IsSet(v) {
				fmt.Fprintf(os.Stderr,
					"-M and -%c are incompatible\n", v)
				usage()
			}
		}
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "table"
		} else {
			*ff = "text"
		}
	}
	g.format = *ff
	if g.fn == "-" {
		g.fn = ""
	}
}

// input returns the text to split from the arguments or standard
// input.
func input() (string, error) {
	var b []byte
	if args := getopt.Args(); len(args) != 0 {
		b = []byte(strings.Join(args, " "))
	} else {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, os.Stdin); err != nil {
			return "", err
		}
		b = bytes.ReplaceAll(buf.Bytes(), []byte("\r\n"), []byte("\n"))
		b, _ = bytes.CutSuffix(b, []byte("\n"))
	}
	return convert(b, g.charset, g.fold, g.upper)
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var logger *slog.Logger
	if g.verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: split.LevelTrace}))
	}

	var (
		s    split.Strategy = split.Optimal{Logger: logger}
		text string
		err  error
	)
	switch {
	case g.manual:
		var m split.Manual
		if m, err = split.ParseManual(getopt.Args()); err != nil {
			log.Fatalln(err)
		}
		s = m
		for _, seg := range m {
			text += seg.Text()
		}
	case g.naive:
		s = split.Naive{}
		fallthrough
	default:
		if text, err = input(); err != nil {
			log.Fatalln(err)
		}
	}

	seg, err := code128.SplitWith(text, s, logger)
	if err != nil {
		log.Fatalln(err)
	}

	if g.chart != "" {
		cands, err := split.Optimal{}.Candidates(text)
		if err != nil {
			log.Fatalln(err)
		}
		if err := writeFile(g.chart, func(w io.Writer) error {
			return costChart(w, cands, seg)
		}); err != nil {
			log.Fatalln(err)
		}
	}

	if err := writeFile(g.fn, func(w io.Writer) error {
		return encoders[g.format](w, seg)
	}); err != nil {
		log.Fatalln(err)
	}
}

// writeFile calls f with the named file, or with standard output if
// fn is empty.
func writeFile(fn string, f func(io.Writer) error) error {
	if fn == "" {
		return f(os.Stdout)
	}
	w, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	err = f(w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}
