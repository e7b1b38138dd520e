// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/unixdj/code128"
	"github.com/unixdj/code128/split"

	"gopkg.in/yaml.v3"
)

var encoders = map[string]func(io.Writer, split.Segmentation) error{
	"text":  writeText,
	"table": writeTable,
	"yaml":  writeYAML,
}

// writeText writes one line per segment: code set and quoted text.
func writeText(w io.Writer, seg split.Segmentation) error {
	b := bufio.NewWriter(w)
	for _, s := range seg {
		fmt.Fprintf(b, "%s %s\n", s.Mode().Set(), strconv.Quote(s.Text()))
	}
	return b.Flush()
}

func writeTable(w io.Writer, seg split.Segmentation) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "%-3s %-10s %4s  %s\n", "SET", "MODE", "LEN", "TEXT")
	for _, s := range seg {
		fmt.Fprintf(b, "%-3s %-10s %4d  %q\n",
			s.Mode().Set(), s.Mode(), s.Len(), s.Text())
	}
	fmt.Fprintf(b, "cost %d, %d symbols, %d with start, check "+
		"and stop, %d modules\n", seg.Cost(), seg.Symbols(),
		code128.Symbols(seg), code128.Width(seg))
	return b.Flush()
}

type yamlSegment struct {
	Set  string `yaml:"set"`
	Mode string `yaml:"mode"`
	Text string `yaml:"text"`
}

type yamlSplit struct {
	Text     string        `yaml:"text"`
	Cost     int           `yaml:"cost"`
	Symbols  int           `yaml:"symbols"`
	Width    int           `yaml:"width"`
	Segments []yamlSegment `yaml:"segments"`
}

func writeYAML(w io.Writer, seg split.Segmentation) error {
	v := yamlSplit{
		Text:     seg.Text(),
		Cost:     seg.Cost(),
		Symbols:  code128.Symbols(seg),
		Width:    code128.Width(seg),
		Segments: make([]yamlSegment, len(seg)),
	}
	for i, s := range seg {
		v.Segments[i] = yamlSegment{s.Mode().Set(), s.Mode().String(), s.Text()}
	}
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(v); err != nil {
		return err
	}
	return e.Close()
}
