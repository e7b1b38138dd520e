// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"log/slog"
	"strings"

	"github.com/unixdj/code128/coding"
)

const (
	abModes  = coding.RestrictedBit | coding.ExtendedBit
	allModes = abModes | coding.PairedBit
)

// run is a substring and the modes it is encodable in.  A digit run
// has PairedBit set in modes.
type run struct {
	text  string
	modes byte
}

func (r run) digit() bool { return r.modes&coding.PairedBit != 0 }

// mode returns the mode for a non-digit run: Extended if possible,
// otherwise Restricted.
func (r run) mode() coding.Mode {
	if r.modes&coding.ExtendedBit != 0 {
		return Extended
	}
	return Restricted
}

func (r run) LogValue() slog.Value {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		if r.modes>>i&1 != 0 {
			b.WriteString(coding.Mode(i).Set())
		}
	}
	b.WriteByte(':')
	b.WriteString(r.text)
	return slog.StringValue(b.String())
}

type runs []run

func (rs runs) LogValue() slog.Value {
	a := make([]any, len(rs))
	for i, r := range rs {
		a[i] = r.LogValue().String()
	}
	return slog.AnyValue(a)
}

// span returns the length of the longest prefix of s consisting of
// bytes for which ok returns true.
func span(s string, ok func(byte) bool) int {
	i := 0
	for i < len(s) && ok(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool    { return coding.IsDigit(c) }
func isNonDigit(c byte) bool { return !coding.IsDigit(c) }

// inRange returns a function accepting non-digit bytes encodable in m.
func inRange(m coding.Mode) func(byte) bool {
	return func(c byte) bool { return !coding.IsDigit(c) && coding.Is(c, m) }
}

// detect splits text into digit runs and non-digit runs.  Non-digit
// spans are further split into maximal Restricted runs, starting at
// bytes up to 0x5f, and maximal Extended runs, starting elsewhere.
// text must be ASCII.
func detect(text string) runs {
	var rs runs
	add := func(s string) {
		m := byte(allModes)
		for i := 0; i < len(s); i++ {
			m &= coding.Modes(s[i])
		}
		rs = append(rs, run{s, m})
	}
	restricted, extended := inRange(Restricted), inRange(Extended)
	for s := text; s != ""; {
		if n := span(s, isDigit); n != 0 {
			add(s[:n])
			s = s[n:]
			continue
		}
		t := s[:span(s, isNonDigit)]
		s = s[len(t):]
		for t != "" {
			n := span(t, restricted)
			if n == 0 {
				n = span(t, extended)
			}
			add(t[:n])
			t = t[n:]
		}
	}
	return rs
}

// consolidate merges adjacent non-digit runs encodable in a common
// mode.  rs is modified in place.
func consolidate(rs runs) runs {
	out := rs[:0]
	for _, r := range rs {
		if n := len(out) - 1; n >= 0 && !r.digit() && !out[n].digit() {
			if m := out[n].modes & r.modes; m != 0 {
				out[n].text += r.text
				out[n].modes = m
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
