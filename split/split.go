// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package split splits ASCII strings into Code 128 segments.

Code 128 has three code sets.  Restricted (A) encodes 0x00-0x5f,
Extended (B) encodes 0x20-0x7f, and Paired (C) encodes two digits per
symbol.  Switching between code sets costs one symbol.  A Strategy
chooses the code set for each part of a string; Optimal minimises the
number of symbols.

Costs are measured in half symbols: two per Restricted or Extended
character, one per Paired digit and two per code set switch.
*/
package split // import "github.com/unixdj/code128/split"

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/unixdj/code128/coding"
)

// Code sets.
const (
	Restricted = coding.Restricted
	Extended   = coding.Extended
	Paired     = coding.Paired
)

var (
	ErrEmpty        = coding.ErrEmpty
	ErrNotASCII     = coding.ErrNotASCII
	ErrNoCandidates = errors.New("code128: no candidate splits")
	ErrMismatch     = errors.New("code128: segments do not match text")
)

// LevelTrace is the slog level of trace messages logged by Optimal.
const LevelTrace = slog.LevelDebug - 4

// A Strategy splits text into segments.
//
// Split returns segments covering text exactly once, in order, after
// surrounding white space and NUL bytes are trimmed.  It fails with
// ErrNotASCII if text contains bytes above 0x7f, and with ErrEmpty if
// nothing is left after trimming.
type Strategy interface {
	Split(text string) (Segmentation, error)
}

// cutset is the set of bytes trimmed from the input.
const cutset = " \t\n\r\x00\x0b"

// Prepare validates text and returns it trimmed.
func Prepare(text string) (string, error) {
	if i := coding.CheckASCII(text); i >= 0 {
		return "", fmt.Errorf("%w: byte %#02x at %d", ErrNotASCII, text[i], i)
	}
	text = strings.Trim(text, cutset)
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// Segmentation is an ordered list of segments.
type Segmentation []coding.Segment

// Cost returns the encoded length of s in half symbols, including
// code set switches.
func (s Segmentation) Cost() int {
	if len(s) == 0 {
		return 0
	}
	n := 2 * (len(s) - 1)
	for _, seg := range s {
		n += seg.EncodedLength()
	}
	return n
}

// Symbols returns the number of data and code set switch symbols
// needed to encode s.
func (s Segmentation) Symbols() int { return (s.Cost() + 1) / 2 }

// Text returns the concatenated text of s.
func (s Segmentation) Text() string {
	var b strings.Builder
	for _, seg := range s {
		b.WriteString(seg.Text())
	}
	return b.String()
}

func (s Segmentation) String() string {
	a := make([]string, len(s))
	for i, seg := range s {
		a[i] = seg.String()
	}
	return strings.Join(a, " ")
}

// Equal reports whether s and t contain equal segments.
func (s Segmentation) Equal(t Segmentation) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}

// Valid returns an error unless s is a well formed split of text:
// valid non-empty segments covering text, no two adjacent segments
// in the same mode.
func (s Segmentation) Valid(text string) error {
	for i, seg := range s {
		if !seg.IsValid() {
			return fmt.Errorf("code128: invalid segment %d: %v", i, seg)
		}
		if i > 0 && s[i-1].Mode() == seg.Mode() {
			return fmt.Errorf("code128: segments %d and %d both %v",
				i-1, i, seg.Mode())
		}
	}
	if s.Text() != text {
		return ErrMismatch
	}
	return nil
}

// merge merges adjacent segments of the same mode in place.
func (s Segmentation) merge() (Segmentation, error) {
	if len(s) == 0 {
		return s, nil
	}
	out := s[:1]
	for _, seg := range s[1:] {
		last := &out[len(out)-1]
		if last.Mode() != seg.Mode() {
			out = append(out, seg)
			continue
		}
		var err error
		if *last, err = last.Append(seg); err != nil {
			return nil, err
		}
	}
	return out, nil
}
