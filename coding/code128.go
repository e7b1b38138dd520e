// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements Code 128 code sets and segments.
package coding // import "github.com/unixdj/code128/coding"

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmpty        = errors.New("code128: empty text")
	ErrNotASCII     = errors.New("code128: non-ASCII text")
	ErrRange        = errors.New("code128: character outside code set")
	ErrOddLength    = errors.New("code128: odd length paired segment")
	ErrIncompatible = errors.New("code128: incompatible segments")
)

// A Mode is a Code 128 code set.  The three modes are distinct labels
// rather than a hierarchy: a string may be encodable in more than one
// mode, but a Segment is encoded in exactly one.
type Mode int8

// Code sets.
const (
	Restricted Mode = iota // code set A: 0x00-0x5f, control codes
	Extended               // code set B: 0x20-0x7f, lower case
	Paired                 // code set C: digit pairs

	numModes
)

// Bit fields of modes, as returned by Modes.
const (
	RestrictedBit = 1 << Restricted
	ExtendedBit   = 1 << Extended
	PairedBit     = 1 << Paired
)

var modeNames = [numModes]struct{ name, set string }{
	{"restricted", "A"},
	{"extended", "B"},
	{"paired", "C"},
}

func (m Mode) String() string {
	if m.valid() {
		return modeNames[m].name
	}
	return strconv.Itoa(int(m))
}

// Set returns the code set letter of m: "A", "B" or "C".
func (m Mode) Set() string {
	if m.valid() {
		return modeNames[m].set
	}
	return "?"
}

func (m Mode) valid() bool { return 0 <= m && m < numModes }

// ParseMode returns the mode named by s, either by name or by code set
// letter, ignoring case.
func ParseMode(s string) (Mode, error) {
	for m, v := range modeNames {
		if strings.EqualFold(s, v.name) || strings.EqualFold(s, v.set) {
			return Mode(m), nil
		}
	}
	return -1, fmt.Errorf("code128: unknown code set %q", s)
}

// ModeError represents an invalid Mode.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("code128: invalid mode %d", int8(e))
}

// Modes returns the bit field of modes in which c is encodable, with
// bit 1<<m set for each mode m.  Modes returns 0 for bytes above 0x7f.
func Modes(c byte) byte {
	if c < 0x80 {
		return chartbl[c]
	}
	return 0
}

// Is reports whether c is encodable in mode m.
func Is(c byte, m Mode) bool {
	return m.valid() && Modes(c)>>m&1 != 0
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool { return Modes(c)&PairedBit != 0 }

// CheckASCII returns the position of the first byte in s above 0x7f,
// or -1.
func CheckASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}
	return -1
}

// Length returns the encoded length of n characters in mode m, in
// half symbols.  Restricted and Extended encode one character per
// symbol, Paired encodes two.
func (m Mode) Length(n int) int {
	if m == Paired {
		return n
	}
	return n * 2
}

// A Segment is a non-empty ASCII string and the mode it is encoded in.
// Segments are immutable.  The zero Segment is not valid.
type Segment struct {
	text string
	mode Mode
}

// SegmentError represents text not encodable in a mode.
type SegmentError struct {
	Text string // offending text
	Mode Mode   // requested mode
	Pos  int    // position of the offending byte, or -1
	Err  error  // ErrRange, ErrOddLength or ErrIncompatible
}

func (e *SegmentError) Error() string {
	switch {
	case e.Err == ErrOddLength:
		return fmt.Sprintf("code128: odd length %s string %#q",
			e.Mode, e.Text)
	case e.Pos >= 0:
		return fmt.Sprintf("code128: byte %#02x at %d not encodable as %s in %#q",
			e.Text[e.Pos], e.Pos, e.Mode, e.Text)
	case e.Err == ErrIncompatible:
		return fmt.Sprintf("code128: %#q incompatible with %s",
			e.Text, e.Mode)
	}
	return fmt.Sprintf("code128: non-%s string %#q", e.Mode, e.Text)
}

func (e *SegmentError) Unwrap() error { return e.Err }

// check validates s for mode m, returning the position of the first
// unencodable byte, or -1 if there is none.
func check(s string, m Mode) int {
	bit := byte(1) << m
	for i := 0; i < len(s); i++ {
		if Modes(s[i])&bit == 0 {
			return i
		}
	}
	return -1
}

// validate returns an error unless s is a valid m mode string.  err
// is reported for range failures.
func validate(s string, m Mode, err error) error {
	if !m.valid() {
		return ModeError(m)
	} else if s == "" {
		return ErrEmpty
	} else if i := CheckASCII(s); i >= 0 {
		return ErrNotASCII
	} else if i := check(s, m); i >= 0 {
		return &SegmentError{s, m, i, err}
	} else if m == Paired && len(s)&1 != 0 {
		return &SegmentError{s, m, -1, ErrOddLength}
	}
	return nil
}

// New returns a Segment encoding text in mode m.
func New(text string, m Mode) (Segment, error) {
	if err := validate(text, m, ErrRange); err != nil {
		return Segment{}, err
	}
	return Segment{text, m}, nil
}

// MustNew is like New but panics on error.
func MustNew(text string, m Mode) Segment {
	seg, err := New(text, m)
	if err != nil {
		panic(err)
	}
	return seg
}

// Infer returns a Segment encoding text in the narrowest applicable
// mode: Paired for even length digit strings, else Extended, else
// Restricted.
func Infer(text string) (Segment, error) {
	if text == "" {
		return Segment{}, ErrEmpty
	} else if i := CheckASCII(text); i >= 0 {
		return Segment{}, ErrNotASCII
	}
	common := byte(RestrictedBit | ExtendedBit | PairedBit)
	for i := 0; i < len(text); i++ {
		common &= Modes(text[i])
	}
	switch {
	case common&PairedBit != 0 && len(text)&1 == 0:
		return Segment{text, Paired}, nil
	case common&ExtendedBit != 0:
		return Segment{text, Extended}, nil
	case common&RestrictedBit != 0:
		return Segment{text, Restricted}, nil
	}
	// Mixed control codes and lower case.  Report the first byte
	// outside Extended.
	return Segment{}, &SegmentError{text, Extended,
		check(text, Extended), ErrRange}
}

// Text returns the segment's text.
func (seg Segment) Text() string { return seg.text }

// Mode returns the segment's mode.
func (seg Segment) Mode() Mode { return seg.mode }

// Len returns the length of the segment's text in bytes.
func (seg Segment) Len() int { return len(seg.text) }

// Equal reports whether seg and o have the same text and mode.
func (seg Segment) Equal(o Segment) bool { return seg == o }

// IsValid reports whether seg is encodable.  Only the zero Segment
// and Segments constructed as struct literals in this package may be
// invalid.
func (seg Segment) IsValid() bool {
	return validate(seg.text, seg.mode, ErrRange) == nil
}

// EncodedLength returns the encoded length of seg in half symbols,
// excluding any code set switch.
func (seg Segment) EncodedLength() int {
	return seg.mode.Length(len(seg.text))
}

// String returns the code set letter followed by the quoted text.
func (seg Segment) String() string {
	return seg.mode.Set() + strconv.Quote(seg.text)
}

// Append returns a Segment containing seg's text followed by o's text,
// in seg's mode.  The mode of o is ignored.  If the result is not
// encodable in seg's mode, Append returns an error wrapping
// ErrIncompatible.
func (seg Segment) Append(o Segment) (Segment, error) {
	return seg.join(seg.text + o.text)
}

// Prepend returns a Segment containing o's text followed by seg's
// text, in seg's mode.  Errors are as for Append.
func (seg Segment) Prepend(o Segment) (Segment, error) {
	return seg.join(o.text + seg.text)
}

func (seg Segment) join(s string) (Segment, error) {
	if err := validate(s, seg.mode, ErrIncompatible); err != nil {
		var se *SegmentError
		if errors.As(err, &se) {
			se.Err = ErrIncompatible
		}
		return Segment{}, err
	}
	return Segment{s, seg.mode}, nil
}
