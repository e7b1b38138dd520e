// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"
)

func TestModes(t *testing.T) {
	for c := 0; c < 0x80; c++ {
		b := byte(c)
		if got, want := Is(b, Restricted), c <= 0x5f; got != want {
			t.Errorf("Is(%#02x, Restricted) = %v", c, got)
		}
		if got, want := Is(b, Extended), c >= 0x20; got != want {
			t.Errorf("Is(%#02x, Extended) = %v", c, got)
		}
		if got, want := Is(b, Paired), '0' <= c && c <= '9'; got != want {
			t.Errorf("Is(%#02x, Paired) = %v", c, got)
		}
	}
	for c := 0x80; c < 0x100; c++ {
		if m := Modes(byte(c)); m != 0 {
			t.Errorf("Modes(%#02x) = %#x", c, m)
		}
	}
	if Is('0', Mode(7)) {
		t.Error("Is accepts invalid mode")
	}
}

func TestParseMode(t *testing.T) {
	for _, tt := range []struct {
		s    string
		mode Mode
	}{
		{"a", Restricted},
		{"A", Restricted},
		{"restricted", Restricted},
		{"B", Extended},
		{"Extended", Extended},
		{"c", Paired},
		{"PAIRED", Paired},
	} {
		m, err := ParseMode(tt.s)
		if err != nil || m != tt.mode {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", tt.s, m, err, tt.mode)
		}
		if s := m.Set(); s != modeNames[tt.mode].set {
			t.Errorf("%v.Set() = %q", m, s)
		}
	}
	if _, err := ParseMode("D"); err == nil {
		t.Error("ParseMode(\"D\") succeeded")
	}
}

func TestNew(t *testing.T) {
	for _, tt := range []struct {
		text string
		mode Mode
		err  error
	}{
		{"HELLO\x01", Restricted, nil},
		{"Hello", Restricted, ErrRange},
		{"Hello", Extended, nil},
		{"\tx", Extended, ErrRange},
		{"1234", Paired, nil},
		{"123", Paired, ErrOddLength},
		{"12a4", Paired, ErrRange},
		{"", Extended, ErrEmpty},
		{"caf\xc3\xa9", Extended, ErrNotASCII},
	} {
		seg, err := New(tt.text, tt.mode)
		if !errors.Is(err, tt.err) {
			t.Errorf("New(%q, %v): error %v, want %v",
				tt.text, tt.mode, err, tt.err)
			continue
		}
		if err != nil {
			if seg != (Segment{}) {
				t.Errorf("New(%q, %v) = %v on error", tt.text, tt.mode, seg)
			}
			continue
		}
		if seg.Text() != tt.text || seg.Mode() != tt.mode || !seg.IsValid() {
			t.Errorf("New(%q, %v) = %v", tt.text, tt.mode, seg)
		}
	}
	if _, err := New("x", Mode(3)); !errors.As(err, new(ModeError)) {
		t.Errorf("New with invalid mode: %v", err)
	}
}

func TestSegmentErrorPos(t *testing.T) {
	_, err := New("ABCd", Restricted)
	var se *SegmentError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not a *SegmentError", err)
	}
	if se.Pos != 3 || se.Mode != Restricted || se.Text != "ABCd" {
		t.Errorf("SegmentError = %+v", *se)
	}
}

func TestInfer(t *testing.T) {
	for _, tt := range []struct {
		text string
		mode Mode
		err  error
	}{
		{"42", Paired, nil},
		{"123", Extended, nil},
		{"4", Extended, nil},
		{"ABC", Extended, nil},
		{"abc", Extended, nil},
		{"AB\x00", Restricted, nil},
		{"a\x00", 0, ErrRange},
		{"", 0, ErrEmpty},
		{"\xff", 0, ErrNotASCII},
	} {
		seg, err := Infer(tt.text)
		if !errors.Is(err, tt.err) {
			t.Errorf("Infer(%q): error %v, want %v", tt.text, err, tt.err)
		} else if err == nil && seg.Mode() != tt.mode {
			t.Errorf("Infer(%q) = %v, want mode %v", tt.text, seg, tt.mode)
		}
	}
}

func TestAppendPrepend(t *testing.T) {
	ab := MustNew("AB", Restricted)
	lower := MustNew("cd", Extended)
	digits := MustNew("12", Paired)
	ctl := MustNew("\x01", Restricted)

	if s, err := ab.Append(digits); err != nil || s != MustNew("AB12", Restricted) {
		t.Errorf("Append = %v, %v", s, err)
	}
	if s, err := ab.Prepend(ctl); err != nil || s != MustNew("\x01AB", Restricted) {
		t.Errorf("Prepend = %v, %v", s, err)
	}
	if s, err := lower.Prepend(digits); err != nil || s.Text() != "12cd" || s.Mode() != Extended {
		t.Errorf("Prepend = %v, %v", s, err)
	}
	for _, tt := range []struct {
		name string
		f    func() (Segment, error)
	}{
		{"restricted append lower", func() (Segment, error) { return ab.Append(lower) }},
		{"extended prepend control", func() (Segment, error) { return lower.Prepend(ctl) }},
		{"paired append letters", func() (Segment, error) { return digits.Append(ab) }},
		{"paired append odd", func() (Segment, error) { return digits.Append(MustNew("3", Extended)) }},
	} {
		s, err := tt.f()
		if !errors.Is(err, ErrIncompatible) {
			t.Errorf("%s: error %v, want ErrIncompatible", tt.name, err)
		}
		if s != (Segment{}) {
			t.Errorf("%s: got %v on error", tt.name, s)
		}
	}
	// receivers are unchanged
	if ab.Text() != "AB" || digits.Text() != "12" {
		t.Errorf("receiver modified: %v %v", ab, digits)
	}
}

func TestEncodedLength(t *testing.T) {
	for _, tt := range []struct {
		seg  Segment
		want int
	}{
		{MustNew("42", Paired), 2},
		{MustNew("123456", Paired), 6},
		{MustNew("4", Extended), 2},
		{MustNew("AB", Restricted), 4},
	} {
		if n := tt.seg.EncodedLength(); n != tt.want {
			t.Errorf("%v.EncodedLength() = %d, want %d", tt.seg, n, tt.want)
		}
	}
}

func TestSegmentString(t *testing.T) {
	if s := MustNew("a\"b", Extended).String(); s != `B"a\"b"` {
		t.Errorf("String() = %s", s)
	}
	if s := Mode(9).String(); s != "9" {
		t.Errorf("Mode(9).String() = %s", s)
	}
}
