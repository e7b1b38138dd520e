// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"
	"strings"

	"github.com/unixdj/code128/coding"
)

// Manual is a Strategy using the given segments.  Split checks that
// the segments spell the text and merges adjacent segments of the same
// mode.
type Manual []coding.Segment

// ParseManual returns a Manual from strings of the form "SET:text",
// where SET is a code set letter or mode name accepted by
// coding.ParseMode.
func ParseManual(a []string) (Manual, error) {
	m := make(Manual, len(a))
	for i, s := range a {
		name, text, ok := strings.Cut(s, ":")
		if !ok {
			return nil, fmt.Errorf("code128: %q: missing code set", s)
		}
		mode, err := coding.ParseMode(name)
		if err != nil {
			return nil, err
		}
		if m[i], err = coding.New(text, mode); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Split returns the segments of m.
func (m Manual) Split(text string) (Segmentation, error) {
	text, err := Prepare(text)
	if err != nil {
		return nil, err
	}
	seg := make(Segmentation, 0, len(m))
	for i, s := range m {
		if !s.IsValid() {
			return nil, fmt.Errorf("code128: invalid segment %d", i)
		}
		seg = append(seg, s)
	}
	if seg.Text() != text {
		return nil, ErrMismatch
	}
	return seg.merge()
}
