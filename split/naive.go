// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import "github.com/unixdj/code128/coding"

// Naive is a Strategy splitting text only where a character is not
// encodable in the current mode.  Each segment extends as long as its
// characters share a mode, and is encoded in Extended mode if
// possible, otherwise in Restricted mode.  Paired mode is not used.
type Naive struct{}

// Split returns a split of text without code set C.
func (Naive) Split(text string) (Segmentation, error) {
	text, err := Prepare(text)
	if err != nil {
		return nil, err
	}
	var seg Segmentation
	for s := text; s != ""; {
		m := byte(abModes)
		n := 0
		for ; n < len(s); n++ {
			mm := m & coding.Modes(s[n])
			if mm == 0 {
				break
			}
			m = mm
		}
		t, err := coding.New(s[:n], run{modes: m}.mode())
		if err != nil {
			return nil, err
		}
		seg = append(seg, t)
		s = s[n:]
	}
	return seg, nil
}
