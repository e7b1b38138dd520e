// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package code128 splits text into Code 128 code set segments.

Split uses split.Optimal and falls back to split.Naive if the optimal
split fails internally.  Packages coding and split provide the
building blocks.
*/
package code128 // import "github.com/unixdj/code128"

import (
	"errors"
	"log/slog"

	"github.com/unixdj/code128/split"
)

// Symbol counts and widths in modules.
const (
	Overhead     = 3  // start, check and stop symbols
	SymbolWidth  = 11 // modules per symbol
	StopWidth    = 13 // modules in the stop symbol
	QuietZone    = 10 // minimum quiet zone on each side
	maxTextBytes = 1 << 16
)

var ErrLongText = errors.New("code128: text too long")

// Split returns the optimal split of text.
func Split(text string) (split.Segmentation, error) {
	return SplitWith(text, split.Optimal{}, nil)
}

// SplitWith splits text using s.  If s is split.Optimal with no
// Logger, l is used for trace messages.  If s fails with
// split.ErrNoCandidates, the text is split with split.Naive.
func SplitWith(text string, s split.Strategy, l *slog.Logger) (split.Segmentation, error) {
	if len(text) > maxTextBytes {
		return nil, ErrLongText
	}
	if o, ok := s.(split.Optimal); ok && o.Logger == nil {
		o.Logger = l
		s = o
	}
	seg, err := s.Split(text)
	if errors.Is(err, split.ErrNoCandidates) {
		if l != nil {
			l.Warn("falling back to naive split", "error", err)
		}
		seg, err = split.Naive{}.Split(text)
	}
	return seg, err
}

// Symbols returns the number of symbols in a barcode encoding seg,
// including start, check and stop symbols.
func Symbols(seg split.Segmentation) int {
	return seg.Symbols() + Overhead
}

// Width returns the width in modules of a barcode encoding seg,
// excluding quiet zones.
func Width(seg split.Segmentation) int {
	return (Symbols(seg)-1)*SymbolWidth + StopWidth
}
