// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"context"
	"log/slog"

	"github.com/unixdj/code128/coding"
)

/*
Optimal is a Strategy returning a split with the smallest cost.

The text is first split into runs: maximal digit runs, and non-digit
runs encodable in Restricted or Extended mode.  Adjacent non-digit runs
encodable in a common mode are merged.

Each digit run is then either kept in Paired mode or absorbed into its
neighbours.  A run is worth encoding in Paired mode if it has at least
the minimum length for its position:

	sole run            2, or 4 and more
	first or last run   4
	any other run       6

Shorter runs are absorbed into the following run if first, into the
preceding run otherwise, or become an Extended segment if sole.  Odd
length Paired runs give one digit away: the first run gives its last
digit to the following run, the last run gives its first digit to the
preceding run.  Other runs may do either.  Each such choice produces
a separate candidate, in which only that run gives its first digit
back; the base candidate gives last digits forward everywhere.
Choices are not combined, so the number of candidates is linear in
the number of runs.

Finally, the candidate with the smallest cost is returned, the first
one on ties.

If Logger is not nil, trace messages are logged at LevelTrace.
*/
type Optimal struct {
	Logger *slog.Logger
}

// A Candidate is a split considered by Optimal.
type Candidate struct {
	Segments Segmentation
	Cost     int
	Run      int // run giving its first digit back, or -1
}

// position of a run in the run list
type position int

const (
	interior position = iota
	first
	last
	sole
)

var positionNames = [...]string{"interior", "first", "last", "sole"}

func (p position) String() string { return positionNames[p] }

func positionOf(i, n int) position {
	switch {
	case n == 1:
		return sole
	case i == 0:
		return first
	case i == n-1:
		return last
	}
	return interior
}

// qualifies reports whether a digit run of length n at position p is
// long enough to be encoded in Paired mode.
func qualifies(p position, n int) bool {
	switch p {
	case sole:
		return n == 2 || n >= 4
	case first, last:
		return n >= 4
	}
	return n >= 6
}

// ambiguous reports whether a digit run of length n at position p may
// give away a digit in either direction.
func ambiguous(p position, n int) bool {
	return (p == interior || p == sole) && n&1 != 0 && qualifies(p, n)
}

// build resolves the digit runs in rs and returns the split.  The
// digit run at index alt gives its first digit back.  rs is not
// modified.
func build(rs runs, alt int) (Segmentation, error) {
	out := make(runs, 0, len(rs)+2)
	var carry string // digits to prepend to the next run
	for i, r := range rs {
		if !r.digit() {
			r.text = carry + r.text
			carry = ""
			out = append(out, r)
			continue
		}
		p, n := positionOf(i, len(rs)), len(r.text)
		switch {
		case !qualifies(p, n):
			r.modes = abModes
			switch p {
			case sole:
				out = append(out, r)
			case first:
				carry = r.text
			default:
				out[len(out)-1].text += r.text
			}
			continue
		case n&1 == 0:
		case p == first || p != last && i != alt:
			carry = r.text[n-1:]
			r.text = r.text[:n-1]
		case len(out) != 0:
			out[len(out)-1].text += r.text[:1]
			r.text = r.text[1:]
		default:
			out = append(out, run{r.text[:1], abModes})
			r.text = r.text[1:]
		}
		out = append(out, r)
	}
	if carry != "" {
		out = append(out, run{carry, abModes})
	}
	out = consolidate(out)

	seg := make(Segmentation, len(out))
	for i, r := range out {
		m := Paired
		if !r.digit() {
			m = r.mode()
		}
		var err error
		if seg[i], err = coding.New(r.text, m); err != nil {
			return nil, err
		}
	}
	return seg.merge()
}

func (o Optimal) trace(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Log(context.Background(), LevelTrace, msg, args...)
	}
}

// Candidates returns the candidate splits of text considered by Split,
// in order of preference.
func (o Optimal) Candidates(text string) ([]Candidate, error) {
	text, err := Prepare(text)
	if err != nil {
		return nil, err
	}
	rs := detect(text)
	o.trace("runs detected", "text", text, "runs", rs)
	rs = consolidate(rs)
	o.trace("runs consolidated", "text", text, "runs", rs)

	alts := []int{-1}
	for i, r := range rs {
		if p := positionOf(i, len(rs)); r.digit() && ambiguous(p, len(r.text)) {
			alts = append(alts, i)
		}
	}
	cands := make([]Candidate, 0, len(alts))
	for _, alt := range alts {
		seg, err := build(rs, alt)
		if err != nil {
			return nil, err
		}
		c := Candidate{Segments: seg, Cost: seg.Cost(), Run: alt}
		o.trace("candidate", "candidate", len(cands), "run", alt,
			"cost", c.Cost, "segments", seg.String())
		cands = append(cands, c)
	}
	if len(cands) == 0 {
		return nil, ErrNoCandidates
	}
	return cands, nil
}

// Split returns the split of text with the smallest cost.
func (o Optimal) Split(text string) (Segmentation, error) {
	cands, err := o.Candidates(text)
	if err != nil {
		return nil, err
	}
	best := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].Cost < cands[best].Cost {
			best = i
		}
	}
	o.trace("selected", "candidate", best, "cost", cands[best].Cost,
		"segments", cands[best].Segments.String())
	return cands[best].Segments, nil
}
