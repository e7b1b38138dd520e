// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/unixdj/code128/split"

	"gopkg.in/yaml.v3"
)

func TestConvert(t *testing.T) {
	for _, tt := range []struct {
		in          string
		charset     string
		fold, upper bool
		want        string
	}{
		{"café 42", "", false, false, "café 42"},
		{"café 42", "", true, false, "cafe 42"},
		{"café 42", "", true, true, "CAFE 42"},
		{"caf\xe9", "ISO-8859-1", false, false, "café"},
		{"caf\xe9", "latin1", true, true, "CAFE"},
		{"Stra\xdfe", "windows-1252", false, true, "STRASSE"},
	} {
		got, err := convert([]byte(tt.in), tt.charset, tt.fold, tt.upper)
		if err != nil {
			t.Errorf("convert(%q, %q): %v", tt.in, tt.charset, err)
		} else if got != tt.want {
			t.Errorf("convert(%q, %q, %v, %v) = %q, want %q",
				tt.in, tt.charset, tt.fold, tt.upper, got, tt.want)
		}
	}
	if _, err := convert([]byte("x"), "no-such-charset", false, false); err == nil {
		t.Error("unknown charset accepted")
	}
}

func splitOrFatal(t *testing.T, text string) split.Segmentation {
	t.Helper()
	seg, err := split.Optimal{}.Split(text)
	if err != nil {
		t.Fatal(err)
	}
	return seg
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	if err := encoders["text"](&b, splitOrFatal(t, "AB123456\tCD")); err != nil {
		t.Fatal(err)
	}
	const want = "B \"AB\"\nC \"123456\"\nA \"\\tCD\"\n"
	if b.String() != want {
		t.Errorf("text output %q, want %q", b.String(), want)
	}
}

func TestWriteTable(t *testing.T) {
	var b bytes.Buffer
	if err := encoders["table"](&b, splitOrFatal(t, "42")); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, s := range []string{"SET", "paired", `"42"`, "cost 2, 1 symbols, 4 with start"} {
		if !strings.Contains(out, s) {
			t.Errorf("table output lacks %q:\n%s", s, out)
		}
	}
}

func TestWriteYAML(t *testing.T) {
	var b bytes.Buffer
	if err := encoders["yaml"](&b, splitOrFatal(t, "AB123456CD")); err != nil {
		t.Fatal(err)
	}
	var v yamlSplit
	if err := yaml.Unmarshal(b.Bytes(), &v); err != nil {
		t.Fatalf("%v:\n%s", err, b.String())
	}
	if v.Text != "AB123456CD" || v.Cost != 18 || v.Symbols != 12 ||
		len(v.Segments) != 3 || v.Segments[1].Set != "C" ||
		v.Segments[1].Text != "123456" {
		t.Errorf("yaml output decodes to %+v", v)
	}
}

func TestCostChart(t *testing.T) {
	const text = "X1234567y"
	cands, err := split.Optimal{}.Candidates(text)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := costChart(&b, cands, cands[0].Segments); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "<svg") {
		t.Errorf("chart is not SVG: %.64q", b.String())
	}
}
