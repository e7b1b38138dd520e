// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// convert decodes b from charset (UTF-8 if empty), optionally strips
// accents and converts to upper case.  Characters left outside ASCII
// are rejected by the splitter.
func convert(b []byte, charset string, fold, upper bool) (string, error) {
	var t []transform.Transformer
	if charset != "" {
		e, err := ianaindex.IANA.Encoding(charset)
		if err != nil {
			return "", err
		} else if e == nil {
			return "", fmt.Errorf("%s: unsupported character encoding",
				charset)
		}
		t = append(t, e.NewDecoder())
	}
	if fold {
		t = append(t, norm.NFD, runes.Remove(runes.In(unicode.Mn)),
			norm.NFC)
	}
	if upper {
		t = append(t, cases.Upper(language.Und))
	}
	if len(t) == 0 {
		return string(b), nil
	}
	out, _, err := transform.Bytes(transform.Chain(t...), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
