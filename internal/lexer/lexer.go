// Package lexer splits markup into tag and text lexemes and classifies them.
package lexer

import (
	"strings"
)

// Tokenize scans input once and returns its lexemes in order. Every lexeme is
// either a tag (starting with '<') or a run of text between tags.
// Concatenating the result reproduces input exactly.
func Tokenize(input string) []string {
	var (
		lexemes   []string
		buf       strings.Builder
		capturing bool
	)

	emit := func() {
		lexemes = append(lexemes, buf.String())
		buf.Reset()
	}

	last := len(input) - 1
	for i := 0; i < len(input); i++ {
		c := input[i]

		switch {
		case c == '<':
			if capturing {
				emit()
			}
			capturing = true
		case c == '>':
			buf.WriteByte(c)
			emit()
			capturing = false
			continue
		case !capturing:
			capturing = true
		}

		buf.WriteByte(c)

		// Unterminated tag or trailing text.
		if i == last {
			emit()
			capturing = false
		}
	}

	return lexemes
}
