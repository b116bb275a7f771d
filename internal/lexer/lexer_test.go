package lexer

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"element with text", "<a>x</a>", []string{"<a>", "x", "</a>"}},
		{"plain text", "text", []string{"text"}},
		{"single char", "x", []string{"x"}},
		{"text around tag", "a<b>c", []string{"a", "<b>", "c"}},
		{"adjacent tags", "<a><b>", []string{"<a>", "<b>"}},
		{"unterminated tag", "<div", []string{"<div"}},
		{"lone open bracket", "<", []string{"<"}},
		{"double open bracket", "<<", []string{"<", "<"}},
		{"tag interrupted by tag", "<div<p>", []string{"<div", "<p>"}},
		{"stray close bracket in text", "a>b", []string{"a>", "b"}},
		{"lone close bracket", ">", []string{">"}},
		{"close bracket after tag", "<a>>", []string{"<a>", ">"}},
		{"multibyte text", "héllo<p>wörld</p>", []string{"héllo", "<p>", "wörld", "</p>"}},
		{"whitespace kept", " <b> x </b> ", []string{" ", "<b>", " x ", "</b>", " "}},
		{
			"nested document",
			"<html><body><p>Hi</p><br></body></html>",
			[]string{"<html>", "<body>", "<p>", "Hi", "</p>", "<br>", "</body>", "</html>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("expected no lexemes for empty input, got %q", got)
	}
}

func TestTokenize_Lossless(t *testing.T) {
	const alphabet = "<>/ab \né"
	runes := []rune(alphabet)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		var sb strings.Builder
		n := rng.Intn(24)
		for j := 0; j < n; j++ {
			sb.WriteRune(runes[rng.Intn(len(runes))])
		}
		input := sb.String()

		lexemes := Tokenize(input)
		if got := strings.Join(lexemes, ""); got != input {
			t.Fatalf("lexemes of %q rejoin to %q", input, got)
		}
		for _, lx := range lexemes {
			if lx == "" {
				t.Fatalf("empty lexeme in %q for input %q", lexemes, input)
			}
		}
	}
}

func TestTokenize_TagsAreDelimited(t *testing.T) {
	for _, lx := range Tokenize("<p>one<br>two</p><hr>") {
		if IsTag(lx) && !strings.HasSuffix(lx, ">") {
			t.Errorf("tag lexeme %q is not terminated", lx)
		}
		if !IsTag(lx) && strings.ContainsRune(lx, '<') {
			t.Errorf("text lexeme %q contains a tag start", lx)
		}
	}
}
