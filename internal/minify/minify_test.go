package minify

import (
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	got := Lines([]string{"  <div>", "\t<p>Hello</p>  ", "", "</div>"})
	if want := "<div><p>Hello</p></div>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLines_Empty(t *testing.T) {
	if got := Lines(nil); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestReader(t *testing.T) {
	input := "<html>\n  <body>\r\n    <p>one two</p>\n  </body>\n</html>\n"
	got, err := Reader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "<html><body><p>one two</p></body></html>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReader_InnerSpacesKept(t *testing.T) {
	got, err := Reader(strings.NewReader("  a  b  \n c "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a  bc" {
		t.Errorf("expected %q, got %q", "a  bc", got)
	}
}

func TestReadLines(t *testing.T) {
	got, err := ReadLines(strings.NewReader("a\r\n\nb\nc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "", "b", "c"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReader_LongSingleLine(t *testing.T) {
	body := strings.Repeat("x", 5<<20)
	got, err := Reader(strings.NewReader("  <div>" + body + "</div>  \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(body)+len("<div></div>") {
		t.Errorf("expected %d bytes, got %d", len(body)+len("<div></div>"), len(got))
	}
}
