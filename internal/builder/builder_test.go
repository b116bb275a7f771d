package builder

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/domgest/internal/dom"
	"github.com/dgallion1/domgest/internal/lexer"
	"github.com/google/go-cmp/cmp"
)

// outline renders the forest as one line per node: depth-indented tag names
// and quoted text.
func outline(f *dom.Forest) []string {
	var lines []string
	f.Walk(func(h dom.Handle, depth int) bool {
		n := f.Node(h)
		pad := strings.Repeat("  ", depth)
		if n.Kind == dom.Text {
			lines = append(lines, fmt.Sprintf("%s%q", pad, n.Text))
		} else {
			lines = append(lines, pad+n.TagName)
		}
		return true
	})
	return lines
}

func parse(input string) *dom.Forest {
	return Build(lexer.Tokenize(input))
}

func TestBuild_EmptyInput(t *testing.T) {
	f := Build(nil)
	if f.Len() != 0 {
		t.Errorf("expected no nodes, got %d", f.Len())
	}
	if len(f.Roots()) != 0 {
		t.Errorf("expected no roots, got %d", len(f.Roots()))
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "balanced nesting",
			input: "<div><p>a</p><p>b</p></div>",
			want:  []string{"DIV", "  P", `    "a"`, "  P", `    "b"`},
		},
		{
			name:  "void element does not descend",
			input: "<br><div>x</div>",
			want:  []string{"BR", "DIV", `  "x"`},
		},
		{
			name:  "void element inside element",
			input: "<p>a<br>b</p>",
			want:  []string{"P", `  "a"`, "  BR", `  "b"`},
		},
		{
			name:  "mismatch closes inner element",
			input: "<a><b>x</a><c></c>",
			want:  []string{"A", "  B", `    "x"`, "C"},
		},
		{
			name:  "spurious closer ignored",
			input: "<div>x</span></div>",
			want:  []string{"DIV", `  "x"`},
		},
		{
			name:  "leading spurious closer",
			input: "</p><p>x</p>",
			want:  []string{"P", `  "x"`},
		},
		{
			name:  "unclosed element keeps descendants",
			input: "<ul><li>one<li>two",
			want:  []string{"UL", "  LI", `    "one"`, "    LI", `      "two"`},
		},
		{
			name:  "closer case is ignored",
			input: "<DIV>x</div>y",
			want:  []string{"DIV", `  "x"`, `"y"`},
		},
		{
			name:  "text roots",
			input: "a<b>c</b>d",
			want:  []string{`"a"`, "B", `  "c"`, `"d"`},
		},
		{
			name:  "closing a void tag is spurious",
			input: "<p><br></br>x</p>",
			want:  []string{"P", "  BR", `  "x"`},
		},
		{
			name:  "nearest same-name ancestor is closed",
			input: "<div><div>a</div>b</div>c",
			want:  []string{"DIV", "  DIV", `    "a"`, `  "b"`, `"c"`},
		},
		{
			name:  "unterminated trailing tag",
			input: "<p>x</p><div",
			want:  []string{"P", `  "x"`, "DIV"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outline(parse(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestBuild_MismatchRecoveryReturnsToRoot(t *testing.T) {
	f := parse("<a><b>x</a>y")
	roots := f.Roots()
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	a := f.Node(roots[0])
	if a.TagName != "A" || len(a.Children) != 1 {
		t.Fatalf("expected A with one child, got %+v", a)
	}
	b := f.Node(a.Children[0])
	if b.TagName != "B" || len(b.Children) != 1 {
		t.Fatalf("expected B with one child, got %+v", b)
	}
	if x := f.Node(b.Children[0]); x.Kind != dom.Text || x.Text != "x" {
		t.Errorf("expected text x under B, got %+v", x)
	}
	if y := f.Node(roots[1]); y.Kind != dom.Text || y.Text != "y" {
		t.Errorf("expected trailing text y as a root, got %+v", y)
	}
}

func TestBuild_OpenStackRemovesOnlyMatchedEntry(t *testing.T) {
	b := New()
	for _, lx := range lexer.Tokenize("<a><b><c>x</a>") {
		b.Feed(lx)
	}
	if diff := cmp.Diff([]string{"B", "C"}, b.Open()); diff != "" {
		t.Errorf("open stack mismatch (-want +got):\n%s", diff)
	}

	// B is still on the stack but no longer an ancestor of the insertion
	// point, so its closer leaves the insertion point alone.
	b.Feed("</b>")
	b.Feed("y")
	if diff := cmp.Diff([]string{"C"}, b.Open()); diff != "" {
		t.Errorf("open stack mismatch (-want +got):\n%s", diff)
	}
	roots := b.Forest().Roots()
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}

	s := b.Stats()
	if s.Recovered != 1 || s.Orphaned != 1 || s.Unclosed != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestBuild_Stats(t *testing.T) {
	b := New()
	for _, lx := range lexer.Tokenize("<div><p>x</span></div><a><b>y</a><br>") {
		b.Feed(lx)
	}
	want := Stats{
		Lexemes:   10,
		Nodes:     7,
		Roots:     3,
		Recovered: 2,
		Spurious:  1,
		Unclosed:  2,
	}
	if diff := cmp.Diff(want, b.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_EveryNodeReachable(t *testing.T) {
	inputs := []string{
		"<a><b><c>x</a></c></b>y",
		"</x></y><p>z",
		"<div><span>a</div></span>b<br>c",
		"<<>><a>>",
	}
	for _, input := range inputs {
		f := parse(input)
		seen := 0
		f.Walk(func(dom.Handle, int) bool {
			seen++
			return true
		})
		if seen != f.Len() {
			t.Errorf("%q: reached %d of %d nodes", input, seen, f.Len())
		}
		f.Walk(func(h dom.Handle, _ int) bool {
			if f.Node(h).Kind == dom.Element && lexer.IsVoid(f.TagName(h)) && len(f.Children(h)) > 0 {
				t.Errorf("%q: void element %s has children", input, f.TagName(h))
			}
			return true
		})
	}
}

func TestBuild_DisplacedCloser(t *testing.T) {
	b := New()
	for _, lx := range lexer.Tokenize("<p><b><p>x</b></p>y") {
		b.Feed(lx)
	}

	// </b> closes B and the inner P with it, leaving the outer P as the
	// insertion point. </p> then matches the inner P's stack entry but
	// closes the outer P.
	want := []string{"P", "  B", "    P", `      "x"`, `"y"`}
	if diff := cmp.Diff(want, outline(b.Forest())); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"P"}, b.Open()); diff != "" {
		t.Errorf("open stack mismatch (-want +got):\n%s", diff)
	}

	s := b.Stats()
	if s.Recovered != 1 || s.Matched != 1 || s.Displaced != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
}
