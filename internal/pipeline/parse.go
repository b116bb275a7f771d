package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dgallion1/domgest/internal/builder"
	"github.com/dgallion1/domgest/internal/doctree"
	"github.com/dgallion1/domgest/internal/document"
	"github.com/dgallion1/domgest/internal/dom"
	"github.com/dgallion1/domgest/internal/lexer"
	"github.com/dgallion1/domgest/internal/minify"
	"github.com/dgallion1/domgest/internal/outline"
	"github.com/dgallion1/domgest/internal/source"
)

// Options controls a single parse.
type Options struct {
	// Minify trims and joins the markup lines before tokenizing.
	Minify bool
	Source source.Options
}

// Result is everything produced for one document.
type Result struct {
	Title    string             `json:"title"`
	Lexemes  int                `json:"lexemes"`
	Build    builder.Stats      `json:"build"`
	Forest   *dom.Forest        `json:"forest"`
	Document *document.Document `json:"document"`
	Outline  *doctree.DocTree   `json:"outline"`
}

// Phase reports pipeline progress to an observer.
type Phase func(status JobStatus)

// Parse runs the full pipeline: load, minify, tokenize, build, assemble,
// outline. onPhase may be nil.
func Parse(ctx context.Context, filename string, data []byte, opts Options, onPhase Phase) (*Result, error) {
	report := func(s JobStatus) error {
		if onPhase != nil {
			onPhase(s)
		}
		return ctx.Err()
	}

	if err := report(StatusLoading); err != nil {
		return nil, err
	}
	src, err := source.ForFile(filename, opts.Source)
	if err != nil {
		return nil, err
	}
	lines, err := src.Load(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}

	markup := strings.Join(lines, "\n")
	if opts.Minify {
		markup = minify.Lines(lines)
	}

	if err := report(StatusTokenizing); err != nil {
		return nil, err
	}
	lexemes := lexer.Tokenize(markup)

	if err := report(StatusBuilding); err != nil {
		return nil, err
	}
	b := builder.New()
	for _, lx := range lexemes {
		b.Feed(lx)
	}

	if err := report(StatusAssembling); err != nil {
		return nil, err
	}
	doc := document.Assemble(b.Forest())
	tree := outline.Build(doc, source.BaseName(filename))

	return &Result{
		Title:    tree.Title,
		Lexemes:  len(lexemes),
		Build:    b.Stats(),
		Forest:   b.Forest(),
		Document: doc,
		Outline:  tree,
	}, nil
}
