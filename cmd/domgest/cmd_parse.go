package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgallion1/domgest/internal/pipeline"
	"github.com/dgallion1/domgest/internal/source"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var view string
	var doMinify bool
	var pdfFallback bool
	var as string

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a document and dump its tree as JSON",
		Long: "Parse an .html, .md, .txt, .csv, .pdf or .docx file into a node forest.\n" +
			"Use --view to pick the raw forest, the assembled document, the heading\n" +
			"outline, or everything.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if filename == "-" {
				filename = "stdin" + as
			}
			if !source.IsSupportedExtension(filename) {
				return fmt.Errorf("unsupported file extension: %s", filename)
			}

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				Minify: doMinify,
				Source: source.Options{PDFFallbackPdftotext: pdfFallback},
			}
			res, err := pipeline.Parse(context.Background(), filename, data, opts, nil)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			var v any
			switch view {
			case "forest":
				v = res.Forest
			case "document":
				v = res.Document
			case "outline":
				v = res.Outline
			case "all":
				v = res
			default:
				return fmt.Errorf("unknown view: %s", view)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&view, "view", "v", "forest", "what to print (forest, document, outline, all)")
	cmd.Flags().BoolVar(&doMinify, "minify", true, "trim and join lines before tokenizing")
	cmd.Flags().BoolVar(&pdfFallback, "pdftotext", true, "fall back to pdftotext for unreadable PDFs")
	cmd.Flags().StringVar(&as, "as", ".html", "extension to assume when reading stdin")

	return cmd
}
