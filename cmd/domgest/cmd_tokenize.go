package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/domgest/internal/lexer"
	"github.com/dgallion1/domgest/internal/minify"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var outputFormat string
	var doMinify bool

	cmd := &cobra.Command{
		Use:   "tokenize <file|->",
		Short: "Split markup into tag and text lexemes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			markup := string(data)
			if doMinify {
				markup, err = minify.Reader(bytes.NewReader(data))
				if err != nil {
					return err
				}
			}

			lexemes := lexer.Tokenize(markup)
			out := cmd.OutOrStdout()
			switch outputFormat {
			case "json":
				type item struct {
					Text string `json:"text"`
					Kind string `json:"kind"`
					Void bool   `json:"void,omitempty"`
				}
				items := make([]item, 0, len(lexemes))
				for _, lx := range lexemes {
					items = append(items, item{
						Text: lx,
						Kind: lexer.Classify(lx).String(),
						Void: lexer.IsTag(lx) && lexer.IsVoid(lexer.TagName(lx)),
					})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(items); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "lines":
				for _, lx := range lexemes {
					fmt.Fprintf(out, "%-12s %q\n", lexer.Classify(lx), lx)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "lines", "output format (lines, json)")
	cmd.Flags().BoolVar(&doMinify, "minify", false, "trim and join lines before tokenizing")

	return cmd
}

// readInput reads a file, or stdin when name is "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
