package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dgallion1/domgest/internal/lexer"
	"github.com/dgallion1/domgest/internal/minify"
	"github.com/dgallion1/domgest/internal/source"
)

type lexemeJSON struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
	Tag  string `json:"tag,omitempty"`
	Void bool   `json:"void,omitempty"`
}

// handleTokenize returns the lexemes of the raw request body.
func (s *Server) handleTokenize(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	markup := string(data)
	if s.minifyRequested(r) {
		m, err := minify.Reader(bytes.NewReader(data))
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		markup = m
	}

	lexemes := lexer.Tokenize(markup)
	out := make([]lexemeJSON, 0, len(lexemes))
	for _, lx := range lexemes {
		kind := lexer.Classify(lx)
		item := lexemeJSON{Text: lx, Kind: kind.String()}
		if kind != lexer.Text {
			item.Tag = lexer.TagName(lx)
			item.Void = lexer.IsVoid(item.Tag)
		}
		out = append(out, item)
	}
	writeJSON(w, http.StatusOK, map[string]any{"lexemes": out})
}

// handleParse runs the whole pipeline on the request body and returns the
// result inline. The filename query parameter selects the input format.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	filename := "document.html"
	if v := r.URL.Query().Get("filename"); v != "" {
		filename = sanitizeFilename(v)
	}
	if !source.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filename), http.StatusBadRequest)
		return
	}

	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	res, err := s.orchestrator.ParseNow(r.Context(), filename, data, s.minifyRequested(r))
	if err != nil {
		status := http.StatusUnprocessableEntity
		if r.Context().Err() != nil {
			status = http.StatusRequestTimeout
		}
		jsonError(w, "parse failed: "+err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// readBody reads at most MaxUploadBytes of the request body.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return nil, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return nil, false
	}
	return data, true
}

// minifyRequested reads the minify query parameter, falling back to the
// configured default.
func (s *Server) minifyRequested(r *http.Request) bool {
	if v := r.URL.Query().Get("minify"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return s.cfg.MinifyInput
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
