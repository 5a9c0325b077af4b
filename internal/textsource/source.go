// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textsource extracts plain text from source PDFs with pluggable
// backends tried in fallback order: native Go extraction, pdftotext, and
// OCR as a last resort.
package textsource

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

// Backend produces plain text from a PDF file. Implementations report their
// own availability so the chain can skip missing external tools.
type Backend interface {
	// Name returns the backend name ("native", "pdftotext", "ocr").
	Name() string

	// Available reports whether the backend can run on this host.
	Available() bool

	// Extract reads the PDF at path and returns its plain text.
	Extract(path string) (string, error)
}

// Chain tries backends in priority order and returns the first usable text.
type Chain struct {
	backends []Backend
	minRunes int
}

// NewChain builds the default backend chain from cfg. Unknown backend names
// are rejected; an empty list uses native, pdftotext, ocr in that order.
func NewChain(cfg types.SourceConfig) (*Chain, error) {
	names := cfg.Backends
	if len(names) == 0 {
		names = []string{"native", "pdftotext", "ocr"}
	}

	lang := cfg.OCRLanguage
	if lang == "" {
		lang = "jpn"
	}

	var backends []Backend
	for _, name := range names {
		switch name {
		case "native":
			backends = append(backends, &NativeBackend{})
		case "pdftotext":
			backends = append(backends, NewPdftotextBackend())
		case "ocr":
			backends = append(backends, NewOCRBackend(lang))
		default:
			return nil, fmt.Errorf("unknown text extraction backend %q", name)
		}
	}

	minRunes := cfg.MinTextLength
	if minRunes <= 0 {
		minRunes = 1
	}

	return &Chain{backends: backends, minRunes: minRunes}, nil
}

// newChainFrom is the test seam: it wires an explicit backend list.
func newChainFrom(minRunes int, backends ...Backend) *Chain {
	if minRunes <= 0 {
		minRunes = 1
	}
	return &Chain{backends: backends, minRunes: minRunes}
}

// Extract runs the chain against the PDF at path, logging per-backend status
// to w. It returns the first extraction whose text meets the minimum length;
// when every backend is unavailable, fails, or produces too little text, it
// returns an error.
func (c *Chain) Extract(path string, w io.Writer) (string, error) {
	for _, b := range c.backends {
		if !b.Available() {
			fmt.Fprintf(w, "skipped: %s (not available)\n", b.Name())
			continue
		}

		text, err := b.Extract(path)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", b.Name(), err)
			continue
		}
		if len([]rune(strings.TrimSpace(text))) < c.minRunes {
			fmt.Fprintf(w, "failed:  %s (no usable text)\n", b.Name())
			continue
		}

		fmt.Fprintf(w, "extracted: %s (%d characters)\n", b.Name(), len([]rune(text)))
		return text, nil
	}

	return "", fmt.Errorf("no text extraction backend succeeded for %s", path)
}
