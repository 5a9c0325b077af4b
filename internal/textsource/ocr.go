// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textsource

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	binTesseract = "tesseract"
	binPdftoppm  = "pdftoppm"
)

// OCRBackend rasterizes pages with pdftoppm and recognizes them with
// tesseract. Slowest and least accurate, so it runs last in the default
// chain; it is the only option for scanned workbooks with no text layer.
type OCRBackend struct {
	exec executor
	lang string
}

// NewOCRBackend creates the backend with the production executor and the
// given tesseract language code.
func NewOCRBackend(lang string) *OCRBackend {
	return &OCRBackend{exec: defaultExec, lang: lang}
}

func (b *OCRBackend) Name() string { return "ocr" }

// Available requires both pdftoppm and tesseract on PATH.
func (b *OCRBackend) Available() bool {
	if _, err := b.exec.LookPath(binPdftoppm); err != nil {
		return false
	}
	_, err := b.exec.LookPath(binTesseract)
	return err == nil
}

// Extract renders each page to PNG in a temp directory, OCRs the pages in
// order, and joins the results with newlines.
func (b *OCRBackend) Extract(path string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "takken-ocr-*")
	if err != nil {
		return "", fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	if err := b.exec.RunSilent(binPdftoppm, "-r", "300", "-png", path, prefix); err != nil {
		return "", fmt.Errorf("rasterizing %s: %w", path, err)
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return "", fmt.Errorf("listing page images: %w", err)
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("no pages rendered for %s", path)
	}
	sort.Strings(pages)

	var parts []string
	for _, page := range pages {
		out, err := b.exec.RunOutput(binTesseract, page, "stdout", "-l", b.lang)
		if err != nil {
			return "", fmt.Errorf("recognizing %s: %w", filepath.Base(page), err)
		}
		if text := strings.TrimSpace(string(out)); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n"), nil
}
