// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textsource

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// NativeBackend extracts text in-process with the ledongthuc/pdf reader.
// It needs no external tools, so it is always available and runs first in
// the default chain.
type NativeBackend struct{}

func (b *NativeBackend) Name() string { return "native" }

func (b *NativeBackend) Available() bool { return true }

// Extract opens the PDF and reads the plain text of the whole document.
func (b *NativeBackend) Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading text from %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("reading text from %s: %w", path, err)
	}
	return buf.String(), nil
}
