// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textsource

import "fmt"

const binPdftotext = "pdftotext"

// PdftotextBackend shells out to poppler's pdftotext. It handles layouts
// the native reader cannot, at the cost of an external dependency.
type PdftotextBackend struct {
	exec executor
}

// NewPdftotextBackend creates the backend with the production executor.
func NewPdftotextBackend() *PdftotextBackend {
	return &PdftotextBackend{exec: defaultExec}
}

func (b *PdftotextBackend) Name() string { return binPdftotext }

func (b *PdftotextBackend) Available() bool {
	_, err := b.exec.LookPath(binPdftotext)
	return err == nil
}

// Extract runs pdftotext with UTF-8 output to stdout.
func (b *PdftotextBackend) Extract(path string) (string, error) {
	out, err := b.exec.RunOutput(binPdftotext, "-enc", "UTF-8", path, "-")
	if err != nil {
		return "", fmt.Errorf("running %s on %s: %w", binPdftotext, path, err)
	}
	return string(out), nil
}
