package api

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed static/index.html
var embeddedIndex []byte

// Docs serves the documentation page. When path is set the page is read
// from disk on every request, otherwise the embedded copy is used.
type Docs struct {
	path string
}

// NewDocs creates a documentation source
func NewDocs(path string) *Docs {
	return &Docs{path: path}
}

// Page returns the HTML documentation page
func (d *Docs) Page() ([]byte, error) {
	if d == nil || d.path == "" {
		return embeddedIndex, nil
	}
	page, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read docs file %s: %w", d.path, err)
	}
	return page, nil
}
