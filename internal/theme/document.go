// Package theme composes the colour pipeline: seed resolution from an
// image or literal colour, material role generation, shell palette
// derivation, and output document emission.
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Document is the assembled output of one pipeline invocation.
type Document struct {
	Mode      string            `json:"mode"`
	Scheme    string            `json:"scheme"`
	SeedColor string            `json:"seedColor"`
	Material  map[string]string `json:"material"`
	Shell     map[string]string `json:"shell"`
}

// JSON renders the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// WriteFile writes the document as JSON to the given path, creating
// parent directories as needed.
func (d *Document) WriteFile(path string) error {
	data, err := d.JSON()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
