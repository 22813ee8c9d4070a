// Package zip bundles generated content into a single in-memory archive for
// download.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one file in the archive.
type Entry struct {
	Name string
	Data []byte
}

// Archive writes entries into a zip held entirely in memory. Entry order is
// preserved.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("zip: create %s: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("zip: write %s: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: close: %w", err)
	}
	return buf.Bytes(), nil
}
