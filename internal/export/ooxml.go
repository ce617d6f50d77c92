// Package export renders a project and its ordered sections into binary
// office documents. Both writers produce a minimal OOXML package with
// stdlib archive/zip: one render unit per section, heading+paragraph blocks
// for paginated documents and title+textbox slides for decks.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// MediaTypeDocx is the media type served for paginated documents.
const MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// MediaTypePptx is the media type served for slide decks.
const MediaTypePptx = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// zipFile is one entry of an OOXML package.
type zipFile struct {
	name string
	body string
}

// writePackage assembles the zip container. Entry order is kept stable so
// identical input yields identical bytes.
func writePackage(files []zipFile) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", f.name, err)
		}
		if _, err := w.Write([]byte(f.body)); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}

	return buf.Bytes(), nil
}

// escape makes text safe for inclusion in XML character data.
func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never fails.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// splitLines splits content on newlines, preserving empty interior lines so
// paragraph breaks survive the round trip.
func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
