// Package export serializes completed batch outcomes to the downloadable
// JSON document. The array element shape and key names are a compatibility
// contract for downstream consumers.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/uccharana/internal/pronounce"
)

// Marshal renders the result sequence as an indented JSON array. HTML
// escaping is disabled so Telugu script and quotes survive untouched.
func Marshal(results []pronounce.WordResult) ([]byte, error) {
	if results == nil {
		results = []pronounce.WordResult{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return nil, fmt.Errorf("failed to encode results: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// SuggestedFilename returns the download filename for an export generated
// at the given time.
func SuggestedFilename(generatedAt time.Time) string {
	return fmt.Sprintf("pronunciations_%s.json", generatedAt.Format("20060102_150405"))
}

// WriteFile serializes the results into dir using the suggested filename
// and returns the full path.
func WriteFile(dir string, results []pronounce.WordResult, generatedAt time.Time) (string, error) {
	data, err := Marshal(results)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, SuggestedFilename(generatedAt))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
