package words

import (
	"fmt"
	"os"
	"strings"
)

// ParseList splits a comma-separated input string into an ordered list of
// trimmed, non-empty tokens. An empty or whitespace-only input yields an
// empty list; callers must treat that as a no-op, not an error.
func ParseList(input string) []string {
	var tokens []string
	for _, piece := range strings.Split(input, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			tokens = append(tokens, piece)
		}
	}
	return tokens
}

// ReadBatchFile reads words from a file, one per line. Blank lines and
// surrounding whitespace are ignored. Lines may themselves contain
// comma-separated words, which are split with ParseList.
func ReadBatchFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var tokens []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		tokens = append(tokens, ParseList(line)...)
	}

	return tokens, nil
}
