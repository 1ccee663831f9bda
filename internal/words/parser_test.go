package words

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only whitespace",
			input: "   \t   ",
			want:  nil,
		},
		{
			name:  "only commas",
			input: ",,,",
			want:  nil,
		},
		{
			name:  "single word",
			input: "toilet",
			want:  []string{"toilet"},
		},
		{
			name:  "multiple words",
			input: "toilet, computer, water",
			want:  []string{"toilet", "computer", "water"},
		},
		{
			name:  "extra whitespace around words",
			input: "  toilet ,\tcomputer ,  water  ",
			want:  []string{"toilet", "computer", "water"},
		},
		{
			name:  "empty pieces between commas",
			input: "toilet,, ,computer",
			want:  []string{"toilet", "computer"},
		},
		{
			name:  "trailing comma",
			input: "toilet, computer,",
			want:  []string{"toilet", "computer"},
		},
		{
			name:  "order preserved",
			input: "water, computer, toilet",
			want:  []string{"water", "computer", "toilet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []string
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name:        "one word per line",
			fileContent: "toilet\ncomputer\nwater",
			want:        []string{"toilet", "computer", "water"},
		},
		{
			name:        "blank lines and whitespace",
			fileContent: "\ntoilet\n\n  computer  \n\n",
			want:        []string{"toilet", "computer"},
		},
		{
			name:        "windows line endings",
			fileContent: "toilet\r\ncomputer\r\n",
			want:        []string{"toilet", "computer"},
		},
		{
			name:        "comma-separated lines",
			fileContent: "toilet, computer\nwater",
			want:        []string{"toilet", "computer", "water"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "words.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_FileNotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}
