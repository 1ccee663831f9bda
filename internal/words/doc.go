// Package words turns raw user input into an ordered list of word tokens.
// It handles both the comma-separated form used by the GUI input field and
// one-word-per-line batch files used by the CLI.
package words
