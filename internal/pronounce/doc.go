// Package pronounce fetches phonetic pronunciations of English words from a
// hosted large-language-model completion endpoint. Each word is sent with a
// fixed prompt requesting strict JSON containing the USA-style pronunciation
// and a Telugu-script rendering of the sounds. Every endpoint failure is
// converted into a per-word error result so callers can keep processing.
package pronounce
