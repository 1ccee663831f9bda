// Package models provides functionality for listing available models on
// the configured completion endpoint. Together's API is OpenAI compatible,
// which lets the stock OpenAI client enumerate its model catalogue.
package models
