// Package processor contains the core workflow for converting English
// words to Telugu pronunciations. It orchestrates batch execution against
// the completion endpoint, JSON export, lookup history recording, and
// launching the GUI. This package serves as the main coordinator between
// all other components.
package processor
