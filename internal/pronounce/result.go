package pronounce

// ErrorKind classifies per-word endpoint failures.
type ErrorKind string

const (
	// KindParseError means the model returned malformed or incomplete JSON.
	KindParseError ErrorKind = "ParseError"
	// KindAPIError means the endpoint answered with a non-2xx status,
	// including rate limiting.
	KindAPIError ErrorKind = "ApiError"
	// KindTimeoutError means the request exceeded the 30 second deadline.
	KindTimeoutError ErrorKind = "TimeoutError"
	// KindConnectionError means the network failed before any response.
	KindConnectionError ErrorKind = "ConnectionError"
)

// WordResult is the per-word outcome of a pronunciation lookup. A success
// carries the two pronunciation fields; a failure carries Error and Details.
// The JSON key names are a compatibility contract for downstream consumers
// of the exported file. A WordResult is never mutated after creation.
type WordResult struct {
	Word                string `json:"word"`
	Pronunciation       string `json:"pronunciation,omitempty"`
	PronunciationTelugu string `json:"pronunciation_telugu,omitempty"`
	Error               string `json:"error,omitempty"`
	Details             string `json:"details,omitempty"`

	// Kind is the error classification. Not serialized; the exported
	// contract only carries the error message and details.
	Kind ErrorKind `json:"-"`
}

// IsError reports whether the result records a failure.
func (r WordResult) IsError() bool {
	return r.Error != ""
}

func successResult(word, pronunciation, telugu string) WordResult {
	return WordResult{
		Word:                word,
		Pronunciation:       pronunciation,
		PronunciationTelugu: telugu,
	}
}

func errorResult(word string, kind ErrorKind, message, details string) WordResult {
	return WordResult{
		Word:    word,
		Error:   message,
		Details: details,
		Kind:    kind,
	}
}
