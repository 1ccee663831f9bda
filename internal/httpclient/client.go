// Package httpclient provides the shared HTTP client used for completion
// endpoint calls. Pooling and timeouts are centralized here so every
// outbound request carries the same 30 second cap.
package httpclient

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	// DefaultTimeout is the per-request cap for completion endpoint calls.
	DefaultTimeout = 30 * time.Second
	// MaxResponseBytes caps response bodies; completion responses for a
	// single word are tiny, anything larger is a misbehaving endpoint.
	MaxResponseBytes = 1 * 1024 * 1024

	maxIdleConns        = 10
	maxIdleConnsPerHost = 4
	idleConnTimeout     = 90 * time.Second
)

var (
	defaultClient     *http.Client
	defaultClientOnce sync.Once
	overrideClient    *http.Client
)

// NewClient returns an http.Client with the given timeout and the shared
// transport tuning.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	}
}

// Default returns the shared client with the default timeout.
func Default() *http.Client {
	if overrideClient != nil {
		return overrideClient
	}
	defaultClientOnce.Do(func() {
		defaultClient = NewClient(DefaultTimeout)
	})
	return defaultClient
}

// SetDefaultForTesting overrides the shared client for tests and returns a
// restore function.
func SetDefaultForTesting(client *http.Client) func() {
	prev := overrideClient
	overrideClient = client
	return func() {
		overrideClient = prev
	}
}

// DoAndRead performs a request, reads the whole body and always closes it.
func DoAndRead(client *http.Client, req *http.Request) ([]byte, *http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	limited := &io.LimitedReader{R: resp.Body, N: MaxResponseBytes + 1}
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > MaxResponseBytes {
		return nil, resp, fmt.Errorf("response body too large (limit %d bytes)", MaxResponseBytes)
	}

	return body, resp, nil
}
