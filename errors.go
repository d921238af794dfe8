package dlai

import (
	"errors"
	"fmt"
)

// Sentinel errors for generate calls and provider backends.
// All use prefix "dlai:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrNilRequest             = errors.New("dlai: request must not be nil")
	ErrNilGenerator           = errors.New("dlai: generator must not be nil")
	ErrMissingAPIKey          = errors.New("dlai: API key not set in environment")
	ErrUnsupportedContentType = errors.New("dlai: unsupported ContentPart type for this provider")
	ErrInvalidMedia           = errors.New("dlai: media part data is not valid base64")
	ErrInvalidResponse        = errors.New("dlai: raw response has unexpected shape")
	ErrUnknownProvider        = errors.New("dlai: unknown provider")
)

// ProviderError wraps a failure returned by a provider SDK with provider and model context.
// Use errors.As(err, &providerErr) to inspect; errors.Is sees through to the SDK error.
type ProviderError struct {
	Provider string
	Model    string
	Err      error
}

// Error implements error.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("dlai: provider %q model %q: %v", e.Provider, e.Model, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *ProviderError) Unwrap() error { return e.Err }

// Compile-time check that ProviderError implements error.
var _ error = (*ProviderError)(nil)
