package dlai

import (
	"context"
	"strings"
)

// ContentPart is a sealed interface for request parts. Only package types implement it via isContentPart().
type ContentPart interface {
	isContentPart()
}

// TextPart holds plain text content.
type TextPart struct {
	Text string
}

func (TextPart) isContentPart() {}

// MediaPart holds an inline binary payload as base64 text with its MIME type.
type MediaPart struct {
	MIMEType string
	Data     string // standard base64, no line wrapping
}

func (MediaPart) isContentPart() {}

// Request is a single generate call: model identifier plus ordered content parts.
// Model is passed through verbatim.
type Request struct {
	Model string
	Parts []ContentPart
}

// Response is the textual payload returned by a provider.
type Response struct {
	Text string
}

// Generator issues one request to a generative-content service and returns its response.
// Implementations live in the provider packages.
type Generator interface {
	Generate(ctx context.Context, req *Request) (*Response, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, req *Request) (*Response, error)

// Generate calls f(ctx, req).
func (f GeneratorFunc) Generate(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// TextFromParts extracts concatenated text from parts, ignoring non-text parts.
func TextFromParts(parts []ContentPart) string {
	var b strings.Builder
	for _, p := range parts {
		if t, ok := p.(TextPart); ok {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}
