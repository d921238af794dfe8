// Package anthropic implements dlai.Generator for the Anthropic Messages API.
// MediaPart data is passed through as a base64 image block without decoding.
// MaxTokens defaults to DefaultMaxTokens because the API requires it.
package anthropic
