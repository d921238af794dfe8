// Package openai implements dlai.Generator for the OpenAI Chat Completions API.
// MediaPart data is sent as a data: URL image part. The SDK's automatic retries
// are disabled.
package openai
