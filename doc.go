// Package dlai provides small helpers around generative-content services:
// a provider-agnostic Generator interface, one-shot text and image-conditioned
// calls, and the canonical request/response types the provider packages translate.
//
// Subpackages cover the remaining helpers: codetag normalizes generated code into
// <execute_python> blocks, media encodes images to base64, dataset loads CSV tables
// with derived calendar columns, and config resolves provider settings.
package dlai
