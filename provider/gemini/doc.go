// Package gemini implements dlai.Generator for the Google Gemini (genai) API.
//
// Translate turns a dlai.Request into *gemini.Request (model + Contents); ParseResponse
// reads the text of a *genai.GenerateContentResponse. Client glues both around
// genai's Models.GenerateContent.
//
// GetResponse and ImageCall are one-shot helpers: each call reads GEMINI_API_KEY
// (or GOOGLE_API_KEY) from the environment and builds a fresh client.
// MediaPart data is base64 text and is decoded before it is sent as inline bytes.
package gemini
