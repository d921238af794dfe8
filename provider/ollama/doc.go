// Package ollama implements dlai.Generator for the Ollama Chat API.
// Requests are sent with streaming off. MediaPart data is decoded locally and sent
// as message images; text parts are joined into the message content.
// No API key is needed. The server address comes from WithBaseURL or OLLAMA_HOST.
package ollama
