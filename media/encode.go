package media

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMediaType is used when the media type cannot be guessed from a path.
const DefaultMediaType = "image/png"

// MediaType guesses the MIME type of path from its extension, without parameters.
// Unknown or missing extensions yield DefaultMediaType.
func MediaType(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return DefaultMediaType
	}
	mt := stripParams(mime.TypeByExtension(ext))
	if mt == "" {
		return DefaultMediaType
	}
	return mt
}

// EncodeImageB64 returns the guessed media type and the standard base64 encoding of the file at path.
// The whole file is read into memory.
func EncodeImageB64(path string) (mediaType, b64 string, err error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by caller
	if err != nil {
		return "", "", fmt.Errorf("media: read file: %w", err)
	}
	return MediaType(path), base64.StdEncoding.EncodeToString(data), nil
}

func stripParams(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.TrimSpace(contentType)
}
