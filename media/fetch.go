package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultMaxBodySize is the default limit for media download (10 MiB).
	DefaultMaxBodySize = 10 << 20
)

var (
	// ErrUnsafeScheme is returned when the URL scheme is not https.
	ErrUnsafeScheme = errors.New("media: only https scheme is allowed")
	// ErrBodyTooLarge is returned when the response exceeds the size limit.
	ErrBodyTooLarge = errors.New("media: response body exceeds size limit")
	// ErrUnsupportedType is returned when Content-Type is not allowed (e.g. not image/*).
	ErrUnsupportedType = errors.New("media: unsupported content type")
)

// AllowedImagePrefixes are Content-Type prefixes accepted for image media (e.g. "image/png"). Do not modify.
var AllowedImagePrefixes = []string{"image/"}

// DefaultClient is the HTTP client used by FetchImage and EncodeImageURL.
var DefaultClient = http.DefaultClient

// Fetcher downloads images with a fixed client and size limit.
// The zero value uses DefaultClient and DefaultMaxBodySize.
type Fetcher struct {
	Client   *http.Client
	MaxBytes int64
}

// FetchImage downloads rawURL with DefaultClient. See Fetcher.Fetch.
func FetchImage(ctx context.Context, rawURL string, maxBytes int64) (data []byte, contentType string, err error) {
	f := &Fetcher{Client: DefaultClient, MaxBytes: maxBytes}
	return f.Fetch(ctx, rawURL)
}

// EncodeImageURL downloads rawURL with DefaultClient and returns (media type, base64).
func EncodeImageURL(ctx context.Context, rawURL string, maxBytes int64) (mediaType, b64 string, err error) {
	f := &Fetcher{Client: DefaultClient, MaxBytes: maxBytes}
	return f.Encode(ctx, rawURL)
}

// Fetch downloads a URL with ctx, size limit, and MIME check. Only https is allowed.
// contentType is returned without parameters and may be empty if the server sent none.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (data []byte, contentType string, err error) {
	maxBytes := f.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}
	client := f.Client
	if client == nil {
		client = DefaultClient
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("media: parse URL: %w", err)
	}
	if u.Scheme != "https" {
		return nil, "", ErrUnsafeScheme
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("media: new request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("media: do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("media: status %s", resp.Status)
	}
	contentType = stripParams(resp.Header.Get("Content-Type"))
	allowed := false
	for _, prefix := range AllowedImagePrefixes {
		if strings.HasPrefix(contentType, prefix) {
			allowed = true
			break
		}
	}
	if contentType != "" && !allowed {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	data, err = io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("media: read body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", ErrBodyTooLarge
	}
	return data, contentType, nil
}

// Encode fetches rawURL and returns (media type, base64). When the server sends no
// Content-Type the type is guessed from the URL path.
func (f *Fetcher) Encode(ctx context.Context, rawURL string) (mediaType, b64 string, err error) {
	data, contentType, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return "", "", err
	}
	mediaType = contentType
	if mediaType == "" {
		u, _ := url.Parse(rawURL) // already parsed by Fetch
		mediaType = MediaType(u.Path)
	}
	return mediaType, base64.StdEncoding.EncodeToString(data), nil
}
