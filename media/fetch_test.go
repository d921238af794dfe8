package media

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()
	payload := []byte{0x89, 'P', 'N', 'G'}
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png; charset=binary")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client()}
	data, contentType, err := f.Fetch(context.Background(), srv.URL+"/chart.png")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/png", contentType)
}

func TestFetcher_Fetch_RejectsHTTP(t *testing.T) {
	t.Parallel()
	f := &Fetcher{}
	_, _, err := f.Fetch(context.Background(), "http://example.com/a.png")
	require.ErrorIs(t, err, ErrUnsafeScheme)
}

func TestFetcher_Fetch_RejectsNonImage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client()}
	_, _, err := f.Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFetcher_Fetch_TooLarge(t *testing.T) {
	t.Parallel()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(make([]byte, 64))
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client(), MaxBytes: 16}
	_, _, err := f.Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestFetcher_Fetch_BadStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.NotFound(w, nil)
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client()}
	_, _, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetcher_Encode_GuessesTypeFromPath(t *testing.T) {
	t.Parallel()
	payload := []byte{0xff, 0xd8, 0xff, 0xe0}
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header()["Content-Type"] = nil
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client()}
	mediaType, b64, err := f.Encode(context.Background(), srv.URL+"/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mediaType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(payload), b64)
}
