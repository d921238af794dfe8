package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ollama/ollama/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubChat struct {
	got    *api.ChatRequest
	chunks []string
	err    error
}

func (s *stubChat) Chat(_ context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error {
	s.got = req
	if s.err != nil {
		return s.err
	}
	for i, c := range s.chunks {
		resp := api.ChatResponse{Message: api.Message{Role: "assistant", Content: c}, Done: i == len(s.chunks)-1}
		if err := fn(resp); err != nil {
			return err
		}
	}
	return nil
}

func ExampleTranslate() {
	req, _ := Translate(&dlai.Request{Model: "llama3.2", Parts: []dlai.ContentPart{dlai.TextPart{Text: "Hello"}}})
	fmt.Println(req.Messages[0].Content, *req.Stream)
	// Output: Hello false
}

func TestTranslate_ImageThenText(t *testing.T) {
	t.Parallel()
	req, err := Translate(dlai.ImageRequest("llava", "What is this?", "image/jpeg", "/9j/4A=="))
	require.NoError(t, err)
	assert.Equal(t, "llava", req.Model)
	require.Len(t, req.Messages, 1)
	msg := req.Messages[0]
	assert.Equal(t, "user", msg.Role)
	assert.Equal(t, "What is this?", msg.Content)
	require.Len(t, msg.Images, 1)
	assert.Equal(t, api.ImageData{0xff, 0xd8, 0xff, 0xe0}, msg.Images[0])
}

func TestTranslate_InvalidBase64(t *testing.T) {
	t.Parallel()
	_, err := Translate(dlai.ImageRequest("llava", "x", "image/png", "%%%"))
	require.ErrorIs(t, err, dlai.ErrInvalidMedia)
}

func TestTranslate_NilRequest(t *testing.T) {
	t.Parallel()
	_, err := Translate(nil)
	require.ErrorIs(t, err, dlai.ErrNilRequest)
}

func TestParseResponse(t *testing.T) {
	t.Parallel()
	resp, err := ParseResponse(&api.ChatResponse{Message: api.Message{Content: "Sunny"}})
	require.NoError(t, err)
	assert.Equal(t, "Sunny", resp.Text)

	resp, err = ParseResponse(&api.ChatResponse{})
	require.NoError(t, err)
	assert.Empty(t, resp.Text)

	_, err = ParseResponse(nil)
	require.ErrorIs(t, err, dlai.ErrInvalidResponse)
}

func TestClient_Generate(t *testing.T) {
	t.Parallel()
	stub := &stubChat{chunks: []string{"Hel", "lo"}}
	c := NewWithChat(stub, WithModelOptions(map[string]any{"temperature": 0.2}))
	text, err := dlai.GetResponse(context.Background(), c, "llama3.2", "greet")
	require.NoError(t, err)
	assert.Equal(t, "Hello", text)
	assert.Equal(t, "llama3.2", stub.got.Model)
	assert.Equal(t, map[string]any{"temperature": 0.2}, stub.got.Options)
}

func TestClient_Generate_NoReply(t *testing.T) {
	t.Parallel()
	_, err := NewWithChat(&stubChat{}).Generate(context.Background(), &dlai.Request{Model: "m"})
	require.ErrorIs(t, err, dlai.ErrInvalidResponse)
}

func TestClient_Generate_ProviderError(t *testing.T) {
	t.Parallel()
	boom := errors.New("connection refused")
	_, err := NewWithChat(&stubChat{err: boom}).Generate(context.Background(), &dlai.Request{Model: "llama3.2"})
	var pe *dlai.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ProviderName, pe.Provider)
	assert.Equal(t, "llama3.2", pe.Model)
	require.ErrorIs(t, err, boom)
}

func TestNew_BadBaseURL(t *testing.T) {
	t.Parallel()
	_, err := New(WithBaseURL("http://[::1"))
	require.Error(t, err)
}

func TestClient_OverHTTP(t *testing.T) {
	t.Parallel()
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = io.WriteString(w, `{"model":"llava","message":{"role":"assistant","content":"A cat."},"done":true}`+"\n")
	}))
	defer srv.Close()

	c, err := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	text, err := dlai.ImageCall(context.Background(), c, "llava", "Describe", "image/png", "iVBORw==")
	require.NoError(t, err)
	assert.Equal(t, "A cat.", text)
	assert.Equal(t, "llava", body["model"])
	assert.Equal(t, false, body["stream"])
}
