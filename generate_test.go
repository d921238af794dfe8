package dlai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingGenerator struct {
	got  *Request
	resp *Response
	err  error
}

func (r *recordingGenerator) Generate(_ context.Context, req *Request) (*Response, error) {
	r.got = req
	return r.resp, r.err
}

func TestGetResponse_ReturnsTextUnmodified(t *testing.T) {
	t.Parallel()
	g := &recordingGenerator{resp: &Response{Text: "  Hello,\n world  "}}
	text, err := GetResponse(context.Background(), g, "gemini-2.5-flash", "Say hi")
	require.NoError(t, err)
	assert.Equal(t, "  Hello,\n world  ", text)
	require.NotNil(t, g.got)
	assert.Equal(t, "gemini-2.5-flash", g.got.Model)
	require.Len(t, g.got.Parts, 1)
	assert.Equal(t, TextPart{Text: "Say hi"}, g.got.Parts[0])
}

func TestGetResponse_PropagatesError(t *testing.T) {
	t.Parallel()
	boom := errors.New("network down")
	g := &recordingGenerator{err: boom}
	_, err := GetResponse(context.Background(), g, "m", "p")
	require.ErrorIs(t, err, boom)
}

func TestGetResponse_NilGenerator(t *testing.T) {
	t.Parallel()
	_, err := GetResponse(context.Background(), nil, "m", "p")
	require.ErrorIs(t, err, ErrNilGenerator)
}

func TestGetResponse_NilResponse(t *testing.T) {
	t.Parallel()
	g := &recordingGenerator{}
	_, err := GetResponse(context.Background(), g, "m", "p")
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestImageCall_PartOrder(t *testing.T) {
	t.Parallel()
	g := &recordingGenerator{resp: &Response{Text: "a cat"}}
	text, err := ImageCall(context.Background(), g, "gemini-2.5-flash", "What is this?", "image/jpeg", "/9j/4A==")
	require.NoError(t, err)
	assert.Equal(t, "a cat", text)
	require.Len(t, g.got.Parts, 2)
	assert.Equal(t, MediaPart{MIMEType: "image/jpeg", Data: "/9j/4A=="}, g.got.Parts[0])
	assert.Equal(t, TextPart{Text: "What is this?"}, g.got.Parts[1])
}

func TestGeneratorFunc(t *testing.T) {
	t.Parallel()
	var g Generator = GeneratorFunc(func(_ context.Context, req *Request) (*Response, error) {
		return &Response{Text: TextFromParts(req.Parts)}, nil
	})
	text, err := GetResponse(context.Background(), g, "m", "echo")
	require.NoError(t, err)
	assert.Equal(t, "echo", text)
}

func TestTextFromParts_SkipsMedia(t *testing.T) {
	t.Parallel()
	parts := []ContentPart{
		TextPart{Text: "a"},
		MediaPart{MIMEType: "image/png", Data: "AA=="},
		TextPart{Text: "b"},
	}
	assert.Equal(t, "ab", TextFromParts(parts))
}
