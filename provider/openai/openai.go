package openai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
	"github.com/OrtizR52/AgenticAI-DLAI/config"
	"github.com/OrtizR52/AgenticAI-DLAI/media"
)

// ProviderName identifies this backend in dlai.ProviderError.
const ProviderName = config.ProviderOpenAI

// ChatCompleter is the part of the SDK chat completion service used by Client.
type ChatCompleter interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Client implements dlai.Generator on top of a ChatCompleter.
type Client struct {
	completions ChatCompleter
	log         zerolog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	log        zerolog.Logger
	baseURL    string
	httpClient *http.Client
}

// WithLogger sets the logger used for debug request traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithBaseURL overrides the API endpoint (e.g. an OpenAI-compatible proxy).
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient sets the HTTP client used by the SDK.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func buildOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates a Client for the OpenAI API.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, dlai.ErrMissingAPIKey
	}
	o := buildOptions(opts)
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if o.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(o.baseURL))
	}
	if o.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(o.httpClient))
	}
	oc := openai.NewClient(reqOpts...)
	return &Client{completions: &oc.Chat.Completions, log: o.log}, nil
}

// NewWithCompleter creates a Client around an existing ChatCompleter (e.g. a test stub).
func NewWithCompleter(c ChatCompleter, opts ...Option) *Client {
	o := buildOptions(opts)
	return &Client{completions: c, log: o.log}
}

// Generate translates req, performs one chat completion and returns the first choice's text.
func (c *Client) Generate(ctx context.Context, req *dlai.Request) (*dlai.Response, error) {
	params, err := Translate(req)
	if err != nil {
		return nil, err
	}
	c.log.Debug().
		Str("model", params.Model).
		Int("parts", len(req.Parts)).
		Msg("chat completion")
	completion, err := c.completions.New(ctx, *params)
	if err != nil {
		return nil, &dlai.ProviderError{Provider: ProviderName, Model: req.Model, Err: err}
	}
	return ParseResponse(completion)
}

// Translate converts a dlai.Request into a single user message.
// Text-only requests use a plain string content.
func Translate(req *dlai.Request) (*openai.ChatCompletionNewParams, error) {
	if req == nil {
		return nil, dlai.ErrNilRequest
	}
	msg, err := userMessage(req.Parts)
	if err != nil {
		return nil, err
	}
	return &openai.ChatCompletionNewParams{
		Model:    req.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{msg},
	}, nil
}

func userMessage(parts []dlai.ContentPart) (openai.ChatCompletionMessageParamUnion, error) {
	var contentParts []openai.ChatCompletionContentPartUnionParam
	hasImage := false
	for _, p := range parts {
		switch x := p.(type) {
		case dlai.TextPart:
			contentParts = append(contentParts, openai.TextContentPart(x.Text))
		case dlai.MediaPart:
			hasImage = true
			mime := x.MIMEType
			if mime == "" {
				mime = media.DefaultMediaType
			}
			contentParts = append(contentParts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL:    "data:" + mime + ";base64," + x.Data,
				Detail: "auto",
			}))
		default:
			return openai.ChatCompletionMessageParamUnion{}, fmt.Errorf("%w: %T", dlai.ErrUnsupportedContentType, p)
		}
	}
	if !hasImage {
		return openai.UserMessage(dlai.TextFromParts(parts)), nil
	}
	return openai.UserMessage(contentParts), nil
}

// ParseResponse returns the content of the first choice, which may be empty.
// A completion without choices is malformed.
func ParseResponse(completion *openai.ChatCompletion) (*dlai.Response, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return nil, dlai.ErrInvalidResponse
	}
	return &dlai.Response{Text: completion.Choices[0].Message.Content}, nil
}

var _ dlai.Generator = (*Client)(nil)
