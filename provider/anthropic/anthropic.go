package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
	"github.com/OrtizR52/AgenticAI-DLAI/config"
	"github.com/OrtizR52/AgenticAI-DLAI/media"
)

// ProviderName identifies this backend in dlai.ProviderError.
const ProviderName = config.ProviderAnthropic

// DefaultMaxTokens is sent when WithMaxTokens is not used.
const DefaultMaxTokens = 4096

// MessageCreator is the part of the SDK message service used by Client.
type MessageCreator interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Client implements dlai.Generator on top of a MessageCreator.
type Client struct {
	messages  MessageCreator
	maxTokens int64
	log       zerolog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	maxTokens  int64
	log        zerolog.Logger
	baseURL    string
	httpClient *http.Client
}

// WithMaxTokens sets max_tokens for every request.
func WithMaxTokens(n int64) Option {
	return func(o *options) { o.maxTokens = n }
}

// WithLogger sets the logger used for debug request traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient sets the HTTP client used by the SDK.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func buildOptions(opts []Option) options {
	o := options{maxTokens: DefaultMaxTokens, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxTokens <= 0 {
		o.maxTokens = DefaultMaxTokens
	}
	return o
}

// New creates a Client for the Anthropic API.
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
	ac := anthropic.NewClient(reqOpts...)
	return &Client{messages: &ac.Messages, maxTokens: o.maxTokens, log: o.log}, nil
}

// NewWithCreator creates a Client around an existing MessageCreator (e.g. a test stub).
func NewWithCreator(m MessageCreator, opts ...Option) *Client {
	o := buildOptions(opts)
	return &Client{messages: m, maxTokens: o.maxTokens, log: o.log}
}

// Generate translates req, creates one message and returns its concatenated text blocks.
func (c *Client) Generate(ctx context.Context, req *dlai.Request) (*dlai.Response, error) {
	params, err := Translate(req, c.maxTokens)
	if err != nil {
		return nil, err
	}
	c.log.Debug().
		Str("model", req.Model).
		Int("parts", len(req.Parts)).
		Msg("create message")
	msg, err := c.messages.New(ctx, *params)
	if err != nil {
		return nil, &dlai.ProviderError{Provider: ProviderName, Model: req.Model, Err: err}
	}
	return ParseResponse(msg)
}

// Translate converts a dlai.Request into a single user message.
func Translate(req *dlai.Request, maxTokens int64) (*anthropic.MessageNewParams, error) {
	if req == nil {
		return nil, dlai.ErrNilRequest
	}
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(req.Parts))
	for _, p := range req.Parts {
		switch x := p.(type) {
		case dlai.TextPart:
			blocks = append(blocks, anthropic.NewTextBlock(x.Text))
		case dlai.MediaPart:
			mime := x.MIMEType
			if mime == "" {
				mime = media.DefaultMediaType
			}
			blocks = append(blocks, anthropic.NewImageBlockBase64(mime, x.Data))
		default:
			return nil, fmt.Errorf("%w: %T", dlai.ErrUnsupportedContentType, p)
		}
	}
	return &anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: maxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	}, nil
}

// ParseResponse joins the text blocks of msg. A message without text blocks yields "".
func ParseResponse(msg *anthropic.Message) (*dlai.Response, error) {
	if msg == nil {
		return nil, dlai.ErrInvalidResponse
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return &dlai.Response{Text: b.String()}, nil
}

var _ dlai.Generator = (*Client)(nil)
