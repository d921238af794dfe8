package ollama

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
	"github.com/OrtizR52/AgenticAI-DLAI/config"
)

// ProviderName identifies this backend in dlai.ProviderError.
const ProviderName = config.ProviderOllama

// ChatClient is the part of *api.Client used by Client.
type ChatClient interface {
	Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error
}

// Client implements dlai.Generator on top of a ChatClient.
type Client struct {
	chat    ChatClient
	options map[string]any
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	modelOptions map[string]any
	log          zerolog.Logger
	baseURL      string
	httpClient   *http.Client
}

// WithModelOptions sets the runtime options map (temperature, num_predict, ...) sent with every request.
func WithModelOptions(m map[string]any) Option {
	return func(o *options) { o.modelOptions = m }
}

// WithLogger sets the logger used for debug request traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithBaseURL sets the server address, e.g. "http://localhost:11434". Ignored by NewWithChat.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient sets the HTTP client. Only used together with WithBaseURL.
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

// New creates a Client. Without WithBaseURL the address is read from OLLAMA_HOST.
func New(opts ...Option) (*Client, error) {
	o := buildOptions(opts)
	var ac *api.Client
	if o.baseURL != "" {
		u, err := url.Parse(o.baseURL)
		if err != nil {
			return nil, fmt.Errorf("ollama: parse base URL: %w", err)
		}
		hc := o.httpClient
		if hc == nil {
			hc = http.DefaultClient
		}
		ac = api.NewClient(u, hc)
	} else {
		var err error
		ac, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("ollama: client from environment: %w", err)
		}
	}
	return &Client{chat: ac, options: o.modelOptions, log: o.log}, nil
}

// NewWithChat creates a Client around an existing ChatClient (e.g. a test stub).
func NewWithChat(c ChatClient, opts ...Option) *Client {
	o := buildOptions(opts)
	return &Client{chat: c, options: o.modelOptions, log: o.log}
}

// Generate translates req, performs one non-streaming chat call and returns the reply text.
func (c *Client) Generate(ctx context.Context, req *dlai.Request) (*dlai.Response, error) {
	chatReq, err := Translate(req)
	if err != nil {
		return nil, err
	}
	chatReq.Options = c.options
	c.log.Debug().
		Str("model", chatReq.Model).
		Int("parts", len(req.Parts)).
		Msg("chat")
	var last *api.ChatResponse
	var text strings.Builder
	err = c.chat.Chat(ctx, chatReq, func(resp api.ChatResponse) error {
		text.WriteString(resp.Message.Content)
		last = &resp
		return nil
	})
	if err != nil {
		return nil, &dlai.ProviderError{Provider: ProviderName, Model: req.Model, Err: err}
	}
	if last == nil {
		return nil, dlai.ErrInvalidResponse
	}
	last.Message.Content = text.String()
	return ParseResponse(last)
}

// Translate converts a dlai.Request into a single user message with streaming off.
func Translate(req *dlai.Request) (*api.ChatRequest, error) {
	if req == nil {
		return nil, dlai.ErrNilRequest
	}
	var images []api.ImageData
	for _, p := range req.Parts {
		switch x := p.(type) {
		case dlai.TextPart:
		case dlai.MediaPart:
			data, err := base64.StdEncoding.DecodeString(x.Data)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", dlai.ErrInvalidMedia, err)
			}
			images = append(images, api.ImageData(data))
		default:
			return nil, fmt.Errorf("%w: %T", dlai.ErrUnsupportedContentType, p)
		}
	}
	stream := false
	return &api.ChatRequest{
		Model:  req.Model,
		Stream: &stream,
		Messages: []api.Message{{
			Role:    "user",
			Content: dlai.TextFromParts(req.Parts),
			Images:  images,
		}},
	}, nil
}

// ParseResponse returns the assistant message content, which may be empty.
func ParseResponse(resp *api.ChatResponse) (*dlai.Response, error) {
	if resp == nil {
		return nil, dlai.ErrInvalidResponse
	}
	return &dlai.Response{Text: resp.Message.Content}, nil
}

var _ dlai.Generator = (*Client)(nil)
