package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
	"github.com/OrtizR52/AgenticAI-DLAI/config"
	"github.com/OrtizR52/AgenticAI-DLAI/media"
)

// ProviderName identifies this backend in dlai.ProviderError.
const ProviderName = config.ProviderGemini

// Request wraps model, Contents and Config for the Gemini GenerateContent API.
type Request struct {
	Model    string
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
}

// ContentGenerator is the part of *genai.Models used by Client.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements dlai.Generator on top of a ContentGenerator.
type Client struct {
	models ContentGenerator
	config *genai.GenerateContentConfig
	log    zerolog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	config     *genai.GenerateContentConfig
	log        zerolog.Logger
	baseURL    string
	httpClient *http.Client
}

// WithGenerationConfig sets the config sent with every request (temperature, system instruction, ...).
func WithGenerationConfig(cfg *genai.GenerateContentConfig) Option {
	return func(o *options) { o.config = cfg }
}

// WithLogger sets the logger used for debug request traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithBaseURL overrides the API endpoint. Ignored by NewWithModels.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient sets the HTTP client used by the genai SDK. Ignored by NewWithModels.
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

// New creates a Client backed by a genai client for the Gemini API.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, dlai.ErrMissingAPIKey
	}
	o := buildOptions(opts)
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: o.httpClient,
	}
	if o.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: o.baseURL}
	}
	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Client{models: gc.Models, config: o.config, log: o.log}, nil
}

// NewFromEnv creates a Client with the key read from the environment now.
// A .env file in the working directory is loaded first; variables already set win.
func NewFromEnv(ctx context.Context, opts ...Option) (*Client, error) {
	if err := config.LoadEnvFiles(config.DefaultEnvFile); err != nil {
		return nil, err
	}
	key, ok := config.APIKey(ProviderName)
	if !ok {
		return nil, fmt.Errorf("%w: set one of %v", dlai.ErrMissingAPIKey, config.APIKeyEnv(ProviderName))
	}
	return New(ctx, key, opts...)
}

// NewWithModels creates a Client around an existing ContentGenerator (e.g. a test stub).
func NewWithModels(models ContentGenerator, opts ...Option) *Client {
	o := buildOptions(opts)
	return &Client{models: models, config: o.config, log: o.log}
}

// Generate translates req, performs one GenerateContent call and returns the response text.
// SDK failures are wrapped in *dlai.ProviderError; there is no retry.
func (c *Client) Generate(ctx context.Context, req *dlai.Request) (*dlai.Response, error) {
	gr, err := Translate(req)
	if err != nil {
		return nil, err
	}
	gr.Config = c.config
	c.log.Debug().
		Str("model", gr.Model).
		Int("parts", len(req.Parts)).
		Msg("generate content")
	resp, err := c.models.GenerateContent(ctx, gr.Model, gr.Contents, gr.Config)
	if err != nil {
		return nil, &dlai.ProviderError{Provider: ProviderName, Model: gr.Model, Err: err}
	}
	return ParseResponse(resp)
}

// Translate converts a dlai.Request into a single user Content.
func Translate(req *dlai.Request) (*Request, error) {
	if req == nil {
		return nil, dlai.ErrNilRequest
	}
	content, err := userContent(req.Parts)
	if err != nil {
		return nil, err
	}
	return &Request{Model: req.Model, Contents: []*genai.Content{content}}, nil
}

func userContent(parts []dlai.ContentPart) (*genai.Content, error) {
	var genParts []*genai.Part
	for _, p := range parts {
		switch x := p.(type) {
		case dlai.TextPart:
			genParts = append(genParts, genai.NewPartFromText(x.Text))
		case dlai.MediaPart:
			data, err := base64.StdEncoding.DecodeString(x.Data)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", dlai.ErrInvalidMedia, err)
			}
			mime := x.MIMEType
			if mime == "" {
				mime = media.DefaultMediaType
			}
			genParts = append(genParts, genai.NewPartFromBytes(data, mime))
		default:
			return nil, dlai.ErrUnsupportedContentType
		}
	}
	if len(genParts) == 0 {
		return genai.NewContentFromText("", genai.RoleUser), nil
	}
	return genai.NewContentFromParts(genParts, genai.RoleUser), nil
}

// ParseResponse returns the concatenated text of the first candidate, which may be empty.
func ParseResponse(resp *genai.GenerateContentResponse) (*dlai.Response, error) {
	if resp == nil {
		return nil, dlai.ErrInvalidResponse
	}
	return &dlai.Response{Text: resp.Text()}, nil
}

// GetResponse sends prompt to model with a client built from the current environment
// (see NewFromEnv).
func GetResponse(ctx context.Context, model, prompt string, opts ...Option) (string, error) {
	c, err := NewFromEnv(ctx, opts...)
	if err != nil {
		return "", err
	}
	return dlai.GetResponse(ctx, c, model, prompt)
}

// ImageCall sends [image, prompt] to model with a client built from the current environment
// and returns the text answer.
func ImageCall(ctx context.Context, model, prompt, mediaType, b64 string, opts ...Option) (string, error) {
	c, err := NewFromEnv(ctx, opts...)
	if err != nil {
		return "", err
	}
	return dlai.ImageCall(ctx, c, model, prompt, mediaType, b64)
}

var _ dlai.Generator = (*Client)(nil)
