package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// Defaults applied by Load.
const (
	DefaultProvider = ProviderGemini
	DefaultModel    = "gemini-2.5-flash"
	DefaultEnvFile  = ".env"
)

// Environment variables read by Load.
const (
	EnvConfigFile  = "DLAI_CONFIG"
	EnvProvider    = "DLAI_PROVIDER"
	EnvModel       = "DLAI_MODEL"
	EnvVisionModel = "DLAI_VISION_MODEL"
	EnvBaseURL     = "DLAI_BASE_URL"
)

// DefaultModels holds the model used per provider when none is configured.
var DefaultModels = map[string]string{
	ProviderGemini:    DefaultModel,
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-sonnet-4-5",
	ProviderOllama:    "llama3.2",
}

// ErrInvalidConfig is returned when the YAML config file cannot be parsed.
var ErrInvalidConfig = errors.New("config: config file is malformed")

// apiKeyEnv lists key variables per provider, in lookup order. Providers
// without an entry (ollama) need no key.
var apiKeyEnv = map[string][]string{
	ProviderGemini:    {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	ProviderOpenAI:    {"OPENAI_API_KEY"},
	ProviderAnthropic: {"ANTHROPIC_API_KEY"},
}

// Config selects a provider backend and the models used for text and image calls.
type Config struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	VisionModel string `yaml:"vision_model"`
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"-"`
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	envFiles []string
	file     string
	provider string
	lookup   func(string) (string, bool)
}

// WithEnvFiles sets the dotenv files to load. Defaults to DefaultEnvFile. Missing files are skipped.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) { l.envFiles = files }
}

// WithFile sets the YAML config file. Overrides DLAI_CONFIG.
func WithFile(path string) Option {
	return func(l *loader) { l.file = path }
}

// WithProvider selects the provider ahead of DLAI_PROVIDER and the config file.
// Model defaults then follow the chosen provider.
func WithProvider(name string) Option {
	return func(l *loader) { l.provider = name }
}

// WithLookup replaces os.LookupEnv for reading overrides and keys.
func WithLookup(lookup func(string) (string, bool)) Option {
	return func(l *loader) { l.lookup = lookup }
}

// Load builds a Config from dotenv files, the optional YAML file and the environment.
func Load(opts ...Option) (*Config, error) {
	l := &loader{envFiles: []string{DefaultEnvFile}, lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}
	if err := LoadEnvFiles(l.envFiles...); err != nil {
		return nil, err
	}
	cfg := &Config{}
	path := l.file
	if path == "" {
		path, _ = l.lookup(EnvConfigFile)
	}
	if path != "" {
		fileCfg, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		*cfg = *fileCfg
	}
	override(&cfg.Provider, l.lookup, EnvProvider)
	override(&cfg.Model, l.lookup, EnvModel)
	override(&cfg.VisionModel, l.lookup, EnvVisionModel)
	override(&cfg.BaseURL, l.lookup, EnvBaseURL)
	if l.provider != "" {
		cfg.Provider = l.provider
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModels[cfg.Provider]
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = cfg.Model
	}
	cfg.APIKey, _ = lookupKey(cfg.Provider, l.lookup)
	return cfg, nil
}

// ParseBytes parses a YAML config document.
func ParseBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// ParseFile reads and parses a YAML config file.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by caller
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return ParseBytes(data)
}

// APIKey returns the API key for provider from the process environment at call time.
// ok is false when no variable for provider is set or the provider is unknown.
func APIKey(provider string) (key string, ok bool) {
	return lookupKey(provider, os.LookupEnv)
}

// APIKeyEnv returns the environment variables consulted for provider's key.
func APIKeyEnv(provider string) []string {
	return append([]string(nil), apiKeyEnv[strings.ToLower(provider)]...)
}

func lookupKey(provider string, lookup func(string) (string, bool)) (string, bool) {
	for _, name := range apiKeyEnv[strings.ToLower(provider)] {
		if v, ok := lookup(name); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func override(dst *string, lookup func(string) (string, bool), name string) {
	if v, ok := lookup(name); ok && v != "" {
		*dst = v
	}
}

// LoadEnvFiles loads the existing files among files into the process environment.
// Variables already set are kept; missing files are skipped.
func LoadEnvFiles(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: stat env file: %w", err)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("config: load env file: %w", err)
	}
	return nil
}
