package provider

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
	"github.com/OrtizR52/AgenticAI-DLAI/config"
	"github.com/OrtizR52/AgenticAI-DLAI/provider/anthropic"
	"github.com/OrtizR52/AgenticAI-DLAI/provider/gemini"
	"github.com/OrtizR52/AgenticAI-DLAI/provider/ollama"
	"github.com/OrtizR52/AgenticAI-DLAI/provider/openai"
)

func TestMain(m *testing.M) {
	// genai imports opencensus, whose stats worker starts in init and never exits.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func TestNew_SelectsBackend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	log := zerolog.Nop()

	g, err := New(ctx, &config.Config{Provider: config.ProviderGemini, APIKey: "k"}, log)
	require.NoError(t, err)
	assert.IsType(t, &gemini.Client{}, g)

	g, err = New(ctx, &config.Config{Provider: config.ProviderOpenAI, APIKey: "k", BaseURL: "https://proxy.example/v1/"}, log)
	require.NoError(t, err)
	assert.IsType(t, &openai.Client{}, g)

	g, err = New(ctx, &config.Config{Provider: config.ProviderAnthropic, APIKey: "k"}, log)
	require.NoError(t, err)
	assert.IsType(t, &anthropic.Client{}, g)

	g, err = New(ctx, &config.Config{Provider: config.ProviderOllama, BaseURL: "http://localhost:11434"}, log)
	require.NoError(t, err)
	assert.IsType(t, &ollama.Client{}, g)
}

func TestNew_MissingKey(t *testing.T) {
	t.Parallel()
	for _, name := range Names {
		if len(config.APIKeyEnv(name)) == 0 {
			continue
		}
		_, err := New(context.Background(), &config.Config{Provider: name}, zerolog.Nop())
		require.ErrorIs(t, err, dlai.ErrMissingAPIKey, name)
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	t.Parallel()
	_, err := New(context.Background(), &config.Config{Provider: "mistral", APIKey: "k"}, zerolog.Nop())
	require.ErrorIs(t, err, dlai.ErrUnknownProvider)
}

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()
	_, err := New(context.Background(), nil, zerolog.Nop())
	require.Error(t, err)
}
