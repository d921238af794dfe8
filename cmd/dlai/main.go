// Command dlai exposes the helper library on the command line: one-shot text and
// image prompts, image encoding, CSV loading and <execute_python> normalization.
package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
	"github.com/OrtizR52/AgenticAI-DLAI/config"
	"github.com/OrtizR52/AgenticAI-DLAI/logger"
	"github.com/OrtizR52/AgenticAI-DLAI/provider"
)

var log = logger.New("cli")

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configFile string
	provider   string
	timeout    time.Duration
	verbose    bool

	// newGenerator is replaced in tests.
	newGenerator func(ctx context.Context, cfg *config.Config) (dlai.Generator, error)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{
		newGenerator: func(ctx context.Context, cfg *config.Config) (dlai.Generator, error) {
			return provider.New(ctx, cfg, logger.New(cfg.Provider))
		},
	}
	return newRootCmdWith(opts)
}

func newRootCmdWith(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dlai",
		Short:         "Generative AI helpers: prompts, images, CSV data and code tags",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.verbose {
				logger.SetDebug(true)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML config file (or set "+config.EnvConfigFile+")")
	cmd.PersistentFlags().StringVarP(&opts.provider, "provider", "p", "", "Provider backend: gemini, openai, anthropic or ollama")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Timeout for network calls")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newAskCmd(opts),
		newImageCmd(opts),
		newEncodeCmd(opts),
		newCSVCmd(),
		newTagsCmd(),
	)
	return cmd
}

// loadConfig resolves the config; --config and --provider take precedence.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var copts []config.Option
	if o.configFile != "" {
		copts = append(copts, config.WithFile(o.configFile))
	}
	if o.provider != "" {
		copts = append(copts, config.WithProvider(o.provider))
	}
	cfg, err := config.Load(copts...)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Str("vision_model", cfg.VisionModel).
		Msg("config loaded")
	return cfg, nil
}

// generator loads the config and builds the backend for it.
func (o *rootOptions) generator(ctx context.Context) (dlai.Generator, *config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	g, err := o.newGenerator(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return g, cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Send()
		os.Exit(1)
	}
}
