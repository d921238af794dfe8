package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
	"github.com/OrtizR52/AgenticAI-DLAI/media"
)

func newImageCmd(opts *rootOptions) *cobra.Command {
	var (
		model    string
		file     string
		maxBytes int64
	)
	cmd := &cobra.Command{
		Use:   "image --file PATH|URL PROMPT...",
		Short: "Send an image with a prompt and print the text response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			var mediaType, b64 string
			var err error
			if strings.HasPrefix(file, "https://") {
				mediaType, b64, err = media.EncodeImageURL(ctx, file, maxBytes)
			} else {
				mediaType, b64, err = media.EncodeImageB64(file)
			}
			if err != nil {
				return err
			}
			log.Debug().Str("file", file).Str("media_type", mediaType).Int("b64_len", len(b64)).Msg("image encoded")

			g, cfg, err := opts.generator(ctx)
			if err != nil {
				return err
			}
			if model == "" {
				model = cfg.VisionModel
			}
			text, err := dlai.ImageCall(ctx, g, model, strings.Join(args, " "), mediaType, b64)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model identifier (default vision_model from config)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Image path or https URL")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", media.DefaultMaxBodySize, "Download size limit for URLs")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
