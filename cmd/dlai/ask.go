package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
	"github.com/OrtizR52/AgenticAI-DLAI/codetag"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var (
		model string
		code  bool
	)
	cmd := &cobra.Command{
		Use:   "ask PROMPT...",
		Short: "Send a text prompt and print the response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			g, cfg, err := opts.generator(ctx)
			if err != nil {
				return err
			}
			if model == "" {
				model = cfg.Model
			}
			text, err := dlai.GetResponse(ctx, g, model, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if code {
				text = codetag.Ensure(text)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model identifier (default from config)")
	cmd.Flags().BoolVar(&code, "code", false, "Normalize the response into an <execute_python> block")
	return cmd
}
