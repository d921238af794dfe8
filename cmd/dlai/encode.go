package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/OrtizR52/AgenticAI-DLAI/media"
)

type encoded struct {
	path      string
	mediaType string
	b64       string
}

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	var (
		full bool
		jobs int
	)
	cmd := &cobra.Command{
		Use:   "encode PATH...",
		Short: "Print the media type and base64 size (or payload) of image files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			results, err := encodeAll(ctx, args, jobs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				if full {
					_, err = fmt.Fprintf(out, "%s\t%s\t%s\n", r.path, r.mediaType, r.b64)
				} else {
					_, err = fmt.Fprintf(out, "%s\t%s\t%d\n", r.path, r.mediaType, len(r.b64))
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Print the base64 payload instead of its length")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Files encoded in parallel")
	return cmd
}

// encodeAll encodes paths concurrently and returns results in input order.
func encodeAll(ctx context.Context, paths []string, jobs int) ([]encoded, error) {
	results := make([]encoded, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mediaType, b64, err := media.EncodeImageB64(p)
			if err != nil {
				return err
			}
			results[i] = encoded{path: p, mediaType: mediaType, b64: b64}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
