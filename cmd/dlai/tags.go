package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/OrtizR52/AgenticAI-DLAI/codetag"
)

func newTagsCmd() *cobra.Command {
	var extract bool
	cmd := &cobra.Command{
		Use:   "tags [FILE]",
		Short: "Wrap code from FILE or stdin in an <execute_python> block",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			text := codetag.Ensure(string(data))
			if extract {
				code, ok := codetag.Extract(text)
				if !ok {
					return fmt.Errorf("no complete %s block found", codetag.OpenTag)
				}
				text = code
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().BoolVar(&extract, "extract", false, "Print only the code inside the block")
	return cmd
}
