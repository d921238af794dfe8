package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/OrtizR52/AgenticAI-DLAI/dataset"
)

func newCSVCmd() *cobra.Command {
	var (
		limit int
		comma string
		sum   string
		by    string
	)
	cmd := &cobra.Command{
		Use:   "csv PATH",
		Short: "Load a CSV, derive quarter/month/year from its date column and print it as TSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []dataset.Option
			if comma != "" {
				r := []rune(comma)
				if len(r) != 1 {
					return fmt.Errorf("--comma must be a single character, got %q", comma)
				}
				opts = append(opts, dataset.WithComma(r[0]))
			}
			tbl, err := dataset.Load(args[0], opts...)
			if err != nil {
				return err
			}
			log.Debug().Str("path", args[0]).Int("rows", tbl.Len()).Strs("columns", tbl.Columns).Msg("table loaded")
			if sum != "" {
				groups, err := tbl.SumBy(by, sum)
				if err != nil {
					return err
				}
				return writeGroups(cmd.OutOrStdout(), by, sum, groups)
			}
			return writeTSV(cmd.OutOrStdout(), tbl, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print at most n rows (0 prints all)")
	cmd.Flags().StringVar(&comma, "comma", "", "Field delimiter (default ',')")
	cmd.Flags().StringVar(&sum, "sum", "", "Print the total of this numeric column per --by group instead of the rows")
	cmd.Flags().StringVar(&by, "by", dataset.QuarterColumn, "Grouping column for --sum")
	return cmd
}

func writeTSV(w io.Writer, tbl *dataset.Table, limit int) error {
	if _, err := fmt.Fprintln(w, strings.Join(tbl.Columns, "\t")); err != nil {
		return err
	}
	rows := tbl.Rows
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	cells := make([]string, len(tbl.Columns))
	for _, row := range rows {
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func writeGroups(w io.Writer, by, sum string, groups []dataset.Group) error {
	if _, err := fmt.Fprintf(w, "%s\t%s\trows\n", by, sum); err != nil {
		return err
	}
	for _, g := range groups {
		total := strconv.FormatFloat(g.Sum, 'f', -1, 64)
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", formatCell(g.Key), total, g.Count); err != nil {
			return err
		}
	}
	return nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.DateTime)
	default:
		return fmt.Sprint(x)
	}
}
