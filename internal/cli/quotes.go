package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/skyfare/internal/domain"
	"github.com/aalvaropc/skyfare/internal/usecase/query"
)

func quotesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "quotes",
		Short: "Inspect saved quotes",
	}

	c.AddCommand(quotesListCmd(), quotesShowCmd())
	return c
}

func quotesListCmd() *cobra.Command {
	var workspace string
	var minTotal string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved quotes, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.store.ListQuotes()
			if err != nil {
				return err
			}
			if strings.TrimSpace(minTotal) != "" {
				floor, err := domain.ParseMoney(minTotal)
				if err != nil {
					return fmt.Errorf("--min-total: %w", err)
				}
				refs = filterByTotal(refs, floor)
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no saved quotes)")
				return nil
			}
			for _, r := range refs {
				fmt.Fprintf(w, "- %s  %s  %d ticket(s)  %s  (%s)\n",
					r.ID, r.Batch, r.Tickets, r.Total, r.StartedAt.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&minTotal, "min-total", "", "Only list quotes whose total is at least this amount, e.g. '$50' or 12.50")
	return cmd
}

func filterByTotal(refs []domain.QuoteRef, floor domain.Money) []domain.QuoteRef {
	out := refs[:0:0]
	for _, r := range refs {
		if r.Total >= floor {
			out = append(out, r)
		}
	}
	return out
}

func quotesShowCmd() *cobra.Command {
	var workspace string
	var exprs []string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved quote artifact, or query it with JSONPath",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			doc, err := ws.store.LoadQuote(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(exprs) == 0 {
				_, err := w.Write(doc)
				if err == nil {
					fmt.Fprintln(w)
				}
				return err
			}

			results, err := query.Apply(doc, exprs)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if !r.OK {
					failed++
					fmt.Fprintf(w, "%s: error: %s\n", r.Expr, r.Error)
					continue
				}
				if len(results) == 1 {
					fmt.Fprintln(w, r.Value)
				} else {
					fmt.Fprintf(w, "%s: %s\n", r.Expr, r.Value)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d query expression(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringArrayVarP(&exprs, "query", "q", nil, "JSONPath expression (repeatable), e.g. '$.total_cents'")
	return cmd
}
