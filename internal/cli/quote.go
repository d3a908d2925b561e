package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/skyfare/internal/domain"
	"github.com/aalvaropc/skyfare/internal/infra/logger"
	"github.com/aalvaropc/skyfare/internal/usecase"
)

func quoteCmd() *cobra.Command {
	var workspace string
	var name string
	var miles int
	var elite bool
	var format string

	c := &cobra.Command{
		Use:   "quote",
		Short: "Price a single ticket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := loadPolicy(workspace)
			if err != nil {
				return err
			}

			t := domain.NewTicket()
			t.SetPassengerName(name)
			t.SetNumberOfMiles(miles)
			t.SetHasEliteStatus(elite)

			uc := usecase.NewQuoteTicket(policy, usecase.WithLogger(logger.For("cli.quote")))
			q, err := uc.Execute(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printQuote(cmd.OutOrStdout(), q, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; default pricing is used outside a workspace)")
	c.Flags().StringVarP(&name, "name", "n", "", "Passenger name")
	c.Flags().IntVarP(&miles, "miles", "m", 0, "Number of miles (required, must not be negative)")
	c.Flags().BoolVar(&elite, "elite", false, "Passenger has elite status")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("miles")
	return c
}

func printQuote(w io.Writer, q domain.Quote, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	case "pretty", "":
		elite := "no"
		if q.Elite {
			elite = "yes"
		}
		fmt.Fprintf(w, "Passenger: %s\n", q.PassengerName)
		fmt.Fprintf(w, "Miles:     %d\n", q.Miles)
		fmt.Fprintf(w, "Elite:     %s\n", elite)
		fmt.Fprintf(w, "Base:      %s\n", q.Base)
		fmt.Fprintf(w, "Discount:  %s\n", q.Discount)
		fmt.Fprintf(w, "Price:     %s\n", q.Price)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
