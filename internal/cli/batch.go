package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/skyfare/internal/domain"
	"github.com/aalvaropc/skyfare/internal/infra/logger"
	"github.com/aalvaropc/skyfare/internal/ports"
	"github.com/aalvaropc/skyfare/internal/usecase"
)

func batchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "batch",
		Short: "Price or validate a batch of tickets",
	}

	c.AddCommand(batchRunCmd(), batchValidateCmd())
	return c
}

func batchRunCmd() *cobra.Command {
	var workspace string
	var batch string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Price every ticket of a batch and save the quotes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveBatchPath(ws, batch)
			if err != nil {
				return err
			}

			var store ports.QuoteStore = ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewPriceBatch(ws.batches, store, ws.cfg.Pricing, logger.For("cli.batch"))
			art, id, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				if len(art.Quotes) > 0 {
					_ = printArtifact(cmd.OutOrStdout(), art, id, format)
				}
				return err
			}
			return printArtifact(cmd.OutOrStdout(), art, id, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&batch, "batch", "b", "", "Batch name or path (required)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save quotes under quotes/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("batch")
	return c
}

func batchValidateCmd() *cobra.Command {
	var workspace string
	var batch string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a batch file and the workspace pricing (no quotes)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveBatchPath(ws, batch)
			if err != nil {
				return err
			}

			n, err := usecase.NewValidateBatch(ws.batches, ws.cfg.Pricing).Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK (%d ticket(s))\n", n)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&batch, "batch", "b", "", "Batch name or path (required)")

	_ = c.MarkFlagRequired("batch")
	return c
}

func batchesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "batches",
		Short: "Manage ticket batches in a workspace",
	}

	c.AddCommand(batchesListCmd())
	return c
}

func batchesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List batches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.batches.ListBatches(ws.root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no batches found)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func printArtifact(w io.Writer, a domain.QuoteArtifact, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case "pretty", "":
		printPrettyArtifact(w, a, id)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyArtifact(w io.Writer, a domain.QuoteArtifact, id string) {
	fmt.Fprintf(w, "Batch:    %s\n", a.BatchName)
	fmt.Fprintf(w, "Pricing:  %s\n", a.Policy)
	fmt.Fprintf(w, "Started:  %s\n", a.StartedAt.Format(time.RFC3339))
	if id != "" {
		fmt.Fprintf(w, "Quote ID: %s\n", id)
	}
	fmt.Fprintln(w)

	for _, q := range a.Quotes {
		tag := ""
		if q.Elite {
			tag = " [elite]"
		}
		fmt.Fprintf(w, "- %s%s: %d mi -> %s\n", q.PassengerName, tag, q.Miles, q.Price)
	}

	fmt.Fprintf(w, "\nTotal:    %s (%d ticket(s))\n", a.Total, len(a.Quotes))
}
