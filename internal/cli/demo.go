package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/skyfare/internal/usecase"
)

func demoCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "demo",
		Short: "Price the two sample tickets and print their cost",
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := loadPolicy(workspace)
			if err != nil {
				return err
			}
			return usecase.RunDemo(cmd.OutOrStdout(), policy)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; default pricing is used outside a workspace)")
	return c
}
