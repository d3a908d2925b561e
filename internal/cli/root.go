package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/skyfare/internal/infra/fsworkspace"
	"github.com/aalvaropc/skyfare/internal/infra/logger"
	"github.com/aalvaropc/skyfare/internal/infra/workspacefinder"
	"github.com/aalvaropc/skyfare/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "skyfare",
		Short:        "Skyfare: airline ticket pricing",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			root, ok := currentWorkspace()
			if !ok {
				return
			}
			cleanup, _ = logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
			if debug && cmd.HasParent() && logger.Path() != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logger.Path())
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
				cleanup = nil
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				LogPath:              logger.Path(),
				Debug:                debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .skyfare/logs/skyfare.log")

	cmd.AddCommand(
		quoteCmd(),
		demoCmd(),
		initCmd(),
		batchCmd(),
		batchesCmd(),
		quotesCmd(),
		versionCmd(),
	)
	return cmd
}

// currentWorkspace finds the workspace enclosing the working directory.
// Logs are only written inside a workspace.
func currentWorkspace() (string, bool) {
	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	wd, _ = filepath.Abs(wd)

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil || root == "" {
		return "", false
	}
	return root, true
}
