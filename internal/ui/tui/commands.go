package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/skyfare/internal/domain"
	"github.com/aalvaropc/skyfare/internal/infra/quotestore"
	"github.com/aalvaropc/skyfare/internal/infra/workspacefinder"
	"github.com/aalvaropc/skyfare/internal/infra/yamlbatch"
	"github.com/aalvaropc/skyfare/internal/usecase"
)

const batchTimeout = time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

// policyFor returns the workspace pricing, or the default pricing when
// root is empty.
func policyFor(root string) (domain.PricingPolicy, error) {
	if root == "" {
		return domain.DefaultPricingPolicy(), nil
	}
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return domain.PricingPolicy{}, err
	}
	return cfg.Pricing, nil
}

func cmdQuote(root string, t domain.Ticket, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		policy, err := policyFor(root)
		if err != nil {
			return quoteDoneMsg{err: err}
		}

		uc := usecase.NewQuoteTicket(policy, usecase.WithLogger(log))
		q, err := uc.Execute(context.Background(), t)
		return quoteDoneMsg{quote: q, err: err}
	}
}

func cmdRunDemo(root string) tea.Cmd {
	return func() tea.Msg {
		policy, err := policyFor(root)
		if err != nil {
			return demoDoneMsg{err: err}
		}

		var buf bytes.Buffer
		if err := usecase.RunDemo(&buf, policy); err != nil {
			return demoDoneMsg{err: err}
		}
		return demoDoneMsg{out: buf.String()}
	}
}

func cmdLoadBatches(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return batchesLoadedMsg{root: root, err: err}
		}

		loader := yamlbatch.NewLoader(yamlbatch.WithBatchesDir(cfg.Paths.BatchesDir))
		refs, err := loader.ListBatches(root)
		return batchesLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdPriceBatch(root, path string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			log.Error("batch.load_config.failed", "err", err)
			return batchPricedMsg{err: err}
		}

		loader := yamlbatch.NewLoader(yamlbatch.WithBatchesDir(cfg.Paths.BatchesDir))
		store := quotestore.NewJSONStore(root, cfg, quotestore.WithIndex(true))
		uc := usecase.NewPriceBatch(loader, store, cfg.Pricing, log)

		ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
		defer cancel()

		art, id, err := uc.Execute(ctx, path)
		return batchPricedMsg{artifact: art, id: id, err: err}
	}
}
