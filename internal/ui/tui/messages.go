package tui

import "github.com/aalvaropc/skyfare/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type batchesLoadedMsg struct {
	root string
	refs []domain.BatchRef
	err  error
}

type quoteDoneMsg struct {
	quote domain.Quote
	err   error
}

type demoDoneMsg struct {
	out string
	err error
}

type batchPricedMsg struct {
	artifact domain.QuoteArtifact
	id       string
	err      error
}
