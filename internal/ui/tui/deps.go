package tui

import (
	"log/slog"

	"github.com/aalvaropc/skyfare/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger  *slog.Logger
	LogPath string
	Debug   bool
}
