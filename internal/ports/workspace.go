package ports

import "github.com/aalvaropc/skyfare/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
