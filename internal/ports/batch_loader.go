package ports

import "github.com/aalvaropc/skyfare/internal/domain"

// BatchLoader loads ticket batches from a source (e.g., filesystem).
type BatchLoader interface {
	LoadBatch(path string) (domain.Batch, error)
	ListBatches(root string) ([]domain.BatchRef, error)
}
