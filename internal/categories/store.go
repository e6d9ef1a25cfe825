// Package categories exposes the read-only category reference data consumed
// by the UI filters. It is not used by the feed pipeline itself.
package categories

import (
	"context"

	"github.com/paper-hunter/paper-hunter/internal/domain"
)

type Store interface {
	List(ctx context.Context, source domain.Source) ([]domain.Category, error)
}
