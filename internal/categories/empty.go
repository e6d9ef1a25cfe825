package categories

import (
	"context"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/domain"
)

// EmptyStore serves no reference data; used when neither a database nor a
// categories file is configured.
type EmptyStore struct{}

var _ Store = EmptyStore{}

func (EmptyStore) List(context.Context, domain.Source) ([]domain.Category, error) {
	return nil, apperr.NewNotFound("no categories found")
}
