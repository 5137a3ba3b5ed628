package statuses

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
)

// Service exposes read access to the status registry.
type Service interface {
	List(ctx context.Context, rawType string) ([]StatusView, error)
}

type service struct {
	repo Repository
}

// NewService builds a statuses service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("statuses repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, rawType string) ([]StatusView, error) {
	var filter *enums.StatusType
	if rawType != "" {
		parsed, err := enums.ParseStatusType(rawType)
		if err != nil {
			return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid status type %q", rawType)
		}
		filter = &parsed
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []StatusView{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list statuses")
	}

	views := make([]StatusView, 0, len(rows))
	for _, row := range rows {
		views = append(views, StatusView{
			ID:   row.ID,
			Name: row.Name,
			Type: row.Type,
		})
	}
	return views, nil
}
