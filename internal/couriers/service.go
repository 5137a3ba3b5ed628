package couriers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

// Service lists a merchant's couriers with their active workload.
type Service interface {
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, params pagination.Params) (*CourierList, error)
}

type service struct {
	repo Repository
}

// NewService builds a couriers service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("couriers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListByMerchant(ctx context.Context, merchantID uuid.UUID, params pagination.Params) (*CourierList, error) {
	if _, err := s.repo.FindMerchant(ctx, merchantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "merchant %s not found", merchantID)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load merchant")
	}

	rows, total, err := s.repo.ListByMerchant(ctx, merchantID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list couriers")
	}

	views := make([]CourierView, 0, len(rows))
	for i := range rows {
		courier := &rows[i]

		totalOrders, err := s.repo.CountActiveAssignments(ctx, courier.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count courier orders")
		}

		breakdown, err := s.repo.ActiveOrdersByStatus(ctx, courier.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "group courier orders")
		}
		byStatus := make(map[string]int64, len(breakdown))
		for _, row := range breakdown {
			byStatus[row.Name] = row.Count
		}

		views = append(views, CourierView{
			ID:             courier.ID,
			FullName:       courier.FullName,
			Email:          courier.Email,
			PhoneNumber:    courier.PhoneNumber,
			IsActive:       courier.IsActive,
			TotalOrders:    totalOrders,
			OrdersByStatus: byStatus,
			CreatedAt:      courier.CreatedAt,
		})
	}
	return &CourierList{Couriers: views, Total: total}, nil
}
