package merchants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

// Service exposes merchant onboarding and listing.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*MerchantView, error)
	Get(ctx context.Context, id uuid.UUID) (*MerchantView, error)
	List(ctx context.Context, params pagination.Params) (*MerchantList, error)
}

type service struct {
	repo Repository
}

// NewService builds a merchants service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("merchants repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*MerchantView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "merchant name is required")
	}

	merchant := &models.Merchant{
		Name:         name,
		ContactEmail: strings.TrimSpace(input.ContactEmail),
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		Address:      strings.TrimSpace(input.Address),
		IsActive:     true,
	}

	created, err := s.repo.Create(ctx, merchant)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create merchant")
	}

	view := toView(created)
	return &view, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*MerchantView, error) {
	merchant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "merchant %s not found", id)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load merchant")
	}
	view := toView(merchant)
	return &view, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*MerchantList, error) {
	rows, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list merchants")
	}

	views := make([]MerchantView, 0, len(rows))
	for i := range rows {
		views = append(views, toView(&rows[i]))
	}
	return &MerchantList{Merchants: views, Total: total}, nil
}

func toView(m *models.Merchant) MerchantView {
	return MerchantView{
		ID:             m.ID,
		Name:           m.Name,
		ContactEmail:   m.ContactEmail,
		ContactPhone:   m.ContactPhone,
		Address:        m.Address,
		IsActive:       m.IsActive,
		CurrentBalance: m.CurrentBalance,
		CreatedAt:      m.CreatedAt,
	}
}
