package contacts

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

// Service handles public contact submissions and their back-office reads.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*ContactView, error)
	Get(ctx context.Context, id uuid.UUID) (*ContactView, error)
	List(ctx context.Context, params pagination.Params) (*ContactList, error)
}

type service struct {
	repo Repository
}

// NewService builds a contacts service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contacts repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*ContactView, error) {
	if strings.TrimSpace(input.BusinessName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "business name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if input.DriversCount < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "drivers count cannot be negative")
	}

	contact := &models.Contact{
		BusinessName: strings.TrimSpace(input.BusinessName),
		ContactName:  strings.TrimSpace(input.ContactName),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		BusinessType: strings.TrimSpace(input.BusinessType),
		DriversCount: input.DriversCount,
		Message:      strings.TrimSpace(input.Message),
	}

	created, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create contact")
	}
	view := toView(created)
	return &view, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ContactView, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "contact %s not found", id)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load contact")
	}
	view := toView(contact)
	return &view, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*ContactList, error) {
	rows, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list contacts")
	}

	views := make([]ContactView, 0, len(rows))
	for i := range rows {
		views = append(views, toView(&rows[i]))
	}
	return &ContactList{Contacts: views, Total: total}, nil
}

func toView(c *models.Contact) ContactView {
	return ContactView{
		ID:           c.ID,
		BusinessName: c.BusinessName,
		ContactName:  c.ContactName,
		Email:        c.Email,
		Phone:        c.Phone,
		BusinessType: c.BusinessType,
		DriversCount: c.DriversCount,
		Message:      c.Message,
		CreatedAt:    c.CreatedAt,
	}
}
