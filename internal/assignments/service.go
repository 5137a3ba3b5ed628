package assignments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service assigns couriers to orders.
type Service interface {
	Assign(ctx context.Context, orderID, userID uuid.UUID) (*AssignmentView, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds an assignments service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("assignments repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// Assign deactivates any active assignment for the order and records a new
// active one. Both writes happen in one transaction so the order never holds
// two active couriers. Reassignment is last-writer-wins.
func (s *service) Assign(ctx context.Context, orderID, userID uuid.UUID) (*AssignmentView, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	if _, err := s.repo.FindOrder(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "order %s not found", orderID)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}

	if _, err := s.repo.FindUser(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "user %s not found", userID)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}

	assignment := &models.OrderAssignment{
		OrderID:  orderID,
		UserID:   userID,
		IsActive: true,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.DeactivateForOrder(ctx, orderID); err != nil {
			return fmt.Errorf("deactivate assignments: %w", err)
		}
		if _, err := repo.Create(ctx, assignment); err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "assign courier")
	}

	return &AssignmentView{
		ID:         assignment.ID,
		OrderID:    assignment.OrderID,
		UserID:     assignment.UserID,
		IsActive:   assignment.IsActive,
		AssignedAt: assignment.AssignedAt,
	}, nil
}
