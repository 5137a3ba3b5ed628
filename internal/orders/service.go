package orders

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

// Service exposes order creation and the merchant/courier listings.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*OrderView, error)
	Get(ctx context.Context, merchantID, orderID uuid.UUID) (*OrderDetail, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, statusName string, params pagination.Params) (*OrderList, error)
	ListByCourier(ctx context.Context, courierID uuid.UUID, statusName string, params pagination.Params) (*OrderList, error)
}

type service struct {
	repo Repository
}

// NewService builds an orders service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*OrderView, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order title is required")
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	statusName := strings.TrimSpace(input.StatusName)
	if statusName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status is required")
	}

	if _, err := s.repo.FindMerchant(ctx, input.MerchantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "merchant %s not found", input.MerchantID)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load merchant")
	}

	status, err := s.repo.FindOrderStatus(ctx, statusName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "status %q not found", statusName)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load status")
	}

	order := &models.Order{
		Title:            title,
		Amount:           input.Amount,
		CustomerName:     strings.TrimSpace(input.CustomerName),
		AddressText:      strings.TrimSpace(input.AddressText),
		AddressLatitude:  input.AddressLatitude,
		AddressLongitude: input.AddressLongitude,
		AdditionalNotes:  input.AdditionalNotes,
		StatusID:         status.ID,
		MerchantID:       input.MerchantID,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}
	created.Status = status

	view := toView(created)
	return &view, nil
}

func (s *service) Get(ctx context.Context, merchantID, orderID uuid.UUID) (*OrderDetail, error) {
	order, err := s.repo.FindScoped(ctx, merchantID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "order %s not found", orderID)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}

	assignments, err := s.repo.ListAssignments(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list assignments")
	}

	detail := &OrderDetail{
		OrderView:   toView(order),
		Assignments: make([]AssignmentView, 0, len(assignments)),
	}
	for i := range assignments {
		row := &assignments[i]
		view := AssignmentView{
			ID:         row.ID,
			UserID:     row.UserID,
			IsActive:   row.IsActive,
			AssignedAt: row.AssignedAt,
		}
		if row.User != nil {
			view.UserFullName = row.User.FullName
			view.UserEmail = row.User.Email
		}
		detail.Assignments = append(detail.Assignments, view)
	}
	return detail, nil
}

func (s *service) ListByMerchant(ctx context.Context, merchantID uuid.UUID, statusName string, params pagination.Params) (*OrderList, error) {
	rows, total, err := s.repo.ListByMerchant(ctx, merchantID, strings.TrimSpace(statusName), params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list merchant orders")
	}
	return toList(rows, total), nil
}

func (s *service) ListByCourier(ctx context.Context, courierID uuid.UUID, statusName string, params pagination.Params) (*OrderList, error) {
	rows, total, err := s.repo.ListByCourier(ctx, courierID, strings.TrimSpace(statusName), params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list courier orders")
	}
	return toList(rows, total), nil
}

func toList(rows []models.Order, total int64) *OrderList {
	views := make([]OrderView, 0, len(rows))
	for i := range rows {
		views = append(views, toView(&rows[i]))
	}
	return &OrderList{Orders: views, Total: total}
}

func toView(o *models.Order) OrderView {
	view := OrderView{
		ID:               o.ID,
		Title:            o.Title,
		Amount:           o.Amount,
		CustomerName:     o.CustomerName,
		AddressText:      o.AddressText,
		AddressLatitude:  o.AddressLatitude,
		AddressLongitude: o.AddressLongitude,
		AdditionalNotes:  o.AdditionalNotes,
		MerchantID:       o.MerchantID,
		CreatedAt:        o.CreatedAt,
	}
	if o.Status != nil {
		view.Status = o.Status.Name
	}
	return view
}
