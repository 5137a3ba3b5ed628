package transactions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service records transactions and runs the amendment engine.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*TransactionView, error)
	Update(ctx context.Context, input UpdateInput) (*UpdateResult, error)
	Get(ctx context.Context, merchantID, orderID, transactionID uuid.UUID) (*TransactionDetail, error)
	List(ctx context.Context, merchantID, orderID uuid.UUID, params pagination.Params) (*TransactionList, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds a transactions service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("transactions repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// Create records a payment against an order. BalanceAfter is snapshotted
// from the merchant's current balance plus the amount; the merchant balance
// itself is left untouched.
func (s *service) Create(ctx context.Context, input CreateInput) (*TransactionView, error) {
	method := enums.PaymentMethod(strings.TrimSpace(input.PaymentMethod))
	if !method.IsValid() {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid payment method %q", input.PaymentMethod)
	}
	if method.RequiresCardNumber() && cardValue(input.CardNumber) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "card number is required")
	}

	merchant, err := s.repo.FindMerchant(ctx, input.MerchantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "merchant %s not found", input.MerchantID)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load merchant")
	}

	if _, err := s.repo.FindOrderScoped(ctx, input.MerchantID, input.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "order %s not found", input.OrderID)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}

	statusName := strings.TrimSpace(input.StatusName)
	status, err := s.repo.FindTransactionStatus(ctx, statusName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "status %q not found", statusName)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load status")
	}

	transaction := &models.Transaction{
		Amount:              input.Amount,
		PaymentMethod:       method,
		BalanceAfter:        merchant.CurrentBalance.Add(input.Amount),
		CardNumber:          input.CardNumber,
		TransactionStatusID: status.ID,
		MerchantID:          input.MerchantID,
		OrderID:             input.OrderID,
	}

	created, err := s.repo.Create(ctx, transaction)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create transaction")
	}
	created.TransactionStatus = status

	view := toView(created)
	return &view, nil
}

// Update amends a transaction. Fields are diffed in a fixed order (amount,
// paymentMethod, cardNumber, status) and every real change writes one
// append-only history row inside the same transaction as the mutation.
// A no-op amendment writes nothing.
func (s *service) Update(ctx context.Context, input UpdateInput) (*UpdateResult, error) {
	transaction, err := s.repo.FindScoped(ctx, input.MerchantID, input.OrderID, input.TransactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "transaction %s not found", input.TransactionID)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load transaction")
	}

	var changes []Change

	if input.Amount != nil && !input.Amount.Equal(transaction.Amount) {
		changes = append(changes, Change{
			Field:    "amount",
			OldValue: transaction.Amount.String(),
			NewValue: input.Amount.String(),
		})
		transaction.Amount = *input.Amount
	}

	if input.PaymentMethod != nil {
		method := enums.PaymentMethod(strings.TrimSpace(*input.PaymentMethod))
		if !method.IsValid() {
			return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid payment method %q", *input.PaymentMethod)
		}
		if method != transaction.PaymentMethod {
			changes = append(changes, Change{
				Field:    "paymentMethod",
				OldValue: transaction.PaymentMethod.String(),
				NewValue: method.String(),
			})
			transaction.PaymentMethod = method
		}
	}

	if input.CardNumber != nil && cardValue(input.CardNumber) != cardValue(transaction.CardNumber) {
		changes = append(changes, Change{
			Field:    "cardNumber",
			OldValue: cardValue(transaction.CardNumber),
			NewValue: cardValue(input.CardNumber),
		})
		transaction.CardNumber = input.CardNumber
	}

	if input.Status != nil {
		oldName := ""
		if transaction.TransactionStatus != nil {
			oldName = transaction.TransactionStatus.Name
		}
		newName := strings.TrimSpace(*input.Status)
		if newName != oldName {
			status, err := s.repo.FindTransactionStatus(ctx, newName)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "status %q not found", newName)
				}
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load status")
			}
			changes = append(changes, Change{
				Field:    "status",
				OldValue: oldName,
				NewValue: status.Name,
			})
			transaction.TransactionStatusID = status.ID
			transaction.TransactionStatus = status
		}
	}

	if len(changes) == 0 {
		view := toView(transaction)
		return &UpdateResult{Transaction: view, Changes: []Change{}}, nil
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Save(ctx, transaction); err != nil {
			return fmt.Errorf("save transaction: %w", err)
		}
		for _, change := range changes {
			row := &models.TransactionHistory{
				TransactionID: transaction.ID,
				FieldChanged:  change.Field,
				OldValue:      change.OldValue,
				NewValue:      change.NewValue,
			}
			if err := repo.CreateHistory(ctx, row); err != nil {
				return fmt.Errorf("write history %s: %w", change.Field, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "amend transaction")
	}

	view := toView(transaction)
	return &UpdateResult{Transaction: view, Changes: changes}, nil
}

func (s *service) Get(ctx context.Context, merchantID, orderID, transactionID uuid.UUID) (*TransactionDetail, error) {
	transaction, err := s.repo.FindScoped(ctx, merchantID, orderID, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "transaction %s not found", transactionID)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load transaction")
	}

	history, err := s.repo.ListHistory(ctx, transaction.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list history")
	}

	detail := &TransactionDetail{
		TransactionView: toView(transaction),
		History:         make([]HistoryView, 0, len(history)),
	}
	for _, row := range history {
		detail.History = append(detail.History, HistoryView{
			ID:           row.ID,
			FieldChanged: row.FieldChanged,
			OldValue:     row.OldValue,
			NewValue:     row.NewValue,
			CreatedAt:    row.CreatedAt,
		})
	}
	return detail, nil
}

func (s *service) List(ctx context.Context, merchantID, orderID uuid.UUID, params pagination.Params) (*TransactionList, error) {
	rows, total, err := s.repo.ListScoped(ctx, merchantID, orderID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list transactions")
	}

	views := make([]TransactionView, 0, len(rows))
	for i := range rows {
		views = append(views, toView(&rows[i]))
	}
	return &TransactionList{Transactions: views, Total: total}, nil
}

// cardValue normalizes an optional card number: a nil pointer and an empty
// string are the same value for diffing purposes.
func cardValue(card *string) string {
	if card == nil {
		return ""
	}
	return strings.TrimSpace(*card)
}

func toView(t *models.Transaction) TransactionView {
	view := TransactionView{
		ID:            t.ID,
		Amount:        t.Amount,
		PaymentMethod: t.PaymentMethod.String(),
		BalanceAfter:  t.BalanceAfter,
		CardNumber:    t.CardNumber,
		MerchantID:    t.MerchantID,
		OrderID:       t.OrderID,
		CreatedAt:     t.CreatedAt,
	}
	if t.TransactionStatus != nil {
		view.Status = t.TransactionStatus.Name
	}
	return view
}
