package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jonathanwlopes/finapi/internal/domain"
	"github.com/jonathanwlopes/finapi/internal/repository/customers_repo"
	"github.com/jonathanwlopes/finapi/internal/util"
)

type LedgerService interface {
	OpenAccount(ctx context.Context, taxID string, name string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, taxID string) (*domain.Customer, error)
	UpdateCustomerName(ctx context.Context, taxID string, name string) (*domain.Customer, error)
	CloseAccount(ctx context.Context, taxID string) ([]*domain.Customer, error)
	Deposit(ctx context.Context, taxID string, amount decimal.Decimal, description string) error
	Withdraw(ctx context.Context, taxID string, amount decimal.Decimal) error
	Statement(ctx context.Context, taxID string) ([]domain.Operation, error)
	StatementByDate(ctx context.Context, taxID string, day time.Time) ([]domain.Operation, error)
	Balance(ctx context.Context, taxID string) (decimal.Decimal, error)
}

type ledgerService struct {
	customerRepo customers_repo.CustomerRepository
	location     *time.Location
	logger       *zap.Logger
}

func NewLedgerService(customerRepo customers_repo.CustomerRepository, location *time.Location, logger *zap.Logger) LedgerService {
	return &ledgerService{
		customerRepo: customerRepo,
		location:     location,
		logger:       logger,
	}
}

func (s *ledgerService) OpenAccount(ctx context.Context, taxID string, name string) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:        util.GenerateUUID(),
		Name:      name,
		TaxID:     taxID,
		Statement: []domain.Operation{},
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if err == domain.ErrCustomerAlreadyExists {
			s.logger.Warn("Attempt to open an account that already exists", zap.String("tax_id", taxID))
			return nil, domain.ErrCustomerAlreadyExists
		}
		return nil, fmt.Errorf("failed to open account for tax id %s: %w", taxID, err)
	}

	s.logger.Info("Account opened", zap.String("customer_id", customer.ID), zap.String("tax_id", taxID))
	return customer, nil
}

func (s *ledgerService) GetCustomer(ctx context.Context, taxID string) (*domain.Customer, error) {
	return s.customerRepo.GetByTaxID(ctx, taxID)
}

func (s *ledgerService) UpdateCustomerName(ctx context.Context, taxID string, name string) (*domain.Customer, error) {
	customer, err := s.customerRepo.UpdateName(ctx, taxID, name)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Customer name updated", zap.String("customer_id", customer.ID), zap.String("tax_id", taxID))
	return customer, nil
}

func (s *ledgerService) CloseAccount(ctx context.Context, taxID string) ([]*domain.Customer, error) {
	remaining, err := s.customerRepo.Delete(ctx, taxID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Account closed", zap.String("tax_id", taxID), zap.Int("remaining_customers", len(remaining)))
	return remaining, nil
}

func (s *ledgerService) Deposit(ctx context.Context, taxID string, amount decimal.Decimal, description string) error {
	if amount.IsNegative() {
		return domain.ErrInvalidAmount
	}

	op := domain.Operation{
		Description: description,
		Amount:      amount,
		CreatedAt:   time.Now(),
		Kind:        domain.OperationKindCredit,
	}
	if err := s.customerRepo.AppendOperation(ctx, taxID, op); err != nil {
		return err
	}

	s.logger.Info("Deposit recorded", zap.String("tax_id", taxID), zap.String("amount", amount.String()))
	return nil
}

func (s *ledgerService) Withdraw(ctx context.Context, taxID string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrInvalidAmount
	}

	op := domain.Operation{
		Amount:    amount,
		CreatedAt: time.Now(),
		Kind:      domain.OperationKindDebit,
	}
	if err := s.customerRepo.AppendOperation(ctx, taxID, op); err != nil {
		if err == domain.ErrInsufficientFunds {
			s.logger.Warn("Withdrawal rejected, insufficient funds", zap.String("tax_id", taxID), zap.String("amount", amount.String()))
		}
		return err
	}

	s.logger.Info("Withdrawal recorded", zap.String("tax_id", taxID), zap.String("amount", amount.String()))
	return nil
}

func (s *ledgerService) Statement(ctx context.Context, taxID string) ([]domain.Operation, error) {
	return s.customerRepo.Statement(ctx, taxID)
}

// StatementByDate keeps only operations created on the given calendar day.
// Both sides of the comparison are truncated to day resolution in the
// configured statement time zone.
func (s *ledgerService) StatementByDate(ctx context.Context, taxID string, day time.Time) ([]domain.Operation, error) {
	statement, err := s.customerRepo.Statement(ctx, taxID)
	if err != nil {
		return nil, err
	}

	wantYear, wantMonth, wantDay := day.Date()
	filtered := make([]domain.Operation, 0)
	for _, op := range statement {
		year, month, opDay := op.CreatedAt.In(s.location).Date()
		if year == wantYear && month == wantMonth && opDay == wantDay {
			filtered = append(filtered, op)
		}
	}
	return filtered, nil
}

func (s *ledgerService) Balance(ctx context.Context, taxID string) (decimal.Decimal, error) {
	statement, err := s.customerRepo.Statement(ctx, taxID)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.BalanceOf(statement), nil
}
