package customers_repo

import (
	"context"

	"github.com/jonathanwlopes/finapi/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
	UpdateName(ctx context.Context, taxID string, name string) (*domain.Customer, error)
	Delete(ctx context.Context, taxID string) ([]*domain.Customer, error)
	AppendOperation(ctx context.Context, taxID string, op domain.Operation) error
	Statement(ctx context.Context, taxID string) ([]domain.Operation, error)
}
