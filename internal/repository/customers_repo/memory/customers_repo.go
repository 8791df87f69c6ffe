package memory

import (
	"context"
	"sync"

	"github.com/jonathanwlopes/finapi/internal/domain"
	"github.com/jonathanwlopes/finapi/internal/repository/customers_repo"
)

// CustomerRepository keeps every customer in process memory. A single
// RWMutex serializes registry membership changes and statement appends, so a
// withdrawal's balance check and its append are atomic with respect to every
// other operation on the same customer.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
	order     []string // tax ids in creation order
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.TaxID]; exists {
		return domain.ErrCustomerAlreadyExists
	}

	stored := cloneCustomer(customer)
	if stored.Statement == nil {
		stored.Statement = []domain.Operation{}
	}
	r.customers[customer.TaxID] = stored
	r.order = append(r.order, customer.TaxID)
	return nil
}

func (r *CustomerRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.customers[taxID]
	if !exists {
		return nil, domain.ErrCustomerNotFound
	}
	return cloneCustomer(customer), nil
}

func (r *CustomerRepository) UpdateName(ctx context.Context, taxID string, name string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, exists := r.customers[taxID]
	if !exists {
		return nil, domain.ErrCustomerNotFound
	}
	customer.Name = name
	return cloneCustomer(customer), nil
}

func (r *CustomerRepository) Delete(ctx context.Context, taxID string) ([]*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[taxID]; !exists {
		return nil, domain.ErrCustomerNotFound
	}
	delete(r.customers, taxID)

	remaining := make([]*domain.Customer, 0, len(r.customers))
	order := make([]string, 0, len(r.customers))
	for _, id := range r.order {
		if id == taxID {
			continue
		}
		order = append(order, id)
		remaining = append(remaining, cloneCustomer(r.customers[id]))
	}
	r.order = order
	return remaining, nil
}

func (r *CustomerRepository) AppendOperation(ctx context.Context, taxID string, op domain.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, exists := r.customers[taxID]
	if !exists {
		return domain.ErrCustomerNotFound
	}

	// A debit may not drive the balance negative. Withdrawing the exact
	// balance is allowed.
	if op.Kind == domain.OperationKindDebit {
		if op.Amount.GreaterThan(domain.BalanceOf(customer.Statement)) {
			return domain.ErrInsufficientFunds
		}
	}

	customer.Statement = append(customer.Statement, op)
	return nil
}

func (r *CustomerRepository) Statement(ctx context.Context, taxID string) ([]domain.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.customers[taxID]
	if !exists {
		return nil, domain.ErrCustomerNotFound
	}
	return cloneStatement(customer.Statement), nil
}

// cloneCustomer copies a record so callers can never reach the stored
// statement slice through a returned value.
func cloneCustomer(c *domain.Customer) *domain.Customer {
	clone := *c
	clone.Statement = cloneStatement(c.Statement)
	return &clone
}

func cloneStatement(statement []domain.Operation) []domain.Operation {
	out := make([]domain.Operation, len(statement))
	copy(out, statement)
	return out
}

var _ customers_repo.CustomerRepository = (*CustomerRepository)(nil)
