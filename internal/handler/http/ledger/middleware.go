package ledger_http

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathanwlopes/finapi/internal/domain"
)

type contextKey int

const customerContextKey contextKey = iota

// CustomerCtx resolves the "cpf" request header to a customer record and
// stores it in the request context. Resolution is an exact, case-sensitive
// match on the tax id; no normalization is applied.
func (h *LedgerHandler) CustomerCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		taxID := r.Header.Get("cpf")

		customer, err := h.service.GetCustomer(r.Context(), taxID)
		if err != nil {
			h.logger.Warn("Unknown customer in request header", zap.String("tax_id", taxID))
			respondError(w, http.StatusBadRequest, "Customer not found!")
			return
		}

		ctx := context.WithValue(r.Context(), customerContextKey, customer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func customerFromContext(ctx context.Context) *domain.Customer {
	customer, _ := ctx.Value(customerContextKey).(*domain.Customer)
	return customer
}
