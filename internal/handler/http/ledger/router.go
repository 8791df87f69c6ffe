package ledger_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jonathanwlopes/finapi/internal/app/ledger"
)

func RegisterRoutes(r chi.Router, s ledger.LedgerService, l *zap.Logger) {
	handler := NewLedgerHandler(s, l.With(zap.String("component", "LedgerHTTPHandler")))

	r.Route("/health", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("FinAPI is healthy!"))
		})
	})

	r.Post("/account", handler.CreateAccountHandler)

	// Every other endpoint requires the customer identity header.
	r.Group(func(r chi.Router) {
		r.Use(handler.CustomerCtx)

		r.Get("/account", handler.GetAccountHandler)
		r.Put("/account", handler.UpdateAccountHandler)
		r.Delete("/account", handler.DeleteAccountHandler)
		r.Get("/statement", handler.GetStatementHandler)
		r.Get("/statement/date", handler.GetStatementByDateHandler)
		r.Post("/deposit", handler.DepositHandler)
		r.Post("/withdraw", handler.WithdrawHandler)
		r.Get("/balance", handler.GetBalanceHandler)
	})
}
