package ledger_http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jonathanwlopes/finapi/internal/app/ledger"
	"github.com/jonathanwlopes/finapi/internal/domain"
)

type LedgerHandler struct {
	service ledger.LedgerService
	logger  *zap.Logger
}

func NewLedgerHandler(s ledger.LedgerService, l *zap.Logger) *LedgerHandler {
	return &LedgerHandler{service: s, logger: l}
}

type CreateAccountRequest struct {
	TaxID string `json:"taxId"`
	Name  string `json:"name"`
}

type UpdateAccountRequest struct {
	Name string `json:"name"`
}

type DepositRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *LedgerHandler) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Invalid request body for CreateAccount", zap.Error(err))
		respondError(w, http.StatusBadRequest, "Invalid request body!")
		return
	}

	if _, err := h.service.OpenAccount(r.Context(), req.TaxID, req.Name); err != nil {
		if errors.Is(err, domain.ErrCustomerAlreadyExists) {
			respondError(w, http.StatusBadRequest, "Customer already exists!")
			return
		}
		h.logger.Error("Failed to open account", zap.String("tax_id", req.TaxID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *LedgerHandler) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	customer := customerFromContext(r.Context())
	respondJSON(w, http.StatusOK, customer)
}

func (h *LedgerHandler) UpdateAccountHandler(w http.ResponseWriter, r *http.Request) {
	customer := customerFromContext(r.Context())

	var req UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Invalid request body for UpdateAccount", zap.Error(err))
		respondError(w, http.StatusBadRequest, "Invalid request body!")
		return
	}

	if _, err := h.service.UpdateCustomerName(r.Context(), customer.TaxID, req.Name); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *LedgerHandler) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	customer := customerFromContext(r.Context())

	remaining, err := h.service.CloseAccount(r.Context(), customer.TaxID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, remaining)
}

func (h *LedgerHandler) GetStatementHandler(w http.ResponseWriter, r *http.Request) {
	customer := customerFromContext(r.Context())

	statement, err := h.service.Statement(r.Context(), customer.TaxID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, statement)
}

func (h *LedgerHandler) GetStatementByDateHandler(w http.ResponseWriter, r *http.Request) {
	customer := customerFromContext(r.Context())

	day, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date!")
		return
	}

	statement, err := h.service.StatementByDate(r.Context(), customer.TaxID, day)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, statement)
}

func (h *LedgerHandler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	customer := customerFromContext(r.Context())

	var req DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Invalid request body for Deposit", zap.Error(err))
		respondError(w, http.StatusBadRequest, "Invalid request body!")
		return
	}

	if err := h.service.Deposit(r.Context(), customer.TaxID, req.Amount, req.Description); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *LedgerHandler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	customer := customerFromContext(r.Context())

	var req WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Invalid request body for Withdraw", zap.Error(err))
		respondError(w, http.StatusBadRequest, "Invalid request body!")
		return
	}

	if err := h.service.Withdraw(r.Context(), customer.TaxID, req.Amount); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *LedgerHandler) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	customer := customerFromContext(r.Context())

	balance, err := h.service.Balance(r.Context(), customer.TaxID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, balance)
}

func (h *LedgerHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		respondError(w, http.StatusBadRequest, "Customer not found!")
	case errors.Is(err, domain.ErrInsufficientFunds):
		respondError(w, http.StatusBadRequest, "Insufficient found!")
	case errors.Is(err, domain.ErrInvalidAmount):
		respondError(w, http.StatusBadRequest, "Invalid amount!")
	default:
		h.logger.Error("Unhandled service error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
