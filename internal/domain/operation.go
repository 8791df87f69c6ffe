package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and balances travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type OperationKind string

const (
	OperationKindCredit OperationKind = "credit"
	OperationKindDebit  OperationKind = "debit"
)

type Operation struct {
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
	Kind        OperationKind   `json:"kind"`
}

// BalanceOf folds a statement into its balance: credits add, debits subtract.
// The statement is the source of truth; no running total is kept anywhere.
func BalanceOf(statement []Operation) decimal.Decimal {
	balance := decimal.Zero
	for _, op := range statement {
		switch op.Kind {
		case OperationKindCredit:
			balance = balance.Add(op.Amount)
		case OperationKindDebit:
			balance = balance.Sub(op.Amount)
		}
	}
	return balance
}
