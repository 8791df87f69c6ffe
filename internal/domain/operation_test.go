package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func op(kind OperationKind, amount int64) Operation {
	return Operation{Kind: kind, Amount: decimal.NewFromInt(amount)}
}

func TestBalanceOf(t *testing.T) {
	tests := []struct {
		name      string
		statement []Operation
		want      int64
	}{
		{"empty statement", nil, 0},
		{"single credit", []Operation{op(OperationKindCredit, 100)}, 100},
		{"credit minus debit", []Operation{op(OperationKindCredit, 100), op(OperationKindDebit, 40)}, 60},
		{"debit down to zero", []Operation{op(OperationKindCredit, 100), op(OperationKindDebit, 100)}, 0},
		{"interleaved operations", []Operation{
			op(OperationKindCredit, 50),
			op(OperationKindDebit, 20),
			op(OperationKindCredit, 5),
			op(OperationKindDebit, 35),
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BalanceOf(tt.statement)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("BalanceOf() = %s, want %d", got, tt.want)
			}
		})
	}
}
