package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines which side of the ledger an amount falls on.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// TransactionStatus tracks whether a transaction has been settled.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
)

// Transaction represents a single financial event. Amount is always a
// non-negative magnitude; the direction is carried by Type. A reconciled
// transaction is always completed.
type Transaction struct {
	ID             string            `json:"id"`
	Type           TransactionType   `json:"type"`
	Description    string            `json:"description"`
	Supplier       string            `json:"supplier,omitempty"`
	Amount         decimal.Decimal   `json:"amount"`
	Category       string            `json:"category"`
	CostCenter     string            `json:"cost_center,omitempty"`
	CompetenceDate time.Time         `json:"competence_date"`
	DueDate        time.Time         `json:"due_date"`
	InvoiceNumber  string            `json:"invoice_number,omitempty"`
	Status         TransactionStatus `json:"status"`
	Reconciled     bool              `json:"reconciled"`
	BankAccount    string            `json:"bank_account"`
}

var (
	ErrNegativeAmount    = errors.New("transaction amount must not be negative")
	ErrInvalidType       = errors.New("transaction type must be income or expense")
	ErrInvalidStatus     = errors.New("transaction status must be pending or completed")
	ErrReconciledPending = errors.New("a reconciled transaction cannot be pending")
)

// Validate checks the input contract for a transaction. Violations are
// surfaced at the ingestion boundary; the aggregation engine assumes
// validated snapshots.
func (t Transaction) Validate() error {
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return ErrInvalidType
	}
	if t.Status != StatusPending && t.Status != StatusCompleted {
		return ErrInvalidStatus
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if t.Reconciled && t.Status != StatusCompleted {
		return ErrReconciledPending
	}
	return nil
}
