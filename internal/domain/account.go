package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount holds the identification of a bank account and the balance it
// opened with. CurrentBalance is derived data; the engine recomputes it from
// reconciled transactions and never trusts a cached value.
type BankAccount struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	BankCode       string          `json:"bank_code"`
	Agency         string          `json:"agency"`
	AccountNumber  string          `json:"account_number"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	IsPrimary      bool            `json:"is_primary"`
}

// StatementDirection is the side of a bank statement line.
type StatementDirection string

const (
	StatementCredit StatementDirection = "credit"
	StatementDebit  StatementDirection = "debit"
)

// BankStatement is one line of an imported bank statement. Amount keeps the
// sign reported by the bank; Direction is derived from it on import.
type BankStatement struct {
	ID              string             `json:"id"`
	BankAccountID   string             `json:"bank_account_id"`
	TransactionDate time.Time          `json:"transaction_date"`
	Description     string             `json:"description"`
	Amount          decimal.Decimal    `json:"amount"`
	Direction       StatementDirection `json:"direction"`
	Reconciled      bool               `json:"reconciled"`
	TransactionID   string             `json:"transaction_id,omitempty"`
}
