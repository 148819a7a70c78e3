package usecase

import (
	"context"

	"finledger/internal/domain"
)

// LedgerRepository defines the interface for fetching the ledger snapshot.
// The usecase layer depends on this interface, not on a concrete
// implementation; every report is recomputed from scratch over the snapshot
// it returns.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go LedgerRepository
type LedgerRepository interface {
	GetTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
	GetCategoryTypes(ctx context.Context) ([]domain.CategoryType, error)
	GetCostCenters(ctx context.Context) ([]domain.CostCenter, error)
	GetBankStatements(ctx context.Context) ([]domain.BankStatement, error)
}
