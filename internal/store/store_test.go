package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finledger/internal/domain"
	"finledger/internal/store"
)

func validTransaction(id string) domain.Transaction {
	return domain.Transaction{
		ID:             id,
		Type:           domain.TypeIncome,
		Description:    "consulting invoice",
		Amount:         decimal.NewFromInt(100),
		CompetenceDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Status:         domain.StatusPending,
		BankAccount:    "A1",
	}
}

func TestStore_AddTransaction(t *testing.T) {
	s := store.New()

	tx, err := s.AddTransaction(validTransaction(""))
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID, "an ID is assigned when none is given")

	got, err := s.GetTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tx, got[0])
}

func TestStore_AddTransaction_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(tx *domain.Transaction)
		wantErr error
	}{
		{
			name:    "negative amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = decimal.NewFromInt(-1) },
			wantErr: domain.ErrNegativeAmount,
		},
		{
			name:    "unknown type",
			mutate:  func(tx *domain.Transaction) { tx.Type = "transfer" },
			wantErr: domain.ErrInvalidType,
		},
		{
			name:    "unknown status",
			mutate:  func(tx *domain.Transaction) { tx.Status = "archived" },
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:    "reconciled but still pending",
			mutate:  func(tx *domain.Transaction) { tx.Reconciled = true },
			wantErr: domain.ErrReconciledPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New()
			tx := validTransaction("T1")
			tt.mutate(&tx)

			_, err := s.AddTransaction(tx)
			assert.ErrorIs(t, err, tt.wantErr)

			got, _ := s.GetTransactions(context.Background())
			assert.Empty(t, got, "nothing is stored on validation failure")
		})
	}
}

func TestStore_ReconcileLifecycle(t *testing.T) {
	s := store.New()
	_, err := s.AddTransaction(validTransaction("T1"))
	require.NoError(t, err)

	require.NoError(t, s.ReconcileTransaction("T1"))
	got, _ := s.GetTransactions(context.Background())
	assert.True(t, got[0].Reconciled)
	assert.Equal(t, domain.StatusCompleted, got[0].Status, "reconciling forces completion")

	require.NoError(t, s.UnreconcileTransaction("T1"))
	got, _ = s.GetTransactions(context.Background())
	assert.False(t, got[0].Reconciled)
	assert.Equal(t, domain.StatusPending, got[0].Status)

	assert.ErrorIs(t, s.ReconcileTransaction("ghost"), store.ErrNotFound)
}

func TestStore_UpdateAndDeleteTransaction(t *testing.T) {
	s := store.New()
	_, err := s.AddTransaction(validTransaction("T1"))
	require.NoError(t, err)

	updated := validTransaction("T1")
	updated.Description = "revised invoice"
	require.NoError(t, s.UpdateTransaction(updated))

	got, _ := s.GetTransactions(context.Background())
	assert.Equal(t, "revised invoice", got[0].Description)

	assert.ErrorIs(t, s.UpdateTransaction(validTransaction("ghost")), store.ErrNotFound)

	require.NoError(t, s.DeleteTransaction("T1"))
	assert.ErrorIs(t, s.DeleteTransaction("T1"), store.ErrNotFound)
}

func TestStore_SinglePrimaryAccount(t *testing.T) {
	s := store.New()

	_, err := s.AddBankAccount(domain.BankAccount{ID: "A1", Name: "Main", IsPrimary: true})
	require.NoError(t, err)
	_, err = s.AddBankAccount(domain.BankAccount{ID: "A2", Name: "Side"})
	require.NoError(t, err)

	// Promoting A2 demotes A1 in the same operation.
	require.NoError(t, s.SetPrimaryAccount("A2"))

	accounts, err := s.GetBankAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	primaries := 0
	for _, a := range accounts {
		if a.IsPrimary {
			primaries++
			assert.Equal(t, "A2", a.ID)
		}
	}
	assert.Equal(t, 1, primaries)

	// Adding a new primary account demotes again.
	_, err = s.AddBankAccount(domain.BankAccount{ID: "A3", Name: "New", IsPrimary: true})
	require.NoError(t, err)

	accounts, _ = s.GetBankAccounts(context.Background())
	primaries = 0
	for _, a := range accounts {
		if a.IsPrimary {
			primaries++
			assert.Equal(t, "A3", a.ID)
		}
	}
	assert.Equal(t, 1, primaries)

	assert.ErrorIs(t, s.SetPrimaryAccount("ghost"), store.ErrNotFound)
}

func TestStore_CategoryConstraints(t *testing.T) {
	s := store.New()

	cat := domain.CategoryType{Name: "Vendas", Type: domain.TypeIncome, DREGroup: domain.GroupReceitaBruta}
	require.NoError(t, s.AddCategoryType(cat))

	assert.ErrorIs(t, s.AddCategoryType(cat), store.ErrDuplicateCategory)
	assert.ErrorIs(t, s.AddCategoryType(domain.CategoryType{
		Name:     "Misc",
		Type:     domain.TypeExpense,
		DREGroup: "made_up_group",
	}), store.ErrUnknownDREGroup)

	require.NoError(t, s.DeleteCategoryType("Vendas"))
	assert.ErrorIs(t, s.DeleteCategoryType("Vendas"), store.ErrNotFound)
}

func TestStore_CostCenters(t *testing.T) {
	s := store.New()

	cc, err := s.AddCostCenter(domain.CostCenter{Name: "Operations", Active: true})
	require.NoError(t, err)
	assert.NotEmpty(t, cc.ID)

	cc.Active = false
	require.NoError(t, s.UpdateCostCenter(cc))

	got, err := s.GetCostCenters(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Active)

	require.NoError(t, s.DeleteCostCenter(cc.ID))
	assert.ErrorIs(t, s.DeleteCostCenter(cc.ID), store.ErrNotFound)
}

// A snapshot handed to a report must not change when the store mutates
// afterwards.
func TestStore_SnapshotIsolation(t *testing.T) {
	s := store.New()
	_, err := s.AddTransaction(validTransaction("T1"))
	require.NoError(t, err)

	snapshot, err := s.GetTransactions(context.Background())
	require.NoError(t, err)

	require.NoError(t, s.ReconcileTransaction("T1"))

	assert.False(t, snapshot[0].Reconciled, "earlier snapshot is unaffected")
	assert.Equal(t, domain.StatusPending, snapshot[0].Status)
}

func TestStore_GetTransactions_Sorted(t *testing.T) {
	s := store.New()
	for _, id := range []string{"T3", "T1", "T2"} {
		_, err := s.AddTransaction(validTransaction(id))
		require.NoError(t, err)
	}

	got, err := s.GetTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "T1", got[0].ID)
	assert.Equal(t, "T2", got[1].ID)
	assert.Equal(t, "T3", got[2].ID)
}
