package gateway_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finledger/internal/domain"
	"finledger/internal/gateway"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVLedgerRepository_GetTransactions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantLen int
		wantErr bool
	}{
		{
			name: "valid file",
			content: `id,type,description,supplier,amount,category,cost_center,competence_date,due_date,status,reconciled,bank_account
T1,income,consulting,Acme,1500.50,Vendas,CC1,2024-01-10,2024-02-10,pending,false,A1
T2,expense,hosting,CloudCo,89.90,Hospedagem,,2024-01-05,2024-01-05,completed,true,A1
`,
			wantLen: 2,
		},
		{
			name: "malformed amount",
			content: `id,type,description,supplier,amount,category,cost_center,competence_date,due_date,status,reconciled,bank_account
T1,income,consulting,Acme,not-a-number,Vendas,CC1,2024-01-10,2024-02-10,pending,false,A1
`,
			wantErr: true,
		},
		{
			name: "malformed date",
			content: `id,type,description,supplier,amount,category,cost_center,competence_date,due_date,status,reconciled,bank_account
T1,income,consulting,Acme,1500.50,Vendas,CC1,10/01/2024,2024-02-10,pending,false,A1
`,
			wantErr: true,
		},
		{
			name: "invalid transaction type",
			content: `id,type,description,supplier,amount,category,cost_center,competence_date,due_date,status,reconciled,bank_account
T1,transfer,consulting,Acme,1500.50,Vendas,CC1,2024-01-10,2024-02-10,pending,false,A1
`,
			wantErr: true,
		},
		{
			name: "wrong column count",
			content: `id,type,description
T1,income,consulting
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "transactions.csv", tt.content)
			repo := gateway.NewCSVLedgerRepository(path, "", "", "", "")

			got, err := repo.GetTransactions(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestCSVLedgerRepository_GetTransactions_Fields(t *testing.T) {
	content := `id,type,description,supplier,amount,category,cost_center,competence_date,due_date,status,reconciled,bank_account
T1,income,consulting,Acme,1500.50,Vendas,CC1,2024-01-10,2024-02-10,pending,false,A1
`
	path := writeTempFile(t, "transactions.csv", content)
	repo := gateway.NewCSVLedgerRepository(path, "", "", "", "")

	got, err := repo.GetTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	tx := got[0]
	assert.Equal(t, "T1", tx.ID)
	assert.Equal(t, domain.TypeIncome, tx.Type)
	assert.Equal(t, "Acme", tx.Supplier)
	assert.Equal(t, "1500.5", tx.Amount.String())
	assert.Equal(t, "2024-01-10", tx.CompetenceDate.Format("2006-01-02"))
	assert.Equal(t, "2024-02-10", tx.DueDate.Format("2006-01-02"))
	assert.Equal(t, domain.StatusPending, tx.Status)
	assert.False(t, tx.Reconciled)
	assert.Equal(t, "A1", tx.BankAccount)
}

func TestCSVLedgerRepository_GetBankAccounts(t *testing.T) {
	content := `id,name,bank_code,agency,account_number,initial_balance,is_primary
A1,Main,341,0001,12345-6,2500.00,true
A2,Side,001,4321,98765-4,-100.00,false
`
	path := writeTempFile(t, "accounts.csv", content)
	repo := gateway.NewCSVLedgerRepository("", path, "", "", "")

	got, err := repo.GetBankAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Main", got[0].Name)
	assert.True(t, got[0].IsPrimary)
	assert.Equal(t, "2500", got[0].InitialBalance.String())
	assert.True(t, got[1].InitialBalance.IsNegative())
}

func TestCSVLedgerRepository_GetCategoryTypes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		content := `name,type,dre_group
Vendas,income,receita_bruta
Hospedagem,expense,custos_servicos
`
		path := writeTempFile(t, "categories.csv", content)
		repo := gateway.NewCSVLedgerRepository("", "", path, "", "")

		got, err := repo.GetCategoryTypes(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, domain.GroupReceitaBruta, got[0].DREGroup)
	})

	t.Run("unknown dre group", func(t *testing.T) {
		content := `name,type,dre_group
Vendas,income,made_up
`
		path := writeTempFile(t, "categories.csv", content)
		repo := gateway.NewCSVLedgerRepository("", "", path, "", "")

		_, err := repo.GetCategoryTypes(context.Background())
		assert.Error(t, err)
	})
}

func TestCSVLedgerRepository_GetCostCenters(t *testing.T) {
	content := `id,name,description,active
CC1,Operations,day to day,true
CC2,Legacy,,false
`
	path := writeTempFile(t, "costcenters.csv", content)
	repo := gateway.NewCSVLedgerRepository("", "", "", path, "")

	got, err := repo.GetCostCenters(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Active)
	assert.False(t, got[1].Active)
}

func TestCSVLedgerRepository_EmptyPaths(t *testing.T) {
	repo := gateway.NewCSVLedgerRepository("", "", "", "", "")
	ctx := context.Background()

	txs, err := repo.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)

	accounts, err := repo.GetBankAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	statements, err := repo.GetBankStatements(ctx)
	require.NoError(t, err)
	assert.Empty(t, statements)
}

func TestCSVLedgerRepository_MissingFile(t *testing.T) {
	repo := gateway.NewCSVLedgerRepository(filepath.Join(t.TempDir(), "nope.csv"), "", "", "", "")

	_, err := repo.GetTransactions(context.Background())
	assert.Error(t, err)
}
