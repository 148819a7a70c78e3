package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

// CSVLedgerRepository implements the LedgerRepository interface over CSV
// files. Every path is optional: an empty path yields an empty collection,
// so each report only needs the inputs it actually reads. Malformed rows
// (bad decimals, bad dates, unknown enums) fail the read; validation happens
// here, never inside aggregation.
type CSVLedgerRepository struct {
	TransactionsPath string
	AccountsPath     string
	CategoriesPath   string
	CostCentersPath  string
	StatementsPath   string
}

// NewCSVLedgerRepository creates a new repository instance.
func NewCSVLedgerRepository(transactions, accounts, categories, costCenters, statements string) *CSVLedgerRepository {
	return &CSVLedgerRepository{
		TransactionsPath: transactions,
		AccountsPath:     accounts,
		CategoriesPath:   categories,
		CostCentersPath:  costCenters,
		StatementsPath:   statements,
	}
}

// GetTransactions reads and parses the transactions CSV file.
//
// Columns: id, type, description, supplier, amount, category, cost_center,
// competence_date, due_date, status, reconciled, bank_account.
func (r *CSVLedgerRepository) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if r.TransactionsPath == "" {
		return nil, nil
	}
	var transactions []domain.Transaction
	err := readCSV(r.TransactionsPath, 12, func(record []string) error {
		amount, err := decimal.NewFromString(record[4])
		if err != nil {
			return fmt.Errorf("could not parse amount '%s': %w", record[4], err)
		}
		competence, err := time.Parse(time.DateOnly, record[7])
		if err != nil {
			return fmt.Errorf("could not parse competence_date '%s': %w", record[7], err)
		}
		due, err := time.Parse(time.DateOnly, record[8])
		if err != nil {
			return fmt.Errorf("could not parse due_date '%s': %w", record[8], err)
		}
		reconciled, err := strconv.ParseBool(record[10])
		if err != nil {
			return fmt.Errorf("could not parse reconciled '%s': %w", record[10], err)
		}

		tx := domain.Transaction{
			ID:             record[0],
			Type:           domain.TransactionType(record[1]),
			Description:    record[2],
			Supplier:       record[3],
			Amount:         amount,
			Category:       record[5],
			CostCenter:     record[6],
			CompetenceDate: competence,
			DueDate:        due,
			Status:         domain.TransactionStatus(record[9]),
			Reconciled:     reconciled,
			BankAccount:    record[11],
		}
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("invalid transaction %s: %w", tx.ID, err)
		}
		transactions = append(transactions, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetBankAccounts reads and parses the bank accounts CSV file.
//
// Columns: id, name, bank_code, agency, account_number, initial_balance,
// is_primary.
func (r *CSVLedgerRepository) GetBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	if r.AccountsPath == "" {
		return nil, nil
	}
	var accounts []domain.BankAccount
	err := readCSV(r.AccountsPath, 7, func(record []string) error {
		balance, err := decimal.NewFromString(record[5])
		if err != nil {
			return fmt.Errorf("could not parse initial_balance '%s': %w", record[5], err)
		}
		primary, err := strconv.ParseBool(record[6])
		if err != nil {
			return fmt.Errorf("could not parse is_primary '%s': %w", record[6], err)
		}
		accounts = append(accounts, domain.BankAccount{
			ID:             record[0],
			Name:           record[1],
			BankCode:       record[2],
			Agency:         record[3],
			AccountNumber:  record[4],
			InitialBalance: balance,
			IsPrimary:      primary,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetCategoryTypes reads and parses the category types CSV file.
//
// Columns: name, type, dre_group.
func (r *CSVLedgerRepository) GetCategoryTypes(ctx context.Context) ([]domain.CategoryType, error) {
	if r.CategoriesPath == "" {
		return nil, nil
	}
	var categories []domain.CategoryType
	err := readCSV(r.CategoriesPath, 3, func(record []string) error {
		group := domain.DREGroup(record[2])
		if !domain.ValidDREGroup(group) {
			return fmt.Errorf("unknown dre_group '%s' for category '%s'", record[2], record[0])
		}
		categories = append(categories, domain.CategoryType{
			Name:     record[0],
			Type:     domain.TransactionType(record[1]),
			DREGroup: group,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCostCenters reads and parses the cost centers CSV file.
//
// Columns: id, name, description, active.
func (r *CSVLedgerRepository) GetCostCenters(ctx context.Context) ([]domain.CostCenter, error) {
	if r.CostCentersPath == "" {
		return nil, nil
	}
	var costCenters []domain.CostCenter
	err := readCSV(r.CostCentersPath, 4, func(record []string) error {
		active, err := strconv.ParseBool(record[3])
		if err != nil {
			return fmt.Errorf("could not parse active '%s': %w", record[3], err)
		}
		costCenters = append(costCenters, domain.CostCenter{
			ID:          record[0],
			Name:        record[1],
			Description: record[2],
			Active:      active,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return costCenters, nil
}

// GetBankStatements reads statement lines from an OFX file.
func (r *CSVLedgerRepository) GetBankStatements(ctx context.Context) ([]domain.BankStatement, error) {
	if r.StatementsPath == "" {
		return nil, nil
	}
	return ReadOFXStatements(r.StatementsPath)
}

// readCSV opens path, skips the header, and feeds each record to parse.
func readCSV(path string, fields int, parse func(record []string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = fields
	// Skip header
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if err := parse(record); err != nil {
			return fmt.Errorf("error in %s: %w", path, err)
		}
	}
	return nil
}
