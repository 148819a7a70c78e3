// Package store keeps the ledger entities in memory and enforces their
// lifecycle invariants. Reads hand out copies, so a snapshot taken for a
// report never changes underneath the aggregation. The store is not safe for
// concurrent use; callers serialize mutation against reads.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"finledger/internal/domain"
)

var (
	ErrNotFound          = errors.New("entity not found")
	ErrDuplicateCategory = errors.New("category name already exists")
	ErrUnknownDREGroup   = errors.New("category references an unknown DRE group")
)

// Store is the in-memory entity registry. It implements
// usecase.LedgerRepository, so reports can run directly against it.
type Store struct {
	transactions map[string]domain.Transaction
	accounts     map[string]domain.BankAccount
	categories   map[string]domain.CategoryType
	costCenters  map[string]domain.CostCenter
	statements   map[string]domain.BankStatement
}

// New creates an empty store.
func New() *Store {
	return &Store{
		transactions: make(map[string]domain.Transaction),
		accounts:     make(map[string]domain.BankAccount),
		categories:   make(map[string]domain.CategoryType),
		costCenters:  make(map[string]domain.CostCenter),
		statements:   make(map[string]domain.BankStatement),
	}
}

// AddTransaction validates and stores a transaction, assigning an ID when
// none is set.
func (s *Store) AddTransaction(tx domain.Transaction) (domain.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if err := tx.Validate(); err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid transaction %s: %w", tx.ID, err)
	}
	s.transactions[tx.ID] = tx
	return tx, nil
}

// UpdateTransaction replaces a stored transaction after re-validating it.
func (s *Store) UpdateTransaction(tx domain.Transaction) error {
	if _, ok := s.transactions[tx.ID]; !ok {
		return fmt.Errorf("transaction %s: %w", tx.ID, ErrNotFound)
	}
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction %s: %w", tx.ID, err)
	}
	s.transactions[tx.ID] = tx
	return nil
}

// DeleteTransaction removes a transaction.
func (s *Store) DeleteTransaction(id string) error {
	if _, ok := s.transactions[id]; !ok {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	delete(s.transactions, id)
	return nil
}

// ReconcileTransaction marks a transaction as matched against a bank
// statement line. Reconciling forces the completed status, keeping the
// reconciled-implies-completed invariant.
func (s *Store) ReconcileTransaction(id string) error {
	tx, ok := s.transactions[id]
	if !ok {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	tx.Reconciled = true
	tx.Status = domain.StatusCompleted
	s.transactions[id] = tx
	return nil
}

// UnreconcileTransaction reverts a reconciliation, returning the transaction
// to the pending, forward-looking set.
func (s *Store) UnreconcileTransaction(id string) error {
	tx, ok := s.transactions[id]
	if !ok {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	tx.Reconciled = false
	tx.Status = domain.StatusPending
	s.transactions[id] = tx
	return nil
}

// AddBankAccount stores an account. At most one account is primary: marking
// this one primary demotes any other in the same operation.
func (s *Store) AddBankAccount(a domain.BankAccount) (domain.BankAccount, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.IsPrimary {
		s.demotePrimary()
	}
	s.accounts[a.ID] = a
	return a, nil
}

// UpdateBankAccount replaces a stored account, keeping the single-primary
// invariant.
func (s *Store) UpdateBankAccount(a domain.BankAccount) error {
	if _, ok := s.accounts[a.ID]; !ok {
		return fmt.Errorf("bank account %s: %w", a.ID, ErrNotFound)
	}
	if a.IsPrimary {
		s.demotePrimary()
	}
	s.accounts[a.ID] = a
	return nil
}

// SetPrimaryAccount makes the given account the single primary one.
func (s *Store) SetPrimaryAccount(id string) error {
	a, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("bank account %s: %w", id, ErrNotFound)
	}
	s.demotePrimary()
	a.IsPrimary = true
	s.accounts[id] = a
	return nil
}

// DeleteBankAccount removes an account.
func (s *Store) DeleteBankAccount(id string) error {
	if _, ok := s.accounts[id]; !ok {
		return fmt.Errorf("bank account %s: %w", id, ErrNotFound)
	}
	delete(s.accounts, id)
	return nil
}

func (s *Store) demotePrimary() {
	for id, acc := range s.accounts {
		if acc.IsPrimary {
			acc.IsPrimary = false
			s.accounts[id] = acc
		}
	}
}

// AddCategoryType stores a category. Names are unique keys and the DRE group
// must exist in the fixed taxonomy.
func (s *Store) AddCategoryType(c domain.CategoryType) error {
	if _, ok := s.categories[c.Name]; ok {
		return fmt.Errorf("category %s: %w", c.Name, ErrDuplicateCategory)
	}
	if !domain.ValidDREGroup(c.DREGroup) {
		return fmt.Errorf("category %s: %w", c.Name, ErrUnknownDREGroup)
	}
	s.categories[c.Name] = c
	return nil
}

// DeleteCategoryType removes a category. Transactions referencing it stay
// put; they simply fall out of DRE rollups until remapped.
func (s *Store) DeleteCategoryType(name string) error {
	if _, ok := s.categories[name]; !ok {
		return fmt.Errorf("category %s: %w", name, ErrNotFound)
	}
	delete(s.categories, name)
	return nil
}

// AddCostCenter stores a cost center, assigning an ID when none is set.
func (s *Store) AddCostCenter(cc domain.CostCenter) (domain.CostCenter, error) {
	if cc.ID == "" {
		cc.ID = uuid.NewString()
	}
	s.costCenters[cc.ID] = cc
	return cc, nil
}

// UpdateCostCenter replaces a stored cost center.
func (s *Store) UpdateCostCenter(cc domain.CostCenter) error {
	if _, ok := s.costCenters[cc.ID]; !ok {
		return fmt.Errorf("cost center %s: %w", cc.ID, ErrNotFound)
	}
	s.costCenters[cc.ID] = cc
	return nil
}

// DeleteCostCenter removes a cost center.
func (s *Store) DeleteCostCenter(id string) error {
	if _, ok := s.costCenters[id]; !ok {
		return fmt.Errorf("cost center %s: %w", id, ErrNotFound)
	}
	delete(s.costCenters, id)
	return nil
}

// AddBankStatement stores an imported statement line.
func (s *Store) AddBankStatement(st domain.BankStatement) (domain.BankStatement, error) {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	s.statements[st.ID] = st
	return st, nil
}

// GetTransactions returns a snapshot of all transactions, ordered by ID for
// determinism. Implements usecase.LedgerRepository.
func (s *Store) GetTransactions(_ context.Context) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetBankAccounts returns a snapshot of all accounts.
func (s *Store) GetBankAccounts(_ context.Context) ([]domain.BankAccount, error) {
	out := make([]domain.BankAccount, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetCategoryTypes returns a snapshot of all categories.
func (s *Store) GetCategoryTypes(_ context.Context) ([]domain.CategoryType, error) {
	out := make([]domain.CategoryType, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetCostCenters returns a snapshot of all cost centers.
func (s *Store) GetCostCenters(_ context.Context) ([]domain.CostCenter, error) {
	out := make([]domain.CostCenter, 0, len(s.costCenters))
	for _, cc := range s.costCenters {
		out = append(out, cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetBankStatements returns a snapshot of all statement lines.
func (s *Store) GetBankStatements(_ context.Context) ([]domain.BankStatement, error) {
	out := make([]domain.BankStatement, 0, len(s.statements))
	for _, st := range s.statements {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
