package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

// ReconcileSuggestions matches imported bank statement lines against
// non-reconciled transactions inside [start, end] and reports the pairs it
// believes settle each other. Nothing is mutated; the caller decides what to
// reconcile.
//
// Matching runs in passes. Pass 1 pairs a statement line that explicitly
// references a transaction (carried transaction ID, or the ID embedded in
// the description). Pass 2 pairs the remaining lines by a composite key of
// date, direction and amount; a key is only accepted when both sides hold
// the same number of candidates, so ambiguous groups stay unmatched.
func (uc *ReportUseCase) ReconcileSuggestions(ctx context.Context, start, end time.Time) (*domain.ReconcileReport, error) {
	statements, err := uc.repo.GetBankStatements(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get bank statements: %w", err)
	}
	txs, err := uc.repo.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	var candidates []domain.BankStatement
	for _, st := range statements {
		if !st.Reconciled && withinWindow(st.TransactionDate, start, end) {
			candidates = append(candidates, st)
		}
	}
	open := filterTransactions(txs, func(tx domain.Transaction) bool {
		return !tx.Reconciled && withinWindow(tx.DueDate, start, end)
	})

	report := &domain.ReconcileReport{
		Summary: domain.ReconcileSummary{
			StatementsProcessed:   len(candidates),
			TransactionsProcessed: len(open),
		},
		UnmatchedStatements: make(map[string][]domain.BankStatement),
	}

	matchedSt := make(map[string]bool)
	matchedTx := make(map[string]bool)

	// Pass 1: explicit reference.
	for _, st := range candidates {
		for _, tx := range open {
			if matchedSt[st.ID] || matchedTx[tx.ID] {
				continue
			}
			if referencesTransaction(st, tx) {
				report.Matches = append(report.Matches, domain.MatchSuggestion{Statement: st, Transaction: tx})
				matchedSt[st.ID] = true
				matchedTx[tx.ID] = true
			}
		}
	}

	// Pass 2: composite-key matching on date, direction and amount.
	stByKey := make(map[string][]domain.BankStatement)
	txByKey := make(map[string][]domain.Transaction)
	for _, st := range candidates {
		if !matchedSt[st.ID] {
			key := matchKey(st.TransactionDate, statementType(st), st.Amount.Abs())
			stByKey[key] = append(stByKey[key], st)
		}
	}
	for _, tx := range open {
		if !matchedTx[tx.ID] {
			key := matchKey(tx.DueDate, tx.Type, tx.Amount)
			txByKey[key] = append(txByKey[key], tx)
		}
	}

	for key, sts := range stByKey {
		openTxs, ok := txByKey[key]
		if !ok || len(sts) != len(openTxs) {
			continue
		}
		for i := range sts {
			report.Matches = append(report.Matches, domain.MatchSuggestion{Statement: sts[i], Transaction: openTxs[i]})
			matchedSt[sts[i].ID] = true
			matchedTx[openTxs[i].ID] = true
		}
		delete(stByKey, key)
		delete(txByKey, key)
	}

	for _, st := range candidates {
		if !matchedSt[st.ID] {
			report.UnmatchedStatements[st.BankAccountID] = append(report.UnmatchedStatements[st.BankAccountID], st)
		}
	}
	for _, tx := range open {
		if !matchedTx[tx.ID] {
			report.UnmatchedTransactions = append(report.UnmatchedTransactions, tx)
		}
	}

	report.Summary.Matched = len(report.Matches)
	report.Summary.Unmatched = len(report.UnmatchedTransactions) + countStatements(report.UnmatchedStatements)
	return report, nil
}

func referencesTransaction(st domain.BankStatement, tx domain.Transaction) bool {
	if st.TransactionID != "" {
		return st.TransactionID == tx.ID
	}
	return tx.ID != "" && strings.Contains(st.Description, tx.ID)
}

// statementType maps a statement line's direction onto the transaction side
// it would settle: credits arrive as income, debits leave as expense.
func statementType(st domain.BankStatement) domain.TransactionType {
	if st.Direction == domain.StatementCredit {
		return domain.TypeIncome
	}
	return domain.TypeExpense
}

func matchKey(t time.Time, txType domain.TransactionType, amount decimal.Decimal) string {
	return fmt.Sprintf("%s-%s-%s", t.Format(time.DateOnly), txType, amount.StringFixed(2))
}

func countStatements(m map[string][]domain.BankStatement) int {
	count := 0
	for _, v := range m {
		count += len(v)
	}
	return count
}
