package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

// DailyMovements groups every transaction due inside [start, end] by due
// date, regardless of reconciliation state, with a running balance starting
// at zero.
func (uc *ReportUseCase) DailyMovements(ctx context.Context, start, end time.Time) (*domain.DailyMovementsReport, error) {
	txs, err := uc.repo.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	filtered := filterTransactions(txs, func(tx domain.Transaction) bool {
		return withinWindow(tx.DueDate, start, end)
	})
	sortByDueDate(filtered)

	days, totals := accumulateDays(filtered, decimal.Zero)

	return &domain.DailyMovementsReport{
		Start:  start.Format(time.DateOnly),
		End:    end.Format(time.DateOnly),
		Days:   days,
		Totals: totals,
	}, nil
}

// CashFlow is the forward-looking projection: only non-reconciled
// transactions count, grouped month by month. Every month of the window is
// present in the output, and the running balance carries across empty
// months. The seed is the selected account's initial balance, or zero when
// aggregating across all accounts.
func (uc *ReportUseCase) CashFlow(ctx context.Context, start, end time.Time, accountID string) (*domain.CashFlowReport, error) {
	txs, err := uc.repo.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	seed := decimal.Zero
	if accountID != "" {
		accounts, err := uc.repo.GetBankAccounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not get bank accounts: %w", err)
		}
		for _, a := range accounts {
			if a.ID == accountID {
				seed = a.InitialBalance
				break
			}
		}
	}

	filtered := filterTransactions(txs, func(tx domain.Transaction) bool {
		if tx.Reconciled {
			return false
		}
		if accountID != "" && tx.BankAccount != accountID {
			return false
		}
		return withinWindow(tx.DueDate, start, end)
	})
	sortByDueDate(filtered)

	byMonth := make(map[string][]domain.Transaction)
	for _, tx := range filtered {
		k := monthKey(tx.DueDate)
		byMonth[k] = append(byMonth[k], tx)
	}

	running := seed
	totals := domain.FlowTotals{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}
	var months []domain.MonthFlow
	for _, mk := range monthsBetween(start, end) {
		days, monthTotals := accumulateDays(byMonth[mk], running)
		month := domain.MonthFlow{
			Month:          mk,
			Income:         monthTotals.Income,
			Expense:        monthTotals.Expense,
			Balance:        monthTotals.Balance,
			RunningBalance: running.Add(monthTotals.Balance),
			Days:           days,
		}
		running = month.RunningBalance
		totals.Income = totals.Income.Add(month.Income)
		totals.Expense = totals.Expense.Add(month.Expense)
		months = append(months, month)
	}
	totals.Balance = totals.Income.Sub(totals.Expense)

	return &domain.CashFlowReport{
		Start:          start.Format(time.DateOnly),
		End:            end.Format(time.DateOnly),
		AccountID:      accountID,
		InitialBalance: seed,
		Months:         months,
		Totals:         totals,
	}, nil
}

// Statement is the historical view: only reconciled transactions count, and
// the running balance starts from the selected account's initial balance so
// each day's closing balance matches the bank's.
func (uc *ReportUseCase) Statement(ctx context.Context, start, end time.Time, accountID string) (*domain.StatementReport, error) {
	txs, err := uc.repo.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	seed := decimal.Zero
	if accountID != "" {
		accounts, err := uc.repo.GetBankAccounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not get bank accounts: %w", err)
		}
		for _, a := range accounts {
			if a.ID == accountID {
				seed = a.InitialBalance
				break
			}
		}
	}

	filtered := filterTransactions(txs, func(tx domain.Transaction) bool {
		if !tx.Reconciled {
			return false
		}
		if accountID != "" && tx.BankAccount != accountID {
			return false
		}
		return withinWindow(tx.DueDate, start, end)
	})
	sortByDueDate(filtered)

	days, totals := accumulateDays(filtered, seed)

	return &domain.StatementReport{
		Start:          start.Format(time.DateOnly),
		End:            end.Format(time.DateOnly),
		AccountID:      accountID,
		InitialBalance: seed,
		Days:           days,
		Totals:         totals,
	}, nil
}

// AccountBalances recomputes every account's position from its initial
// balance and its reconciled transactions, applied in competence-date order.
// Transactions referencing an unknown account are excluded from the rollup.
func (uc *ReportUseCase) AccountBalances(ctx context.Context) (*domain.BalancesReport, error) {
	txs, err := uc.repo.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}
	accounts, err := uc.repo.GetBankAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get bank accounts: %w", err)
	}

	type accum struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	sums := make(map[string]*accum, len(accounts))
	for _, a := range accounts {
		sums[a.ID] = &accum{income: decimal.Zero, expense: decimal.Zero}
	}

	reconciled := filterTransactions(txs, func(tx domain.Transaction) bool {
		return tx.Reconciled
	})
	sortByCompetenceDate(reconciled)

	for _, tx := range reconciled {
		acc, ok := sums[tx.BankAccount]
		if !ok {
			continue
		}
		if tx.Type == domain.TypeIncome {
			acc.income = acc.income.Add(tx.Amount)
		} else {
			acc.expense = acc.expense.Add(tx.Amount)
		}
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})

	report := &domain.BalancesReport{Total: decimal.Zero}
	for _, a := range accounts {
		acc := sums[a.ID]
		current := a.InitialBalance.Add(acc.income).Sub(acc.expense)
		report.Accounts = append(report.Accounts, domain.AccountBalance{
			AccountID:      a.ID,
			Name:           a.Name,
			IsPrimary:      a.IsPrimary,
			InitialBalance: a.InitialBalance,
			Income:         acc.income,
			Expense:        acc.expense,
			CurrentBalance: current,
		})
		report.Total = report.Total.Add(current)
	}
	return report, nil
}

// accumulateDays folds pre-sorted transactions into day groups, carrying the
// running balance forward from seed. The returned totals cover the whole
// input.
func accumulateDays(sorted []domain.Transaction, seed decimal.Decimal) ([]domain.DayFlow, domain.FlowTotals) {
	running := seed
	totals := domain.FlowTotals{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}

	var days []domain.DayFlow
	for _, g := range groupByKey(sorted, func(tx domain.Transaction) time.Time { return tx.DueDate }) {
		day := domain.DayFlow{
			Date:    g.key,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		for _, tx := range g.txs {
			if tx.Type == domain.TypeIncome {
				day.Income = day.Income.Add(tx.Amount)
				running = running.Add(tx.Amount)
			} else {
				day.Expense = day.Expense.Add(tx.Amount)
				running = running.Sub(tx.Amount)
			}
			day.Transactions = append(day.Transactions, tx)
		}
		day.Balance = day.Income.Sub(day.Expense)
		day.RunningBalance = running
		totals.Income = totals.Income.Add(day.Income)
		totals.Expense = totals.Expense.Add(day.Expense)
		days = append(days, day)
	}
	totals.Balance = totals.Income.Sub(totals.Expense)
	return days, totals
}
