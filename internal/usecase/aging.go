package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Aging classifies pending income transactions by lateness as of now. A
// transaction is overdue once its due date is strictly before now; lateness
// is whole elapsed days, truncated. The buckets partition the overdue set
// exactly.
func (uc *ReportUseCase) Aging(ctx context.Context, now time.Time) (*domain.AgingReport, error) {
	txs, err := uc.repo.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	receivables := filterTransactions(txs, func(tx domain.Transaction) bool {
		return tx.Type == domain.TypeIncome && tx.Status == domain.StatusPending
	})

	report := &domain.AgingReport{
		AsOf:             now.Format(time.DateOnly),
		OverdueAmount:    decimal.Zero,
		TotalReceivables: decimal.Zero,
		Buckets: []domain.AgingBucket{
			{Label: "1-30", Amount: decimal.Zero},
			{Label: "31-60", Amount: decimal.Zero},
			{Label: "61-90", Amount: decimal.Zero},
			{Label: ">90", Amount: decimal.Zero},
		},
	}

	type catAccum struct {
		overdue decimal.Decimal
		total   decimal.Decimal
	}
	byCategory := make(map[string]*catAccum)

	for _, tx := range receivables {
		report.TotalReceivables = report.TotalReceivables.Add(tx.Amount)

		acc := byCategory[tx.Category]
		if acc == nil {
			acc = &catAccum{overdue: decimal.Zero, total: decimal.Zero}
			byCategory[tx.Category] = acc
		}
		acc.total = acc.total.Add(tx.Amount)

		if !tx.DueDate.Before(now) {
			continue
		}

		report.OverdueCount++
		report.OverdueAmount = report.OverdueAmount.Add(tx.Amount)
		report.Overdue = append(report.Overdue, tx)
		acc.overdue = acc.overdue.Add(tx.Amount)

		days := daysOverdue(tx.DueDate, now)
		bucket := &report.Buckets[3]
		switch {
		case days <= 30:
			bucket = &report.Buckets[0]
		case days <= 60:
			bucket = &report.Buckets[1]
		case days <= 90:
			bucket = &report.Buckets[2]
		}
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(tx.Amount)
	}

	report.Rate = delinquencyRate(report.OverdueAmount, report.TotalReceivables)

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		acc := byCategory[name]
		report.ByCategory = append(report.ByCategory, domain.CategoryDelinquency{
			Category:      name,
			OverdueAmount: acc.overdue,
			TotalAmount:   acc.total,
			Rate:          delinquencyRate(acc.overdue, acc.total),
		})
	}

	return report, nil
}

// daysOverdue is whole calendar days elapsed since due, truncated.
func daysOverdue(due, now time.Time) int {
	return int(now.Sub(due).Hours() / 24)
}

// delinquencyRate is overdue/total as a percentage, defined as exactly zero
// when the denominator is zero.
func delinquencyRate(overdue, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return overdue.Div(total).Mul(hundred)
}
