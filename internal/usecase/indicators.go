package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

// Indicators computes the dashboard metrics. Open positions (receivables and
// payables) come from non-reconciled transactions; realized totals, EBITDA
// and the contribution margin come from reconciled ones.
func (uc *ReportUseCase) Indicators(ctx context.Context) (*domain.IndicatorsReport, error) {
	txs, err := uc.repo.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}
	categories, err := uc.repo.GetCategoryTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get category types: %w", err)
	}

	groupOf := make(map[string]domain.DREGroup, len(categories))
	for _, c := range categories {
		groupOf[c.Name] = c.DREGroup
	}

	report := &domain.IndicatorsReport{
		TotalReceivables:   decimal.Zero,
		TotalPayables:      decimal.Zero,
		TotalIncome:        decimal.Zero,
		TotalExpense:       decimal.Zero,
		ContributionMargin: decimal.Zero,
	}

	revenue := decimal.Zero
	operationalCosts := decimal.Zero
	operationalExpenses := decimal.Zero
	variableCosts := decimal.Zero

	for _, tx := range txs {
		if !tx.Reconciled {
			if tx.Type == domain.TypeIncome {
				report.TotalReceivables = report.TotalReceivables.Add(tx.Amount)
			} else {
				report.TotalPayables = report.TotalPayables.Add(tx.Amount)
			}
			continue
		}

		if tx.Type == domain.TypeIncome {
			report.TotalIncome = report.TotalIncome.Add(tx.Amount)
			revenue = revenue.Add(tx.Amount)
		} else {
			report.TotalExpense = report.TotalExpense.Add(tx.Amount)
		}

		switch groupOf[tx.Category] {
		case domain.GroupCustosServicos:
			operationalCosts = operationalCosts.Add(tx.Amount)
		case domain.GroupDespesasAdministrativas, domain.GroupDespesasPessoal, domain.GroupDespesasVariaveis:
			operationalExpenses = operationalExpenses.Add(tx.Amount)
		}

		if tx.Type == domain.TypeExpense {
			switch groupOf[tx.Category] {
			case domain.GroupCustosServicos, domain.GroupDespesasVariaveis, domain.GroupImpostos:
				variableCosts = variableCosts.Add(tx.Amount)
			}
		}
	}

	report.Ebitda = revenue.Sub(operationalCosts).Sub(operationalExpenses)
	report.EbitdaMargin = marginRatio(report.Ebitda, revenue)
	report.ContributionMargin = revenue.Sub(variableCosts)
	report.ContributionMarginRatio = marginRatio(report.ContributionMargin, revenue)

	return report, nil
}

func marginRatio(value, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return value.Div(revenue).Mul(hundred)
}
