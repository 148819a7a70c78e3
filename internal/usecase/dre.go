package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

// UnmappedPolicy decides what happens to transactions whose category has no
// income-statement line. Dropping reproduces the historical behavior;
// tracking keeps them out of every line but surfaces the dropped totals so
// data-quality gaps are visible. Neither is an error.
type UnmappedPolicy string

const (
	UnmappedDrop  UnmappedPolicy = "drop"
	UnmappedTrack UnmappedPolicy = "track"
)

const monthsPerYear = 12

func zeroMonths() []decimal.Decimal {
	out := make([]decimal.Decimal, monthsPerYear)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}

func sumMonths(months []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range months {
		total = total.Add(m)
	}
	return total
}

// DRE computes the income statement for one calendar year from reconciled
// transactions keyed by competence date. Group totals accumulate positive
// magnitudes; every deduction is applied explicitly by the cascade below.
func (uc *ReportUseCase) DRE(ctx context.Context, year int, policy UnmappedPolicy) (*domain.DREReport, error) {
	txs, err := uc.repo.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}
	categories, err := uc.repo.GetCategoryTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get category types: %w", err)
	}

	catByName := make(map[string]domain.CategoryType, len(categories))
	for _, c := range categories {
		catByName[c.Name] = c
	}

	groupTotals := make(map[domain.DREGroup][]decimal.Decimal)
	categoryTotals := make(map[domain.DREGroup]map[string][]decimal.Decimal)
	for _, g := range domain.DREGroups() {
		groupTotals[g.ID] = zeroMonths()
		categoryTotals[g.ID] = make(map[string][]decimal.Decimal)
	}

	var unmapped *domain.DREUnmapped
	if policy == UnmappedTrack {
		unmapped = &domain.DREUnmapped{Months: zeroMonths(), Total: decimal.Zero}
	}

	for _, tx := range txs {
		if !tx.Reconciled || tx.CompetenceDate.Year() != year {
			continue
		}
		month := int(tx.CompetenceDate.Month()) - 1

		cat, ok := catByName[tx.Category]
		if !ok || !domain.ValidDREGroup(cat.DREGroup) {
			if unmapped != nil {
				unmapped.Count++
				unmapped.Months[month] = unmapped.Months[month].Add(tx.Amount)
			}
			continue
		}

		groupTotals[cat.DREGroup][month] = groupTotals[cat.DREGroup][month].Add(tx.Amount)

		byCat := categoryTotals[cat.DREGroup]
		if byCat[cat.Name] == nil {
			byCat[cat.Name] = zeroMonths()
		}
		byCat[cat.Name][month] = byCat[cat.Name][month].Add(tx.Amount)
	}

	report := &domain.DREReport{Year: year}
	for _, g := range domain.DREGroups() {
		line := domain.DREGroupLine{
			ID:     g.ID,
			Name:   g.Name,
			Type:   g.Type,
			Months: groupTotals[g.ID],
			Total:  sumMonths(groupTotals[g.ID]),
		}
		names := make([]string, 0, len(categoryTotals[g.ID]))
		for name := range categoryTotals[g.ID] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			months := categoryTotals[g.ID][name]
			line.Categories = append(line.Categories, domain.DRECategoryLine{
				Name:   name,
				Months: months,
				Total:  sumMonths(months),
			})
		}
		report.Groups = append(report.Groups, line)
	}

	derive(report, groupTotals)

	if unmapped != nil {
		unmapped.Total = sumMonths(unmapped.Months)
		report.Unmapped = unmapped
	}
	return report, nil
}

// derive evaluates the cascade, month by month, each formula consuming only
// the rows above it:
//
//	receitaLiquida       = receitaBruta - impostos - deducaoReceita
//	lucroBruto           = receitaLiquida - custosCMV - custosCPV - custosServicos
//	resultadoOperacional = lucroBruto - despesasAdministrativas - despesasPessoal - despesasVariaveis
//	ebitda               = resultadoOperacional
//	resultadoFinanceiro  = receitasFinanceiras - despesasFinanceiras
//	lucroAntesImpostos   = resultadoOperacional + resultadoFinanceiro + outrasReceitas
//	lucroLiquido         = lucroAntesImpostos
//	resultadoFinal       = lucroLiquido - investimentos
func derive(report *domain.DREReport, totals map[domain.DREGroup][]decimal.Decimal) {
	receitaLiquida := zeroMonths()
	lucroBruto := zeroMonths()
	resultadoOperacional := zeroMonths()
	resultadoFinanceiro := zeroMonths()
	lucroAntesImpostos := zeroMonths()
	resultadoFinal := zeroMonths()

	for m := 0; m < monthsPerYear; m++ {
		receitaLiquida[m] = totals[domain.GroupReceitaBruta][m].
			Sub(totals[domain.GroupImpostos][m]).
			Sub(totals[domain.GroupDeducaoReceita][m])

		lucroBruto[m] = receitaLiquida[m].
			Sub(totals[domain.GroupCustosCMV][m]).
			Sub(totals[domain.GroupCustosCPV][m]).
			Sub(totals[domain.GroupCustosServicos][m])

		resultadoOperacional[m] = lucroBruto[m].
			Sub(totals[domain.GroupDespesasAdministrativas][m]).
			Sub(totals[domain.GroupDespesasPessoal][m]).
			Sub(totals[domain.GroupDespesasVariaveis][m])

		resultadoFinanceiro[m] = totals[domain.GroupReceitasFinanceiras][m].
			Sub(totals[domain.GroupDespesasFinanceiras][m])

		lucroAntesImpostos[m] = resultadoOperacional[m].
			Add(resultadoFinanceiro[m]).
			Add(totals[domain.GroupOutrasReceitas][m])

		resultadoFinal[m] = lucroAntesImpostos[m].
			Sub(totals[domain.GroupInvestimentos][m])
	}

	line := func(name string, months []decimal.Decimal) domain.MonthlyLine {
		return domain.MonthlyLine{Name: name, Months: months, Total: sumMonths(months)}
	}

	report.ReceitaLiquida = line("Receita Líquida", receitaLiquida)
	report.LucroBruto = line("Lucro Bruto", lucroBruto)
	report.ResultadoOperacional = line("Resultado Operacional", resultadoOperacional)
	// No depreciation or amortization line is modeled, so EBITDA equals the
	// operating result.
	report.Ebitda = line("EBITDA", resultadoOperacional)
	report.ResultadoFinanceiro = line("Resultado Financeiro", resultadoFinanceiro)
	report.LucroAntesImpostos = line("Lucro Antes dos Impostos", lucroAntesImpostos)
	// No income-tax line is modeled either.
	report.LucroLiquido = line("Lucro Líquido", lucroAntesImpostos)
	report.ResultadoFinal = line("Resultado Final", resultadoFinal)
}
