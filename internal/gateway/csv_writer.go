package gateway

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

var dreMonthLabels = []string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// WriteDRECSV exports an income statement as a spreadsheet-friendly CSV:
// one row per DRE group with its categories indented underneath, followed by
// the derived rows of the cascade.
func WriteDRECSV(path string, report *domain.DREReport) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	header := make([]string, 0, 14)
	header = append(header, fmt.Sprintf("DRE %d", report.Year))
	for _, m := range dreMonthLabels {
		header = append(header, fmt.Sprintf("%s/%d", m, report.Year))
	}
	header = append(header, "Total")
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	writeLine := func(label string, months []decimal.Decimal, total decimal.Decimal) error {
		row := make([]string, 0, 14)
		row = append(row, label)
		for _, m := range months {
			row = append(row, m.StringFixed(2))
		}
		row = append(row, total.StringFixed(2))
		return w.Write(row)
	}

	for _, group := range report.Groups {
		if err := writeLine(group.Name, group.Months, group.Total); err != nil {
			return fmt.Errorf("failed to write group %s: %w", group.ID, err)
		}
		for _, cat := range group.Categories {
			if err := writeLine("  "+cat.Name, cat.Months, cat.Total); err != nil {
				return fmt.Errorf("failed to write category %s: %w", cat.Name, err)
			}
		}
	}

	derived := []domain.MonthlyLine{
		report.ReceitaLiquida,
		report.LucroBruto,
		report.ResultadoOperacional,
		report.Ebitda,
		report.ResultadoFinanceiro,
		report.LucroAntesImpostos,
		report.LucroLiquido,
		report.ResultadoFinal,
	}
	for _, line := range derived {
		if err := writeLine("= "+line.Name, line.Months, line.Total); err != nil {
			return fmt.Errorf("failed to write derived row %s: %w", line.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
