package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"finledger/internal/gateway"
	"finledger/internal/usecase"
	"finledger/pkg/utils"
)

func main() {
	// Define command-line flags
	report := flag.String("report", "", "Report to run: daily|cashflow|statement|dre|aging|balances|indicators|reconcile (required)")
	transactionsFile := flag.String("transactions", "", "Path to the transactions CSV file")
	accountsFile := flag.String("accounts", "", "Path to the bank accounts CSV file")
	categoriesFile := flag.String("categories", "", "Path to the category types CSV file")
	costCentersFile := flag.String("costcenters", "", "Path to the cost centers CSV file")
	statementsFile := flag.String("statements", "", "Path to an OFX bank statement file")
	startStr := flag.String("start", "", "Start date of the report window (YYYY-MM-DD)")
	endStr := flag.String("end", "", "End date of the report window (YYYY-MM-DD)")
	year := flag.Int("year", time.Now().Year(), "Calendar year for the DRE report")
	account := flag.String("account", "", "Bank account ID filter")
	unmapped := flag.String("unmapped", "drop", "DRE policy for categories without a DRE group: drop|track")
	outFile := flag.String("out", "", "Optional CSV output path for the DRE report")
	flag.Parse()

	// Environment is optional; flags carry the per-run inputs.
	godotenv.Load()
	utils.InitLogger()

	if *report == "" {
		fmt.Println("Error: the -report flag is required.")
		flag.Usage()
		os.Exit(1)
	}

	start, end, err := reportWindow(*startStr, *endStr, *year)
	if err != nil {
		utils.Logger.Fatalf("Invalid report window: %v", err)
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the repository (the outermost layer)
	repo := gateway.NewCSVLedgerRepository(*transactionsFile, *accountsFile, *categoriesFile, *costCentersFile, *statementsFile)

	// 2. Create the usecase and inject the repository (the core logic layer)
	reports := usecase.NewReportUseCase(repo)

	// --- Execute the selected report ---
	ctx := context.Background()
	var result interface{}

	switch *report {
	case "daily":
		result, err = reports.DailyMovements(ctx, start, end)
	case "cashflow":
		result, err = reports.CashFlow(ctx, start, end, *account)
	case "statement":
		result, err = reports.Statement(ctx, start, end, *account)
	case "dre":
		policy := usecase.UnmappedPolicy(*unmapped)
		if policy != usecase.UnmappedDrop && policy != usecase.UnmappedTrack {
			utils.Logger.Fatalf("Unknown unmapped policy %q", *unmapped)
		}
		dre, dreErr := reports.DRE(ctx, *year, policy)
		if dreErr == nil && *outFile != "" {
			dreErr = gateway.WriteDRECSV(*outFile, dre)
		}
		result, err = dre, dreErr
	case "aging":
		result, err = reports.Aging(ctx, time.Now())
	case "balances":
		result, err = reports.AccountBalances(ctx)
	case "indicators":
		result, err = reports.Indicators(ctx)
	case "reconcile":
		result, err = reports.ReconcileSuggestions(ctx, start, end)
	default:
		utils.Logger.Fatalf("Unknown report %q", *report)
	}
	if err != nil {
		utils.ErrorHandler(err, "report execution failed")
		os.Exit(1)
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		utils.Logger.Fatalf("Failed to generate JSON report: %v", err)
	}

	fmt.Println(string(output))
}

// reportWindow resolves the date window: explicit -start/-end when given,
// otherwise the whole of -year.
func reportWindow(startStr, endStr string, year int) (time.Time, time.Time, error) {
	if startStr == "" && endStr == "" {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		return start, end, nil
	}
	start, err := time.Parse(time.DateOnly, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing start date: %w", err)
	}
	end, err := time.Parse(time.DateOnly, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing end date: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s", endStr, startStr)
	}
	return start, end, nil
}
