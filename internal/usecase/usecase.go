package usecase

// ReportUseCase computes the ledger reports. It is stateless across calls:
// every method fetches a fresh snapshot from the repository and recomputes
// its result from scratch, so callers never see partial or cached data.
type ReportUseCase struct {
	repo LedgerRepository
}

// NewReportUseCase creates a new instance of the usecase.
func NewReportUseCase(repo LedgerRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}
