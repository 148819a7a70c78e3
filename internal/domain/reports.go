package domain

import "github.com/shopspring/decimal"

// DayFlow is one day of grouped movements: the day's income and expense
// totals, the day's net balance, and the cumulative running balance as of the
// end of the day.
type DayFlow struct {
	Date           string          `json:"date"`
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	Balance        decimal.Decimal `json:"balance"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	Transactions   []Transaction   `json:"transactions"`
}

// MonthFlow aggregates a calendar month of day groups.
type MonthFlow struct {
	Month          string          `json:"month"`
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	Balance        decimal.Decimal `json:"balance"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	Days           []DayFlow       `json:"days"`
}

// FlowTotals summarizes a whole report window.
type FlowTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// DailyMovementsReport lists every transaction in the window grouped by due
// date, regardless of reconciliation state.
type DailyMovementsReport struct {
	Start  string     `json:"start"`
	End    string     `json:"end"`
	Days   []DayFlow  `json:"days"`
	Totals FlowTotals `json:"totals"`
}

// CashFlowReport is the forward-looking projection: non-reconciled
// transactions only, grouped month by month with every month of the window
// present even when empty.
type CashFlowReport struct {
	Start          string          `json:"start"`
	End            string          `json:"end"`
	AccountID      string          `json:"account_id,omitempty"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Months         []MonthFlow     `json:"months"`
	Totals         FlowTotals      `json:"totals"`
}

// StatementReport is the historical view: reconciled transactions only, with
// the running balance seeded from the account's initial balance.
type StatementReport struct {
	Start          string          `json:"start"`
	End            string          `json:"end"`
	AccountID      string          `json:"account_id,omitempty"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Days           []DayFlow       `json:"days"`
	Totals         FlowTotals      `json:"totals"`
}

// AccountBalance is one bank account's recomputed position.
type AccountBalance struct {
	AccountID      string          `json:"account_id"`
	Name           string          `json:"name"`
	IsPrimary      bool            `json:"is_primary"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// BalancesReport recomputes every account's balance from its initial balance
// and its reconciled transactions.
type BalancesReport struct {
	Accounts []AccountBalance `json:"accounts"`
	Total    decimal.Decimal  `json:"total"`
}

// MonthlyLine is a labeled row of twelve monthly decimals plus their sum.
// Index 0 is January.
type MonthlyLine struct {
	Name   string            `json:"name"`
	Months []decimal.Decimal `json:"months"`
	Total  decimal.Decimal   `json:"total"`
}

// DRECategoryLine is one category's monthly totals inside a DRE group.
type DRECategoryLine struct {
	Name   string            `json:"name"`
	Months []decimal.Decimal `json:"months"`
	Total  decimal.Decimal   `json:"total"`
}

// DREGroupLine is one of the thirteen taxonomy lines with its category
// breakdown. Totals are positive magnitudes; deductions are applied by the
// derived rows, not baked into storage.
type DREGroupLine struct {
	ID         DREGroup          `json:"id"`
	Name       string            `json:"name"`
	Type       TransactionType   `json:"type"`
	Months     []decimal.Decimal `json:"months"`
	Total      decimal.Decimal   `json:"total"`
	Categories []DRECategoryLine `json:"categories"`
}

// DREUnmapped tallies transactions whose category has no income-statement
// line. Present only when the report was computed with UnmappedTrack.
type DREUnmapped struct {
	Count  int               `json:"count"`
	Months []decimal.Decimal `json:"months"`
	Total  decimal.Decimal   `json:"total"`
}

// DREReport is the income statement for one calendar year: the thirteen
// group lines followed by the eight derived rows of the cascade.
type DREReport struct {
	Year                 int            `json:"year"`
	Groups               []DREGroupLine `json:"groups"`
	ReceitaLiquida       MonthlyLine    `json:"receita_liquida"`
	LucroBruto           MonthlyLine    `json:"lucro_bruto"`
	ResultadoOperacional MonthlyLine    `json:"resultado_operacional"`
	Ebitda               MonthlyLine    `json:"ebitda"`
	ResultadoFinanceiro  MonthlyLine    `json:"resultado_financeiro"`
	LucroAntesImpostos   MonthlyLine    `json:"lucro_antes_impostos"`
	LucroLiquido         MonthlyLine    `json:"lucro_liquido"`
	ResultadoFinal       MonthlyLine    `json:"resultado_final"`
	Unmapped             *DREUnmapped   `json:"unmapped,omitempty"`
}

// AgingBucket is one lateness band of overdue receivables.
type AgingBucket struct {
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryDelinquency is the delinquency rate scoped to one category.
type CategoryDelinquency struct {
	Category      string          `json:"category"`
	OverdueAmount decimal.Decimal `json:"overdue_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Rate          decimal.Decimal `json:"rate"`
}

// AgingReport classifies pending income transactions by lateness as of a
// reference instant.
type AgingReport struct {
	AsOf             string                `json:"as_of"`
	OverdueCount     int                   `json:"overdue_count"`
	OverdueAmount    decimal.Decimal       `json:"overdue_amount"`
	TotalReceivables decimal.Decimal       `json:"total_receivables"`
	Rate             decimal.Decimal       `json:"rate"`
	Buckets          []AgingBucket         `json:"buckets"`
	ByCategory       []CategoryDelinquency `json:"by_category"`
	Overdue          []Transaction         `json:"overdue"`
}

// IndicatorsReport carries the dashboard metrics: open positions, realized
// totals, EBITDA and contribution margin.
type IndicatorsReport struct {
	TotalReceivables        decimal.Decimal `json:"total_receivables"`
	TotalPayables           decimal.Decimal `json:"total_payables"`
	TotalIncome             decimal.Decimal `json:"total_income"`
	TotalExpense            decimal.Decimal `json:"total_expense"`
	Ebitda                  decimal.Decimal `json:"ebitda"`
	EbitdaMargin            decimal.Decimal `json:"ebitda_margin"`
	ContributionMargin      decimal.Decimal `json:"contribution_margin"`
	ContributionMarginRatio decimal.Decimal `json:"contribution_margin_ratio"`
}

// MatchSuggestion pairs a bank statement line with the transaction it
// appears to settle.
type MatchSuggestion struct {
	Statement   BankStatement `json:"statement"`
	Transaction Transaction   `json:"transaction"`
}

// ReconcileSummary gives the high-level counts of a matching run.
type ReconcileSummary struct {
	StatementsProcessed   int `json:"statements_processed"`
	TransactionsProcessed int `json:"transactions_processed"`
	Matched               int `json:"matched"`
	Unmatched             int `json:"unmatched"`
}

// ReconcileReport is the output of the statement matching suggestions.
type ReconcileReport struct {
	Summary               ReconcileSummary           `json:"summary"`
	Matches               []MatchSuggestion          `json:"matches"`
	UnmatchedStatements   map[string][]BankStatement `json:"unmatched_statements"`
	UnmatchedTransactions []Transaction              `json:"unmatched_transactions"`
}
