package domain

// DREGroup identifies one of the thirteen fixed income-statement lines.
type DREGroup string

const (
	GroupReceitaBruta            DREGroup = "receita_bruta"
	GroupImpostos                DREGroup = "impostos"
	GroupDeducaoReceita          DREGroup = "deducao_receita"
	GroupCustosCMV               DREGroup = "custos_cmv"
	GroupCustosCPV               DREGroup = "custos_cpv"
	GroupCustosServicos          DREGroup = "custos_servicos"
	GroupDespesasAdministrativas DREGroup = "despesas_administrativas"
	GroupDespesasPessoal         DREGroup = "despesas_pessoal"
	GroupDespesasVariaveis       DREGroup = "despesas_variaveis"
	GroupOutrasReceitas          DREGroup = "outras_receitas"
	GroupReceitasFinanceiras     DREGroup = "receitas_financeiras"
	GroupDespesasFinanceiras     DREGroup = "despesas_financeiras"
	GroupInvestimentos           DREGroup = "investimentos"
)

// DREGroupInfo carries the display metadata of an income-statement line.
type DREGroupInfo struct {
	ID    DREGroup        `json:"id"`
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Order int             `json:"order"`
}

// dreGroupTable is the fixed taxonomy, in display order.
var dreGroupTable = []DREGroupInfo{
	{GroupReceitaBruta, "Receita Bruta", TypeIncome, 1},
	{GroupImpostos, "Impostos", TypeExpense, 2},
	{GroupDeducaoReceita, "Deduções de Receitas", TypeExpense, 3},
	{GroupCustosCMV, "Custos das Mercadorias Vendidas (CMV)", TypeExpense, 4},
	{GroupCustosCPV, "Custos dos Produtos Vendidos (CPV)", TypeExpense, 5},
	{GroupCustosServicos, "Custos dos Serviços", TypeExpense, 6},
	{GroupDespesasAdministrativas, "Despesas Administrativas", TypeExpense, 7},
	{GroupDespesasPessoal, "Despesas com Pessoal", TypeExpense, 8},
	{GroupDespesasVariaveis, "Despesas Variáveis", TypeExpense, 9},
	{GroupOutrasReceitas, "Outras Receitas", TypeIncome, 10},
	{GroupReceitasFinanceiras, "Receitas Financeiras", TypeIncome, 11},
	{GroupDespesasFinanceiras, "Despesas Financeiras", TypeExpense, 12},
	{GroupInvestimentos, "Investimentos", TypeExpense, 13},
}

// DREGroups returns the thirteen income-statement lines in display order.
func DREGroups() []DREGroupInfo {
	out := make([]DREGroupInfo, len(dreGroupTable))
	copy(out, dreGroupTable)
	return out
}

// ValidDREGroup reports whether id names a known income-statement line.
func ValidDREGroup(id DREGroup) bool {
	for _, g := range dreGroupTable {
		if g.ID == id {
			return true
		}
	}
	return false
}

// CategoryType binds a user-defined category name to an income-statement line.
type CategoryType struct {
	Name     string          `json:"name"`
	Type     TransactionType `json:"type"`
	DREGroup DREGroup        `json:"dre_group"`
}

// CostCenter is an optional allocation dimension on transactions.
type CostCenter struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}
