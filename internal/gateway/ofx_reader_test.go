package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finledger/internal/domain"
	"finledger/internal/gateway"
)

const sampleOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102

<OFX>
<BANKMSGSRSV1>
<STMTTRNRS>
<STMTRS>
<BANKACCTFROM>
<BANKID>341
<ACCTID>12345-6
</BANKACCTFROM>
<BANKTRANLIST>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240110120000[-3:BRT]
<TRNAMT>1500.50
<FITID>FIT001
<MEMO>PIX received Acme
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240112
<TRNAMT>-89.90
<FITID>FIT002
<REFNUM>T42
<NAME>CloudCo hosting
</STMTTRN>
</BANKTRANLIST>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`

func TestReadOFXStatements(t *testing.T) {
	path := writeTempFile(t, "statement.ofx", sampleOFX)

	got, err := gateway.ReadOFXStatements(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	credit := got[0]
	assert.Equal(t, "FIT001", credit.ID)
	assert.Equal(t, "12345-6", credit.BankAccountID)
	assert.Equal(t, "2024-01-10", credit.TransactionDate.Format("2006-01-02"))
	assert.Equal(t, "1500.5", credit.Amount.String())
	assert.Equal(t, domain.StatementCredit, credit.Direction)
	assert.Equal(t, "PIX received Acme", credit.Description)
	assert.Empty(t, credit.TransactionID)

	debit := got[1]
	assert.Equal(t, "FIT002", debit.ID)
	assert.Equal(t, "2024-01-12", debit.TransactionDate.Format("2006-01-02"))
	assert.True(t, debit.Amount.IsNegative())
	assert.Equal(t, domain.StatementDebit, debit.Direction)
	// NAME fills the description when MEMO is absent.
	assert.Equal(t, "CloudCo hosting", debit.Description)
	assert.Equal(t, "T42", debit.TransactionID)
}

func TestReadOFXStatements_GeneratedID(t *testing.T) {
	content := `<OFX>
<ACCTID>999
<STMTTRN>
<DTPOSTED>20240301
<TRNAMT>10.00
<MEMO>no fitid here
</STMTTRN>
</OFX>
`
	path := writeTempFile(t, "statement.ofx", content)

	got, err := gateway.ReadOFXStatements(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID, "a fallback ID is generated when FITID is missing")
	assert.Equal(t, "999", got[0].BankAccountID)
}

func TestReadOFXStatements_BadAmount(t *testing.T) {
	content := `<OFX>
<STMTTRN>
<DTPOSTED>20240301
<TRNAMT>ten
</STMTTRN>
</OFX>
`
	path := writeTempFile(t, "statement.ofx", content)

	_, err := gateway.ReadOFXStatements(path)
	assert.Error(t, err)
}

func TestReadOFXStatements_MissingFile(t *testing.T) {
	_, err := gateway.ReadOFXStatements("does-not-exist.ofx")
	assert.Error(t, err)
}
