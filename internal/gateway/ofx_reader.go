package gateway

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

// ReadOFXStatements parses a bank statement in OFX (SGML) format into
// statement lines. Only the fields the ledger needs are extracted: the
// account identifier, and per <STMTTRN> block the posted date, amount,
// bank-side ID and description. The direction is derived from the amount's
// sign, mirroring how banks report debits as negative values.
func ReadOFXStatements(path string) ([]domain.BankStatement, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file %s: %w", path, err)
	}
	defer file.Close()

	var (
		statements []domain.BankStatement
		accountID  string
		current    domain.BankStatement
		inEntry    bool
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, "<ACCTID>"):
			accountID = ofxValue(line, "ACCTID")

		case strings.Contains(line, "<STMTTRN>"):
			inEntry = true
			current = domain.BankStatement{}

		case strings.Contains(line, "</STMTTRN>"):
			inEntry = false
			if current.Amount.IsZero() && current.Description == "" {
				continue
			}
			current.BankAccountID = accountID
			if current.ID == "" {
				current.ID = uuid.NewString()
			}
			if current.Amount.IsNegative() {
				current.Direction = domain.StatementDebit
			} else {
				current.Direction = domain.StatementCredit
			}
			statements = append(statements, current)

		case inEntry:
			if v := ofxValue(line, "DTPOSTED"); v != "" {
				posted, err := parseOFXDate(v)
				if err != nil {
					return nil, fmt.Errorf("could not parse DTPOSTED '%s' in %s: %w", v, path, err)
				}
				current.TransactionDate = posted
			}
			if v := ofxValue(line, "TRNAMT"); v != "" {
				amount, err := decimal.NewFromString(v)
				if err != nil {
					return nil, fmt.Errorf("could not parse TRNAMT '%s' in %s: %w", v, path, err)
				}
				current.Amount = amount
			}
			if v := ofxValue(line, "FITID"); v != "" {
				current.ID = v
			}
			if v := ofxValue(line, "REFNUM"); v != "" {
				current.TransactionID = v
			}
			if v := ofxValue(line, "MEMO"); v != "" {
				current.Description = v
			}
			if v := ofxValue(line, "NAME"); v != "" && current.Description == "" {
				current.Description = v
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return statements, nil
}

// ofxValue extracts the value of an SGML tag from a line; OFX files usually
// leave the closing tag off, so both forms are handled.
func ofxValue(line, tag string) string {
	open := "<" + tag + ">"
	idx := strings.Index(line, open)
	if idx < 0 {
		return ""
	}
	v := line[idx+len(open):]
	if end := strings.Index(v, "</"); end >= 0 {
		v = v[:end]
	}
	return strings.TrimSpace(v)
}

// parseOFXDate reads the YYYYMMDD prefix of an OFX timestamp, ignoring the
// optional time and timezone suffix.
func parseOFXDate(v string) (time.Time, error) {
	if len(v) > 8 {
		v = v[:8]
	}
	return time.Parse("20060102", v)
}
