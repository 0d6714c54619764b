// Package ofx ingests OFX statement exports, the format Brazilian banks
// offer for download, into raw rows for classification.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/abarbosa/extrato/internal/model"
)

// Parser implements OFX/QFX statement parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	severityRe = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRe  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes formatting quirks common in bank OFX exports: leading
// whitespace before the header, mixed-case SEVERITY values, and SGML-style
// tags missing their closing bracket.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRe.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagRe.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX statement and returns its lines as raw rows, in
// statement order, with signed amounts (negative = outflow).
func (p *Parser) ParseFile(reader io.Reader) ([]model.RawRow, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var rows []model.RawRow

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			if stmt.BankTranList == nil {
				continue
			}
			accountID := string(stmt.BankAcctFrom.AcctID)
			for _, tx := range stmt.BankTranList.Transactions {
				rows = append(rows, convertTransaction(tx, accountID))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			if stmt.BankTranList == nil {
				continue
			}
			accountID := string(stmt.CCAcctFrom.AcctID)
			for _, tx := range stmt.BankTranList.Transactions {
				rows = append(rows, convertTransaction(tx, accountID))
			}
		}
	}

	slog.Info("Parsed OFX statement", "rows", len(rows))

	return rows, nil
}

// convertTransaction maps one OFX transaction to a raw row. Brazilian banks
// put the useful text in MEMO and often leave NAME empty or generic, so MEMO
// wins when both are present.
func convertTransaction(tx ofxgo.Transaction, accountID string) model.RawRow {
	description := string(tx.Memo)
	if description == "" {
		description = string(tx.Name)
	}

	amount, _ := tx.TrnAmt.Float64()

	return model.RawRow{
		Date:        tx.DtPosted.Time,
		Description: strings.TrimSpace(description),
		AccountID:   accountID,
		Amount:      amount,
	}
}
