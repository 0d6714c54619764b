// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

// TransactionType is the closed set of payment/transfer types detected from a
// statement line.
type TransactionType string

// Transaction type constants.
const (
	TypePixDebit     TransactionType = "PIX_DEBIT"
	TypePixCredit    TransactionType = "PIX_CREDIT"
	TypeCardPurchase TransactionType = "CARD_PURCHASE"
	TypeTransferOut  TransactionType = "TRANSFER_OUT"
	TypeTransferIn   TransactionType = "TRANSFER_IN"
	TypeBoleto       TransactionType = "BOLETO"
	TypeFee          TransactionType = "FEE"
	TypeOther        TransactionType = "OTHER"
)

// Nature indicates the flow direction of a transaction relative to the account.
type Nature string

// Nature constants.
const (
	NatureInflow  Nature = "INFLOW"
	NatureOutflow Nature = "OUTFLOW"
	NatureNeutral Nature = "NEUTRAL"
)

// NatureOf derives the flow direction from a transaction type and signed
// amount. The clauses are ordered: an inflow type or a positive amount wins
// before the outflow clause is consulted, so a positive-amount card line (a
// refund) is an inflow even though the type usually implies outflow.
func NatureOf(txType TransactionType, amount float64) Nature {
	if txType == TypeTransferIn || txType == TypePixCredit || amount > 0 {
		return NatureInflow
	}
	if txType == TypeTransferOut || txType == TypePixDebit || txType == TypeCardPurchase || amount < 0 {
		return NatureOutflow
	}
	return NatureNeutral
}

// RawRow is one bank-statement line as ingested, before classification.
type RawRow struct {
	Date        time.Time
	Description string
	AccountID   string
	Amount      float64
}

// NormalizedTransaction is the output of the classification cascade.
type NormalizedTransaction struct {
	Date           time.Time
	ID             string
	RawDescription string
	MerchantRaw    string // extracted substring before normalization
	MerchantNorm   string // title-cased, de-accented display form
	MerchantSlug   string // lowercase hyphenated identity key
	CanonicalName  string
	Category       string
	CNPJ           string
	AccountID      string
	MerchantID     string
	Type           TransactionType
	Nature         Nature
	Sources        []string // cascade stages that contributed, in order
	Amount         float64
	Confidence     float64
}

// GenerateHash creates a stable hash for duplicate detection across imports.
func (t *NormalizedTransaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.RawDescription,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// SourceTrail renders the stage trail as the wire format used in responses,
// e.g. "dict" or "cnpj>rule".
func (t *NormalizedTransaction) SourceTrail() string {
	return strings.Join(t.Sources, ">")
}

// Cascade stage names recorded in NormalizedTransaction.Sources.
const (
	SourceDict     = "dict"
	SourceCNPJ     = "cnpj"
	SourceRule     = "rule"
	SourceFallback = "fallback"
)
