package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/abarbosa/extrato/internal/common"
	"github.com/abarbosa/extrato/internal/model"
	"github.com/abarbosa/extrato/internal/service"
)

// classifyRowRequest is one statement line as sent by clients. Field names
// follow the bank-export convention used by the frontend.
type classifyRowRequest struct {
	Date        string   `json:"date"`
	Description string   `json:"descricao"`
	AccountID   string   `json:"conta_id,omitempty"`
	Amount      *float64 `json:"valor"`
}

// transactionResponse is the wire form of a classified transaction.
type transactionResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	RawDescription  string  `json:"rawDescription"`
	MerchantRaw     string  `json:"merchantRaw"`
	MerchantNorm    string  `json:"merchantNorm"`
	MerchantSlug    string  `json:"merchantSlug"`
	TransactionType string  `json:"transactionType"`
	Nature          string  `json:"nature"`
	Category        string  `json:"category"`
	CanonicalName   string  `json:"canonicalName"`
	CNPJ            string  `json:"cnpj,omitempty"`
	Fontes          string  `json:"fontes"`
	Amount          float64 `json:"amount"`
	Confidence      float64 `json:"confidence"`
}

type classifyResponse struct {
	Processed []transactionResponse `json:"processed"`
	Inserted  int                   `json:"inserted"`
}

type correctionRequest struct {
	Pattern       string `json:"pattern_substring"`
	CanonicalName string `json:"nome_canonico"`
	Category      string `json:"categoria,omitempty"`
	CNPJ          string `json:"cnpj,omitempty"`
}

type correctionResponse struct {
	OK         bool   `json:"ok"`
	MerchantID string `json:"merchant_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var body []classifyRowRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON array of rows")
		return
	}

	rows := make([]model.RawRow, 0, len(body))
	for i, rr := range body {
		date, err := time.Parse("2006-01-02", rr.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "row "+strconv.Itoa(i)+": date must be an ISO date")
			return
		}
		if rr.Amount == nil {
			writeError(w, http.StatusBadRequest, "row "+strconv.Itoa(i)+": valor is required")
			return
		}
		rows = append(rows, model.RawRow{
			Date:        date,
			Description: rr.Description,
			AccountID:   rr.AccountID,
			Amount:      *rr.Amount,
		})
	}

	result, err := s.classifier.Classify(r.Context(), userFrom(r), rows)
	if err != nil {
		writeClassifierError(w, err)
		return
	}

	resp := classifyResponse{
		Inserted:  result.Inserted,
		Processed: make([]transactionResponse, 0, len(result.Processed)),
	}
	for i := range result.Processed {
		resp.Processed = append(resp.Processed, toResponse(&result.Processed[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCorrection(w http.ResponseWriter, r *http.Request) {
	var body correctionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	merchant, err := s.classifier.SaveCorrection(r.Context(), userFrom(r), service.CorrectionRequest{
		Pattern:       body.Pattern,
		CanonicalName: body.CanonicalName,
		Category:      body.Category,
		CNPJ:          body.CNPJ,
	})
	if err != nil {
		writeClassifierError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, correctionResponse{OK: true, MerchantID: merchant.ID})
}

func toResponse(t *model.NormalizedTransaction) transactionResponse {
	return transactionResponse{
		ID:              t.ID,
		Date:            t.Date.Format("2006-01-02"),
		RawDescription:  t.RawDescription,
		MerchantRaw:     t.MerchantRaw,
		MerchantNorm:    t.MerchantNorm,
		MerchantSlug:    t.MerchantSlug,
		TransactionType: string(t.Type),
		Nature:          string(t.Nature),
		Category:        t.Category,
		CanonicalName:   t.CanonicalName,
		CNPJ:            t.CNPJ,
		Fontes:          t.SourceTrail(),
		Amount:          t.Amount,
		Confidence:      t.Confidence,
	}
}

func writeClassifierError(w http.ResponseWriter, err error) {
	var userErr *common.UserError
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, common.ErrInvalidRow), errors.As(err, &userErr):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("Classification request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
