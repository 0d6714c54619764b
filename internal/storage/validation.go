package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abarbosa/extrato/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrNilParameter      = errors.New("parameter cannot be nil")
	ErrInvalidMerchant   = errors.New("invalid merchant")
	ErrInvalidCorrection = errors.New("invalid correction rule")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateMerchant validates a merchant before persistence.
func validateMerchant(m *model.Merchant) error {
	if m == nil {
		return fmt.Errorf("%w: merchant", ErrNilParameter)
	}
	if strings.TrimSpace(m.UserID) == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidMerchant)
	}
	if strings.TrimSpace(m.Slug) == "" {
		return fmt.Errorf("%w: missing slug", ErrInvalidMerchant)
	}
	if strings.TrimSpace(m.CanonicalName) == "" {
		return fmt.Errorf("%w: missing canonical name", ErrInvalidMerchant)
	}
	return nil
}

// validateCorrectionRule validates a correction rule before persistence.
func validateCorrectionRule(r *model.CorrectionRule) error {
	if r == nil {
		return fmt.Errorf("%w: rule", ErrNilParameter)
	}
	if strings.TrimSpace(r.UserID) == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidCorrection)
	}
	if strings.TrimSpace(r.Pattern) == "" {
		return fmt.Errorf("%w: missing pattern", ErrInvalidCorrection)
	}
	if strings.TrimSpace(r.MerchantID) == "" {
		return fmt.Errorf("%w: missing merchant ID", ErrInvalidCorrection)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("%w: confidence must be between 0 and 1", ErrInvalidCorrection)
	}
	return nil
}
