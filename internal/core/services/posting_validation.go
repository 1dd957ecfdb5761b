package services

import (
	"errors"
	"fmt"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	ErrSubtotalMismatch  = errors.New("subtotal does not equal the sum of line totals")
	ErrTotalMismatch     = errors.New("total does not equal subtotal - discount + tax")
	ErrRemainingMismatch = errors.New("remaining does not equal total - paid")
)

// validateInvoiceTotals verifies that the caller-supplied monetary fields of
// an invoice are internally consistent. The store never recomputes totals
// after posting, so inconsistent input would be frozen into the books.
func validateInvoiceTotals(subtotal, discountTotal, taxTotal, total, paid, remaining decimal.Decimal, lineTotals []decimal.Decimal) error {
	lineSum := decimal.Zero
	for _, lt := range lineTotals {
		lineSum = lineSum.Add(lt)
	}
	if !subtotal.Equal(lineSum) {
		return fmt.Errorf("%w: %w (subtotal %s, line sum %s)", apperrors.ErrValidation, ErrSubtotalMismatch, subtotal, lineSum)
	}
	if expected := subtotal.Sub(discountTotal).Add(taxTotal); !total.Equal(expected) {
		return fmt.Errorf("%w: %w (total %s, expected %s)", apperrors.ErrValidation, ErrTotalMismatch, total, expected)
	}
	if expected := total.Sub(paid); !remaining.Equal(expected) {
		return fmt.Errorf("%w: %w (remaining %s, expected %s)", apperrors.ErrValidation, ErrRemainingMismatch, remaining, expected)
	}
	return nil
}
