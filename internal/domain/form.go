package domain

import (
	"math"
	"strconv"
	"strings"
)

// FieldErrors maps a form field name to its ordered validation messages.
type FieldErrors map[string][]string

const (
	msgSelectCustomer = "Please select a customer."
	msgAmountTooSmall = "Please enter an amount greater than $0."
	msgSelectStatus   = "Please select an invoice status."
)

// NormalizedInvoice is the validated, normalized form of an invoice mutation.
// AmountCents is the major-unit amount converted to minor units.
type NormalizedInvoice struct {
	CustomerID  string
	AmountCents int64
	Status      InvoiceStatus
}

// CreateInvoiceRequest carries the raw form fields for creating an invoice.
// The id and date are supplied by the system, not the caller, so they are not
// part of the request shape.
type CreateInvoiceRequest struct {
	CustomerID string
	Amount     string
	Status     string
}

// Validate checks the request against the invoice field rules. It returns
// either the normalized record or a field-to-messages mapping, never both.
func (r CreateInvoiceRequest) Validate() (NormalizedInvoice, FieldErrors) {
	return validateInvoiceFields(r.CustomerID, r.Amount, r.Status)
}

// UpdateInvoiceRequest carries the raw form fields for updating an invoice.
// The target id is passed separately and the date is never modified.
type UpdateInvoiceRequest struct {
	CustomerID string
	Amount     string
	Status     string
}

// Validate checks the request against the invoice field rules.
func (r UpdateInvoiceRequest) Validate() (NormalizedInvoice, FieldErrors) {
	return validateInvoiceFields(r.CustomerID, r.Amount, r.Status)
}

// validateInvoiceFields is the shared field validator behind both request
// types. It is pure: no side effects, deterministic given its input.
func validateInvoiceFields(customerID, amount, status string) (NormalizedInvoice, FieldErrors) {
	errs := FieldErrors{}

	if strings.TrimSpace(customerID) == "" {
		errs["customerId"] = append(errs["customerId"], msgSelectCustomer)
	}

	cents, ok := parseAmountCents(amount)
	if !ok {
		errs["amount"] = append(errs["amount"], msgAmountTooSmall)
	}

	st := InvoiceStatus(status)
	if st != StatusPending && st != StatusPaid {
		errs["status"] = append(errs["status"], msgSelectStatus)
	}

	if len(errs) > 0 {
		return NormalizedInvoice{}, errs
	}
	return NormalizedInvoice{CustomerID: customerID, AmountCents: cents, Status: st}, nil
}

// parseAmountCents converts a major-unit decimal string to minor units. The
// amount must parse as a number strictly greater than zero. Fractional cents
// round half away from zero.
func parseAmountCents(s string) (int64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return int64(math.Round(f * 100)), true
}
