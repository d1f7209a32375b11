package billing

import "errors"

var (
	ErrNotFound            = errors.New("invoice not found")
	ErrItemNotFound        = errors.New("invoice item not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrPatientMismatch     = errors.New("appointment patient does not match invoice patient")
	ErrInvoiceCancelled    = errors.New("invoice is cancelled")
	ErrNotDraft            = errors.New("only draft invoices can be issued")
	ErrNotCancellable      = errors.New("only draft or issued invoices can be cancelled")
	ErrConcurrencyConflict = errors.New("invoice was modified concurrently")
)
