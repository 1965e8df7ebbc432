package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Bill statuses
const (
	BillStatusPending   = "Pending"
	BillStatusPaid      = "Paid"
	BillStatusOverdue   = "Overdue"
	BillStatusCancelled = "Cancelled"
)

// RecordForm is the request payload for creating or updating one record kind
type RecordForm interface {
	Validate(v *validator.Validate) ValidationErrors
	Snapshot() Snapshot
}

// NewValidator returns a validator that reports json field names
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// TransactionForm represents form data for creating/updating transactions
type TransactionForm struct {
	TransactionID string           `json:"transaction_id" validate:"required,max=64"`
	Date          string           `json:"date" validate:"required,datetime=2006-01-02"`
	Description   string           `json:"description" validate:"max=500"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
}

// Validate validates the transaction form data
func (f *TransactionForm) Validate(v *validator.Validate) ValidationErrors {
	errs := collectValidation(v.Struct(f))
	if f.Amount != nil && f.Amount.IsZero() {
		errs.Add("amount", "amount is required")
	}
	return errs
}

// Snapshot returns the business fields of the form
func (f *TransactionForm) Snapshot() Snapshot {
	return Snapshot{
		"transaction_id": strings.TrimSpace(f.TransactionID),
		"date":           f.Date,
		"description":    strings.TrimSpace(f.Description),
		"amount":         derefDecimal(f.Amount),
	}
}

// BillForm represents form data for creating/updating bills
type BillForm struct {
	BillNumber string           `json:"bill_number" validate:"required,max=64"`
	VendorName string           `json:"vendor_name" validate:"required,max=200"`
	Date       string           `json:"date" validate:"required,datetime=2006-01-02"`
	Amount     *decimal.Decimal `json:"amount" validate:"required"`
	Status     string           `json:"status" validate:"omitempty,oneof=Pending Paid Overdue Cancelled"`
}

// Validate validates the bill form data
func (f *BillForm) Validate(v *validator.Validate) ValidationErrors {
	errs := collectValidation(v.Struct(f))
	if f.Amount != nil && f.Amount.IsZero() {
		errs.Add("amount", "amount is required")
	}
	return errs
}

// Snapshot returns the business fields of the form; a missing status means Pending
func (f *BillForm) Snapshot() Snapshot {
	status := f.Status
	if status == "" {
		status = BillStatusPending
	}
	return Snapshot{
		"bill_number": strings.TrimSpace(f.BillNumber),
		"vendor_name": strings.TrimSpace(f.VendorName),
		"date":        f.Date,
		"amount":      derefDecimal(f.Amount),
		"status":      status,
	}
}

// AdvanceForm represents form data for creating/updating employee advances
type AdvanceForm struct {
	EmployeeID    int64            `json:"employee_id" validate:"required,gt=0"`
	AdvanceAmount *decimal.Decimal `json:"advance_amount" validate:"required"`
	Date          string           `json:"date" validate:"required,datetime=2006-01-02"`
	RemainingDue  *decimal.Decimal `json:"remaining_due" validate:"required"`
}

// Validate validates the advance form data
func (f *AdvanceForm) Validate(v *validator.Validate) ValidationErrors {
	errs := collectValidation(v.Struct(f))
	if f.AdvanceAmount != nil && !f.AdvanceAmount.IsPositive() {
		errs.Add("advance_amount", "advance_amount must be greater than 0")
	}
	if f.RemainingDue != nil && f.RemainingDue.IsNegative() {
		errs.Add("remaining_due", "remaining_due cannot be negative")
	}
	return errs
}

// Snapshot returns the business fields of the form
func (f *AdvanceForm) Snapshot() Snapshot {
	return Snapshot{
		"employee_id":    f.EmployeeID,
		"advance_amount": derefDecimal(f.AdvanceAmount),
		"date":           f.Date,
		"remaining_due":  derefDecimal(f.RemainingDue),
	}
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
