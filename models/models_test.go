package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Test TransactionForm validation
func TestTransactionFormValidation(t *testing.T) {
	v := NewValidator()

	valid := TransactionForm{TransactionID: "TX-1", Date: "2024-03-01", Amount: dec("12.50")}
	assert.Empty(t, valid.Validate(v))

	invalid := TransactionForm{Date: "03/01/2024"}
	errs := invalid.Validate(v)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs.GetMessages(), "transaction_id is required")
	assert.Contains(t, errs.GetMessages(), "date must be a date in YYYY-MM-DD format")
	assert.Contains(t, errs.GetMessages(), "amount is required")
}

// Test BillForm validation and status default
func TestBillFormValidation(t *testing.T) {
	v := NewValidator()

	form := BillForm{BillNumber: "B-42", VendorName: "Acme", Date: "2024-03-01", Amount: dec("100")}
	assert.Empty(t, form.Validate(v))
	assert.Equal(t, BillStatusPending, form.Snapshot()["status"])

	form.Status = "Lost"
	errs := form.Validate(v)
	require.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)

	zero := BillForm{BillNumber: "B-1", VendorName: "Acme", Date: "2024-03-01", Amount: dec("0")}
	assert.True(t, zero.Validate(v).HasErrors())
}

// Test AdvanceForm validation
func TestAdvanceFormValidation(t *testing.T) {
	v := NewValidator()

	form := AdvanceForm{EmployeeID: 3, AdvanceAmount: dec("500"), Date: "2024-03-01", RemainingDue: dec("0")}
	assert.Empty(t, form.Validate(v))

	bad := AdvanceForm{AdvanceAmount: dec("-1"), Date: "2024-03-01", RemainingDue: dec("-5")}
	errs := bad.Validate(v)
	assert.Len(t, errs, 3)
}

func TestSnapshotRoundTripPreservesValues(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		snap   Snapshot
	}{
		{
			name:   "transaction",
			schema: TransactionSchema,
			snap: Snapshot{
				"transaction_id": "TX-9",
				"date":           "2024-02-29",
				"description":    "Office chairs",
				"amount":         decimal.RequireFromString("12345678901234.0123456789"),
			},
		},
		{
			name:   "bill",
			schema: BillSchema,
			snap: Snapshot{
				"bill_number": "B-42",
				"vendor_name": "Acme",
				"date":        "2024-01-01",
				"amount":      decimal.RequireFromString("0.1"),
				"status":      BillStatusPaid,
			},
		},
		{
			name:   "advance",
			schema: AdvanceSchema,
			snap: Snapshot{
				"employee_id":    int64(9007199254740993),
				"advance_amount": decimal.RequireFromString("1500.75"),
				"date":           "2024-05-10",
				"remaining_due":  decimal.RequireFromString("250.05"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := tt.schema.Encode(tt.snap)
			require.NoError(t, err)

			decoded, err := tt.schema.Decode(encoded)
			require.NoError(t, err)
			assert.True(t, tt.schema.Equal(tt.snap, decoded), "decoded %v from %s", decoded, encoded)
		})
	}
}

func TestEncodeCapturesOnlySchemaFields(t *testing.T) {
	snap := Snapshot{
		"transaction_id": "TX-1",
		"date":           "2024-01-01",
		"description":    "",
		"amount":         decimal.NewFromInt(5),
		"entered_by":     int64(2),
	}

	encoded, err := TransactionSchema.Encode(snap)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(encoded), &doc))
	assert.NotContains(t, doc, "entered_by")
	assert.Len(t, doc, 4)
}

func TestEncodeRejectsMissingField(t *testing.T) {
	_, err := BillSchema.Encode(Snapshot{"bill_number": "B-1"})
	assert.Error(t, err)
}

func TestSchemaFor(t *testing.T) {
	s, ok := SchemaFor("advances")
	require.True(t, ok)
	assert.Equal(t, "employee_id", s.OwnerColumn)
	assert.Equal(t, "Advance", s.Title())

	_, ok = SchemaFor("users")
	assert.False(t, ok)
}
