package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldType tells the store and the snapshot codec how a business field is represented
type FieldType int

const (
	FieldText FieldType = iota
	FieldDate
	FieldDecimal
	FieldInt
)

// Field is one mutable business column of a record kind
type Field struct {
	Name string
	Type FieldType
}

// Schema describes a record kind: its table, owner column and the fields captured in
// audit snapshots. Column names come only from these descriptors, never from input.
type Schema struct {
	Table    string
	Singular string
	// OwnerColumn holds the user the record belongs to
	OwnerColumn string
	// UniqueField is checked for duplicates on create; empty when none
	UniqueField string
	Fields      []Field
	NewForm     func() RecordForm
}

var (
	TransactionSchema = &Schema{
		Table:       "transactions",
		Singular:    "transaction",
		OwnerColumn: "entered_by",
		UniqueField: "transaction_id",
		Fields: []Field{
			{Name: "transaction_id", Type: FieldText},
			{Name: "date", Type: FieldDate},
			{Name: "description", Type: FieldText},
			{Name: "amount", Type: FieldDecimal},
		},
		NewForm: func() RecordForm { return &TransactionForm{} },
	}

	BillSchema = &Schema{
		Table:       "bills",
		Singular:    "bill",
		OwnerColumn: "entered_by",
		UniqueField: "bill_number",
		Fields: []Field{
			{Name: "bill_number", Type: FieldText},
			{Name: "vendor_name", Type: FieldText},
			{Name: "date", Type: FieldDate},
			{Name: "amount", Type: FieldDecimal},
			{Name: "status", Type: FieldText},
		},
		NewForm: func() RecordForm { return &BillForm{} },
	}

	AdvanceSchema = &Schema{
		Table:       "advances",
		Singular:    "advance",
		OwnerColumn: "employee_id",
		Fields: []Field{
			{Name: "employee_id", Type: FieldInt},
			{Name: "advance_amount", Type: FieldDecimal},
			{Name: "date", Type: FieldDate},
			{Name: "remaining_due", Type: FieldDecimal},
		},
		NewForm: func() RecordForm { return &AdvanceForm{} },
	}
)

var schemasByTable = map[string]*Schema{
	TransactionSchema.Table: TransactionSchema,
	BillSchema.Table:        BillSchema,
	AdvanceSchema.Table:     AdvanceSchema,
}

// Schemas returns every record kind in a stable order
func Schemas() []*Schema {
	return []*Schema{TransactionSchema, BillSchema, AdvanceSchema}
}

// SchemaFor looks up a record kind by table name
func SchemaFor(table string) (*Schema, bool) {
	s, ok := schemasByTable[table]
	return s, ok
}

// Columns returns the business field names in declaration order
func (s *Schema) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Name
	}
	return cols
}

// Title returns the singular name with a leading capital, used in messages
func (s *Schema) Title() string {
	if s.Singular == "" {
		return ""
	}
	return strings.ToUpper(s.Singular[:1]) + s.Singular[1:]
}

// Snapshot is a key->value capture of a record's business fields.
// Values are string for text and date fields, decimal.Decimal for amounts and
// int64 for integer references.
type Snapshot map[string]any

// Encode serializes exactly the schema's fields of snap as a JSON document
func (s *Schema) Encode(snap Snapshot) (string, error) {
	doc := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		v, ok := snap[f.Name]
		if !ok {
			return "", fmt.Errorf("snapshot for %s is missing field %q", s.Table, f.Name)
		}
		doc[f.Name] = v
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s snapshot: %w", s.Table, err)
	}
	return string(data), nil
}

// Decode parses a JSON document produced by Encode back into typed values
func (s *Schema) Decode(data string) (Snapshot, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s snapshot: %w", s.Table, err)
	}

	snap := make(Snapshot, len(s.Fields))
	for _, f := range s.Fields {
		v, ok := raw[f.Name]
		if !ok {
			return nil, fmt.Errorf("%s snapshot is missing field %q", s.Table, f.Name)
		}
		typed, err := convertField(f, v)
		if err != nil {
			return nil, err
		}
		snap[f.Name] = typed
	}
	return snap, nil
}

func convertField(f Field, v any) (any, error) {
	switch f.Type {
	case FieldDecimal:
		switch n := v.(type) {
		case string:
			return decimal.NewFromString(n)
		case json.Number:
			return decimal.NewFromString(n.String())
		}
	case FieldInt:
		switch n := v.(type) {
		case json.Number:
			return n.Int64()
		}
	default:
		if str, ok := v.(string); ok {
			return str, nil
		}
	}
	return nil, fmt.Errorf("field %q has unexpected value %v", f.Name, v)
}

// Equal reports whether two snapshots hold the same values for the schema's fields
func (s *Schema) Equal(a, b Snapshot) bool {
	for _, f := range s.Fields {
		av, bv := a[f.Name], b[f.Name]
		if f.Type == FieldDecimal {
			ad, aok := av.(decimal.Decimal)
			bd, bok := bv.(decimal.Decimal)
			if !aok || !bok || !ad.Equal(bd) {
				return false
			}
			continue
		}
		if av != bv {
			return false
		}
	}
	return true
}
