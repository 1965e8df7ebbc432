package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
)

// RecordRepository interface defines database operations shared by every record kind.
// The schema argument selects the table and the columns involved.
type RecordRepository interface {
	GetByID(ctx context.Context, schema *models.Schema, id int64) (*models.Record, error)
	GetAll(ctx context.Context, schema *models.Schema) ([]models.Record, error)
	GetByOwner(ctx context.Context, schema *models.Schema, ownerID int64) ([]models.Record, error)
	ExistsByUniqueField(ctx context.Context, schema *models.Schema, value string) (bool, error)
	Create(ctx context.Context, schema *models.Schema, record *models.Record) error
	Update(ctx context.Context, schema *models.Schema, id int64, fields models.Snapshot) (int64, error)
	Delete(ctx context.Context, schema *models.Schema, id int64) (int64, error)
}

// recordRepository implements RecordRepository interface
type recordRepository struct {
	db DBTX
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db DBTX) RecordRepository {
	return &recordRepository{db: db}
}

func selectRecordSQL(schema *models.Schema) string {
	cols := make([]string, 0, len(schema.Fields)+6)
	cols = append(cols, "t.id")
	for _, f := range schema.Fields {
		cols = append(cols, "t."+f.Name)
	}
	cols = append(cols,
		"t.entered_by",
		"t."+schema.OwnerColumn,
		"t.created_at",
		"COALESCE(e.username, '')",
		"COALESCE(o.username, '')",
	)

	return fmt.Sprintf(`
		SELECT %s
		FROM %s t
		LEFT JOIN users e ON t.entered_by = e.id
		LEFT JOIN users o ON t.%s = o.id`,
		strings.Join(cols, ", "), schema.Table, schema.OwnerColumn)
}

// scanRecord reads one row produced by selectRecordSQL
func scanRecord(schema *models.Schema, row interface{ Scan(dest ...any) error }) (*models.Record, error) {
	record := &models.Record{Schema: schema, Fields: make(models.Snapshot, len(schema.Fields))}

	texts := make([]string, len(schema.Fields))
	decimals := make([]decimal.Decimal, len(schema.Fields))
	ints := make([]int64, len(schema.Fields))

	dest := []any{&record.ID}
	for i, f := range schema.Fields {
		switch f.Type {
		case models.FieldDecimal:
			dest = append(dest, &decimals[i])
		case models.FieldInt:
			dest = append(dest, &ints[i])
		default:
			dest = append(dest, &texts[i])
		}
	}
	dest = append(dest,
		&record.EnteredBy,
		&record.OwnerID,
		&record.CreatedAt,
		&record.EnteredByName,
		&record.OwnerName,
	)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	for i, f := range schema.Fields {
		switch f.Type {
		case models.FieldDecimal:
			record.Fields[f.Name] = decimals[i]
		case models.FieldInt:
			record.Fields[f.Name] = ints[i]
		default:
			record.Fields[f.Name] = texts[i]
		}
	}
	return record, nil
}

// GetByID retrieves a record by ID
func (r *recordRepository) GetByID(ctx context.Context, schema *models.Schema, id int64) (*models.Record, error) {
	query := selectRecordSQL(schema) + ` WHERE t.id = ?`

	record, err := scanRecord(schema, r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s with ID %d: %w", schema.Singular, id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("get "+schema.Singular, err)
	}
	return record, nil
}

// GetAll retrieves every record of the kind, newest date first
func (r *recordRepository) GetAll(ctx context.Context, schema *models.Schema) ([]models.Record, error) {
	query := selectRecordSQL(schema) + ` ORDER BY t.date DESC, t.id DESC`
	return r.list(ctx, schema, query)
}

// GetByOwner retrieves the records owned by ownerID, newest date first
func (r *recordRepository) GetByOwner(ctx context.Context, schema *models.Schema, ownerID int64) ([]models.Record, error) {
	query := selectRecordSQL(schema) + fmt.Sprintf(` WHERE t.%s = ? ORDER BY t.date DESC, t.id DESC`, schema.OwnerColumn)
	return r.list(ctx, schema, query, ownerID)
}

func (r *recordRepository) list(ctx context.Context, schema *models.Schema, query string, args ...any) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("query "+schema.Table, err)
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		record, err := scanRecord(schema, rows)
		if err != nil {
			return nil, storageErr("scan "+schema.Singular, err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, storageErr("iterate "+schema.Table, err)
	}

	return records, nil
}

// ExistsByUniqueField reports whether a record already uses value for the kind's unique field
func (r *recordRepository) ExistsByUniqueField(ctx context.Context, schema *models.Schema, value string) (bool, error) {
	if schema.UniqueField == "" {
		return false, nil
	}

	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)`, schema.Table, schema.UniqueField)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		return false, storageErr("check "+schema.UniqueField, err)
	}
	return exists, nil
}

// Create inserts a new record. EnteredBy must be set; the owner of kinds whose owner
// is entered_by follows from it.
func (r *recordRepository) Create(ctx context.Context, schema *models.Schema, record *models.Record) error {
	cols := append(schema.Columns(), "entered_by", "created_at")
	args, err := fieldArgs(schema, record.Fields)
	if err != nil {
		return err
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = utcNow()
	}
	args = append(args, record.EnteredBy, record.CreatedAt)

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.Table, strings.Join(cols, ", "), placeholders(len(cols)))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s with this %s already exists: %w", schema.Singular, schema.UniqueField, apperrors.ErrConflict)
		}
		return storageErr("create "+schema.Singular, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("get inserted ID", err)
	}

	record.ID = id
	record.Schema = schema
	if schema.OwnerColumn == "entered_by" {
		record.OwnerID = record.EnteredBy
	} else if owner, ok := record.Fields[schema.OwnerColumn].(int64); ok {
		record.OwnerID = owner
	}
	return nil
}

// Update overwrites the business fields of a record and returns the affected row count
func (r *recordRepository) Update(ctx context.Context, schema *models.Schema, id int64, fields models.Snapshot) (int64, error) {
	args, err := fieldArgs(schema, fields)
	if err != nil {
		return 0, err
	}

	sets := make([]string, len(schema.Fields))
	for i, f := range schema.Fields {
		sets[i] = f.Name + " = ?"
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = ?`, schema.Table, strings.Join(sets, ", "))

	result, err := r.db.ExecContext(ctx, query, append(args, id)...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s with this %s already exists: %w", schema.Singular, schema.UniqueField, apperrors.ErrConflict)
		}
		return 0, storageErr("update "+schema.Singular, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, storageErr("get rows affected", err)
	}
	return rowsAffected, nil
}

// Delete deletes a record by ID and returns the affected row count
func (r *recordRepository) Delete(ctx context.Context, schema *models.Schema, id int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, schema.Table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, storageErr("delete "+schema.Singular, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, storageErr("get rows affected", err)
	}
	return rowsAffected, nil
}

// fieldArgs orders snapshot values by schema field and converts them to driver values
func fieldArgs(schema *models.Schema, fields models.Snapshot) ([]any, error) {
	args := make([]any, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		v, ok := fields[f.Name]
		if !ok {
			return nil, fmt.Errorf("%s is missing field %q: %w", schema.Singular, f.Name, apperrors.ErrValidation)
		}
		if d, ok := v.(decimal.Decimal); ok {
			v = d.String()
		}
		args = append(args, v)
	}
	return args, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
