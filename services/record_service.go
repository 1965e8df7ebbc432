package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/repositories"
	"github.com/blogem/finportal/userctx"
)

// RecordService interface defines the business rules shared by every record kind
type RecordService interface {
	Create(ctx context.Context, schema *models.Schema, caller userctx.Identity, form models.RecordForm) (*models.Record, error)
	List(ctx context.Context, schema *models.Schema, caller userctx.Identity) ([]models.Record, error)
	Get(ctx context.Context, schema *models.Schema, caller userctx.Identity, id int64) (*models.Record, error)
	Update(ctx context.Context, schema *models.Schema, caller userctx.Identity, id int64, form models.RecordForm) (*models.Record, error)
	Delete(ctx context.Context, schema *models.Schema, caller userctx.Identity, id int64) error
}

// recordService implements RecordService interface
type recordService struct {
	recordRepo  repositories.RecordRepository
	userRepo    repositories.UserRepository
	interceptor ChangeInterceptor
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewRecordService creates a new record service
func NewRecordService(
	recordRepo repositories.RecordRepository,
	userRepo repositories.UserRepository,
	interceptor ChangeInterceptor,
	logger *zap.Logger,
) RecordService {
	return &recordService{
		recordRepo:  recordRepo,
		userRepo:    userRepo,
		interceptor: interceptor,
		validate:    models.NewValidator(),
		logger:      logger.Named("records"),
	}
}

// Create validates the form and stores a new record entered by the caller.
// Employees may only create advances for themselves.
func (s *recordService) Create(ctx context.Context, schema *models.Schema, caller userctx.Identity, form models.RecordForm) (*models.Record, error) {
	if errs := form.Validate(s.validate); errs.HasErrors() {
		return nil, errs
	}

	fields := form.Snapshot()
	if err := s.checkOwnerReference(ctx, schema, caller, fields); err != nil {
		return nil, err
	}

	if schema.UniqueField != "" {
		value, _ := fields[schema.UniqueField].(string)
		exists, err := s.recordRepo.ExistsByUniqueField(ctx, schema, value)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", schema.UniqueField, err)
		}
		if exists {
			return nil, fmt.Errorf("%s with this %s already exists: %w", schema.Singular, schema.UniqueField, apperrors.ErrConflict)
		}
	}

	record := &models.Record{EnteredBy: caller.UserID, Fields: fields}
	if err := s.recordRepo.Create(ctx, schema, record); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", schema.Singular, err)
	}

	created, err := s.recordRepo.GetByID(ctx, schema, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload %s: %w", schema.Singular, err)
	}

	s.logger.Info("Record created",
		zap.String("table", schema.Table),
		zap.Int64("record_id", created.ID),
		zap.Int64("entered_by", caller.UserID),
	)
	return created, nil
}

// List returns every record for admins and only the caller's own records for employees
func (s *recordService) List(ctx context.Context, schema *models.Schema, caller userctx.Identity) ([]models.Record, error) {
	if caller.IsAdmin() {
		return s.recordRepo.GetAll(ctx, schema)
	}
	return s.recordRepo.GetByOwner(ctx, schema, caller.UserID)
}

// Get returns one record; employees can only see records they own
func (s *recordService) Get(ctx context.Context, schema *models.Schema, caller userctx.Identity, id int64) (*models.Record, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid %s ID: %d: %w", schema.Singular, id, apperrors.ErrValidation)
	}

	record, err := s.recordRepo.GetByID(ctx, schema, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && !record.IsOwnedBy(caller.UserID) {
		return nil, fmt.Errorf("%s %d: %w", schema.Singular, id, apperrors.ErrForbidden)
	}
	return record, nil
}

// Update replaces the business fields of a record through the change interceptor. Admin only.
func (s *recordService) Update(ctx context.Context, schema *models.Schema, caller userctx.Identity, id int64, form models.RecordForm) (*models.Record, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("only admins can update %s: %w", schema.Table, apperrors.ErrForbidden)
	}
	if errs := form.Validate(s.validate); errs.HasErrors() {
		return nil, errs
	}

	fields := form.Snapshot()
	if err := s.checkOwnerReference(ctx, schema, caller, fields); err != nil {
		return nil, err
	}

	ok, err := s.interceptor.Mutate(ctx, Mutation{
		Schema:   schema,
		RecordID: id,
		Action:   models.ActionUpdate,
		Fields:   fields,
		ActorID:  caller.UserID,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("failed to update %s %d: %w", schema.Singular, id, apperrors.ErrZeroAffected)
	}

	return s.recordRepo.GetByID(ctx, schema, id)
}

// Delete removes a record through the change interceptor. Admin only.
func (s *recordService) Delete(ctx context.Context, schema *models.Schema, caller userctx.Identity, id int64) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("only admins can delete %s: %w", schema.Table, apperrors.ErrForbidden)
	}

	ok, err := s.interceptor.Mutate(ctx, Mutation{
		Schema:   schema,
		RecordID: id,
		Action:   models.ActionDelete,
		ActorID:  caller.UserID,
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("failed to delete %s %d: %w", schema.Singular, id, apperrors.ErrZeroAffected)
	}
	return nil
}

// checkOwnerReference applies the rules for kinds owned by a referenced user rather
// than by whoever entered the row
func (s *recordService) checkOwnerReference(ctx context.Context, schema *models.Schema, caller userctx.Identity, fields models.Snapshot) error {
	if schema.OwnerColumn == "entered_by" {
		return nil
	}

	ownerID, _ := fields[schema.OwnerColumn].(int64)
	if !caller.IsAdmin() && ownerID != caller.UserID {
		return fmt.Errorf("employees can only create %s for themselves: %w", schema.Table, apperrors.ErrForbidden)
	}

	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		var errs models.ValidationErrors
		errs.Add(schema.OwnerColumn, fmt.Sprintf("%s does not refer to an existing user", schema.OwnerColumn))
		if isNotFound(err) {
			return errs
		}
		return fmt.Errorf("failed to look up %s: %w", schema.OwnerColumn, err)
	}
	return nil
}
