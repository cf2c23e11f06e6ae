package outcomerepo

import (
	"context"

	"shiftbooker/internal/core/domain/model/booking"

	"gorm.io/gorm"
)

// GormOutcomeRepository persists booking outcomes using GORM.
type GormOutcomeRepository struct {
	db *gorm.DB
}

// NewGormOutcomeRepository creates a new GORM outcome repository.
func NewGormOutcomeRepository(db *gorm.DB) *GormOutcomeRepository {
	return &GormOutcomeRepository{db: db}
}

// RecordSuccess saves a successful booking outcome.
func (r *GormOutcomeRepository) RecordSuccess(ctx context.Context, record booking.SuccessRecord) error {
	dto, err := fromSuccessRecord(record)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// RecordFailure saves a terminally failed booking outcome.
func (r *GormOutcomeRepository) RecordFailure(ctx context.Context, record booking.FailureRecord) error {
	dto, err := fromFailureRecord(record)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
