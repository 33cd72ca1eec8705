package repository

import (
	"context"
	"schedule-checker-backend/cmd/schedule-checker/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeFormatRepo struct {
	db *gorm.DB
}

func NewTimeFormatRepo(db *gorm.DB) *TimeFormatRepo {
	return &TimeFormatRepo{
		db: db,
	}
}

func (r *TimeFormatRepo) ListTimeFormats(ctx context.Context) ([]model.TimeFormat, error) {

	var formats []model.TimeFormat

	result := r.db.
		WithContext(ctx).
		Model(&model.TimeFormat{}).
		Order("create_date").
		Find(&formats)

	if result.Error != nil {
		return nil, result.Error
	}

	return formats, nil
}

func (r *TimeFormatRepo) GetTimeFormat(ctx context.Context, id string) (*model.TimeFormat, error) {

	var format model.TimeFormat

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&format)

	if result.Error != nil {
		return nil, result.Error
	}

	return &format, nil
}

func (r *TimeFormatRepo) CreateTimeFormat(ctx context.Context, format model.TimeFormat) error {

	result := r.db.
		WithContext(ctx).
		Create(&format)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *TimeFormatRepo) DeleteTimeFormat(ctx context.Context, id string) error {

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TimeFormat{})

	if result.Error != nil {
		return result.Error
	}

	return nil
}

// SeedSystemFormats inserts the built-in rules, leaving already-present
// rows untouched so operator edits survive restarts.
func (r *TimeFormatRepo) SeedSystemFormats(ctx context.Context, formats []model.TimeFormat) error {

	if len(formats) == 0 {
		return nil
	}

	result := r.db.
		WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&formats)

	if result.Error != nil {
		return result.Error
	}

	return nil
}
