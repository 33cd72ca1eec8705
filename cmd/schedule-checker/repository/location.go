package repository

import (
	"context"
	"errors"
	"schedule-checker-backend/cmd/schedule-checker/model"

	"gorm.io/gorm"
)

type LocationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) *LocationRepo {
	return &LocationRepo{
		db: db,
	}
}

func (r *LocationRepo) ListLocations(ctx context.Context) ([]model.Location, error) {

	var locations []model.Location

	result := r.db.
		WithContext(ctx).
		Model(&model.Location{}).
		Order("create_date").
		Find(&locations)

	if result.Error != nil {
		return nil, result.Error
	}

	return locations, nil
}

// FindLocationByName returns nil without error when no entry matches.
func (r *LocationRepo) FindLocationByName(ctx context.Context, name string) (*model.Location, error) {

	var location model.Location

	result := r.db.
		WithContext(ctx).
		Where("name = ?", name).
		First(&location)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &location, nil
}

func (r *LocationRepo) CreateLocation(ctx context.Context, location model.Location) error {

	result := r.db.
		WithContext(ctx).
		Create(&location)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *LocationRepo) DeleteLocation(ctx context.Context, id string) error {

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Location{})

	if result.Error != nil {
		return result.Error
	}

	return nil
}
