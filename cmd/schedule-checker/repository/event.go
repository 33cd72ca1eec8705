package repository

import (
	"context"
	"schedule-checker-backend/cmd/schedule-checker/model"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{
		db: db,
	}
}

func (r *EventRepo) ListEvents(ctx context.Context) ([]model.ScheduleEvent, error) {

	var events []model.ScheduleEvent

	result := r.db.
		WithContext(ctx).
		Model(&model.ScheduleEvent{}).
		Order("position").
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (r *EventRepo) GetEvent(ctx context.Context, id string) (*model.ScheduleEvent, error) {

	var event model.ScheduleEvent

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&event)

	if result.Error != nil {
		return nil, result.Error
	}

	return &event, nil
}

// ReplaceEvents swaps the whole stored list for a freshly imported one.
func (r *EventRepo) ReplaceEvents(ctx context.Context, events []model.ScheduleEvent) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		result := tx.Where("1 = 1").Delete(&model.ScheduleEvent{})
		if result.Error != nil {
			return result.Error
		}

		if len(events) == 0 {
			return nil
		}

		result = tx.Create(&events)
		if result.Error != nil {
			return result.Error
		}

		return nil
	})
}

func (r *EventRepo) SaveEvent(ctx context.Context, event model.ScheduleEvent) error {

	result := r.db.
		WithContext(ctx).
		Save(&event)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *EventRepo) SaveEvents(ctx context.Context, events []model.ScheduleEvent) error {

	if len(events) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		for i := range events {
			result := tx.Save(&events[i])
			if result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}

func (r *EventRepo) DeleteEvent(ctx context.Context, id string) error {

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ScheduleEvent{})

	if result.Error != nil {
		return result.Error
	}

	return nil
}
