package repository

import (
	"context"
	"errors"
	"schedule-checker-backend/cmd/schedule-checker/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock database: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		t.Fatalf("Failed to create GORM instance: %v", err)
	}

	return gormDB, mock
}

func TestEventRepo_ListEvents_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "position", "serial_no", "name", "time", "location", "is_time_valid", "is_location_valid", "validation_message", "create_date", "update_date"}).
		AddRow("ev-1", 0, "1", "篮球比赛", "5月1日", "文化宫篮球馆", true, true, "", now, now).
		AddRow("ev-2", 1, "2", "游泳比赛", "2月30日", "市体育中心", false, true, "2月没有30日", now, now)

	mock.ExpectQuery(`SELECT \* FROM "schedule_events"`).
		WillReturnRows(rows)

	ctx := context.Background()
	events, err := repo.ListEvents(ctx)

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "ev-1", events[0].ID)
	assert.Equal(t, "篮球比赛", events[0].Name)
	assert.True(t, events[0].IsTimeValid)
	assert.Equal(t, "ev-2", events[1].ID)
	assert.False(t, events[1].IsTimeValid)
	assert.Equal(t, "2月没有30日", events[1].ValidationMessage)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ListEvents_DatabaseError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "schedule_events"`).
		WillReturnError(errors.New("database connection failed"))

	ctx := context.Background()
	events, err := repo.ListEvents(ctx)

	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "database connection failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_GetEvent_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "position", "serial_no", "name", "time", "location", "is_time_valid", "is_location_valid", "validation_message", "create_date", "update_date"}).
		AddRow("ev-1", 0, "1", "篮球比赛", "5月1日", "文化宫篮球馆", true, true, "", now, now)

	mock.ExpectQuery(`SELECT \* FROM "schedule_events" WHERE id = \$1`).
		WithArgs("ev-1", 1).
		WillReturnRows(rows)

	ctx := context.Background()
	event, err := repo.GetEvent(ctx, "ev-1")

	assert.NoError(t, err)
	assert.Equal(t, "ev-1", event.ID)
	assert.Equal(t, "篮球比赛", event.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_GetEvent_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	rows := sqlmock.NewRows([]string{"id"})

	mock.ExpectQuery(`SELECT \* FROM "schedule_events" WHERE id = \$1`).
		WithArgs("missing", 1).
		WillReturnRows(rows)

	ctx := context.Background()
	event, err := repo.GetEvent(ctx, "missing")

	assert.Error(t, err)
	assert.Nil(t, event)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ReplaceEvents_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	events := []model.ScheduleEvent{
		{
			ID:         "ev-1",
			Position:   0,
			SerialNo:   "1",
			Name:       "篮球比赛",
			Time:       "5月1日",
			Location:   "文化宫篮球馆",
			CreateDate: time.Now(),
			UpdateDate: time.Now(),
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "schedule_events"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO "schedule_events"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.ReplaceEvents(ctx, events)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ReplaceEvents_EmptyListOnlyDeletes(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "schedule_events"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.ReplaceEvents(ctx, nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ReplaceEvents_InsertErrorRollsBack(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	events := []model.ScheduleEvent{
		{ID: "ev-1", Name: "篮球比赛", CreateDate: time.Now(), UpdateDate: time.Now()},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "schedule_events"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "schedule_events"`).
		WillReturnError(errors.New("database insert failed"))
	mock.ExpectRollback()

	ctx := context.Background()
	err := repo.ReplaceEvents(ctx, events)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database insert failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_SaveEvent_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	event := model.ScheduleEvent{
		ID:         "ev-1",
		SerialNo:   "1",
		Name:       "篮球比赛",
		Time:       "5月2日",
		Location:   "文化宫篮球馆",
		CreateDate: time.Now(),
		UpdateDate: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "schedule_events"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.SaveEvent(ctx, event)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_DeleteEvent_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "schedule_events" WHERE id = \$1`).
		WithArgs("ev-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.DeleteEvent(ctx, "ev-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
