package repository

import (
	"context"
	"schedule-checker-backend/cmd/schedule-checker/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestTimeFormatRepo_ListTimeFormats_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewTimeFormatRepo(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "pattern", "is_system", "create_date", "update_date"}).
		AddRow("sys-md", "X月X日", `\d{1,2}月\d{1,2}日`, true, now, now).
		AddRow("fmt-1", "自定义", `^\d{1,2}週$`, false, now, now)

	mock.ExpectQuery(`SELECT \* FROM "time_formats"`).
		WillReturnRows(rows)

	ctx := context.Background()
	formats, err := repo.ListTimeFormats(ctx)

	assert.NoError(t, err)
	assert.Len(t, formats, 2)
	assert.True(t, formats[0].IsSystem)
	assert.False(t, formats[1].IsSystem)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeFormatRepo_GetTimeFormat_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewTimeFormatRepo(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "pattern", "is_system", "create_date", "update_date"}).
		AddRow("sys-md", "X月X日", `\d{1,2}月\d{1,2}日`, true, now, now)

	mock.ExpectQuery(`SELECT \* FROM "time_formats" WHERE id = \$1`).
		WithArgs("sys-md", 1).
		WillReturnRows(rows)

	ctx := context.Background()
	format, err := repo.GetTimeFormat(ctx, "sys-md")

	assert.NoError(t, err)
	assert.Equal(t, "sys-md", format.ID)
	assert.True(t, format.IsSystem)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeFormatRepo_CreateTimeFormat_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewTimeFormatRepo(gormDB)

	format := model.TimeFormat{
		ID:         "fmt-1",
		Name:       "X.X",
		Pattern:    `\d{1,2}\.\d{1,2}`,
		CreateDate: time.Now(),
		UpdateDate: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "time_formats"`).
		WithArgs(format.ID, format.Name, format.Pattern, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.CreateTimeFormat(ctx, format)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeFormatRepo_DeleteTimeFormat_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewTimeFormatRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "time_formats" WHERE id = \$1`).
		WithArgs("fmt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.DeleteTimeFormat(ctx, "fmt-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeFormatRepo_SeedSystemFormats_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewTimeFormatRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "time_formats" .* ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.SeedSystemFormats(ctx, model.SystemTimeFormats())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeFormatRepo_SeedSystemFormats_EmptyListIsNoop(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewTimeFormatRepo(gormDB)

	ctx := context.Background()
	err := repo.SeedSystemFormats(ctx, nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
