package history

import (
	"context"
	"testing"
	"time"

	"cs2-localizer/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupSQLite(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func TestRepository_Disabled(t *testing.T) {
	repo := NewRepository(nil)
	assert.False(t, repo.Enabled())
	assert.NoError(t, repo.Migrate())
	assert.NoError(t, repo.Record(context.Background(), &Run{Category: "agents"}))

	_, err := repo.Recent(context.Background(), "", 5)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestRepository_Record(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `translation_runs`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	run := &Run{RunID: "r1", Category: "stickers", Total: 3, Translated: 2, Success: true}
	require.NoError(t, repo.Record(context.Background(), run))
	assert.Equal(t, uint(1), run.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecordError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `translation_runs`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Record(context.Background(), &Run{Category: "stickers"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRepository_RecentFiltersCategory(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "run_id", "category", "total", "translated", "success"}).
		AddRow(2, "r2", "skins", 10, 8, true)
	mock.ExpectQuery("SELECT \\* FROM `translation_runs` WHERE category = \\? ORDER BY id DESC LIMIT \\?").
		WithArgs("skins", 5).
		WillReturnRows(rows)

	runs, err := repo.Recent(context.Background(), "skins", 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "skins", runs[0].Category)
	assert.Equal(t, 8, runs[0].Translated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SQLite(t *testing.T) {
	repo := setupSQLite(t)
	ctx := context.Background()

	for i, category := range []string{"agents", "skins", "stickers"} {
		require.NoError(t, repo.Record(ctx, &Run{
			RunID:      "run",
			Category:   category,
			Total:      10,
			Translated: i,
			Success:    true,
			DurationMS: 5,
			CreatedAt:  time.Now(),
		}))
	}

	runs, err := repo.Recent(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "stickers", runs[0].Category)
	assert.Equal(t, "skins", runs[1].Category)

	missing, err := repo.MissingColumns()
	require.NoError(t, err)
	assert.Empty(t, missing)
}
