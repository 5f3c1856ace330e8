package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestEventDAO_CountByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewEventDAO(db)

	mock.ExpectQuery(`SELECT status, count\(\*\) as count FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("UPCOMING", 3).
			AddRow("ACTIVE", 1))

	counts, err := d.CountByStatus(context.Background())
	require.NoError(t, err)

	assert.Len(t, counts, 2)
	assert.Equal(t, StatusCount{Status: "UPCOMING", Count: 3}, counts[0])
	assert.Equal(t, StatusCount{Status: "ACTIVE", Count: 1}, counts[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDAO_CountContactsByType(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewEventDAO(db)

	mock.ExpectQuery(`SELECT type, count\(\*\) as count FROM "contacts"`).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"type", "count"}).
			AddRow("INVITE", 5).
			AddRow("PARTNER", 2))

	counts, err := d.CountContactsByType(context.Background(), 7)
	require.NoError(t, err)

	assert.Len(t, counts, 2)
	assert.Equal(t, int64(5), counts[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCRUD_Count_WithSearch(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewEventDAO(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "events" WHERE .*title ILIKE \$1 OR description ILIKE \$2 OR location ILIKE \$3`).
		WithArgs("%summit%", "%summit%", "%summit%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	total, err := d.Count(context.Background(), ListOptions{Search: "summit"})
	require.NoError(t, err)

	assert.Equal(t, int64(4), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCRUD_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewEventDAO(db)

	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := d.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCRUD_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewEventDAO(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := d.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCRUD_FindAll_SortWhitelist(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewEventDAO(db)

	// An unknown sort column falls back to id ordering.
	mock.ExpectQuery(`SELECT \* FROM "events" ORDER BY id asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Tech Summit"))

	events, err := d.FindAll(context.Background(), ListOptions{SortBy: "password; DROP TABLE events"})
	require.NoError(t, err)

	assert.Len(t, events, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDAO_CountByStatus_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	db, mock := newMockDB(t)
	d := NewEventDAO(db)

	mock.ExpectQuery(`SELECT status, count\(\*\) as count FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}))

	_, err := d.CountByStatus(context.Background())
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "EventDAO.CountByStatus", spans[0].Name())
}
