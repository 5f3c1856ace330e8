package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// startPostgres spins up a throwaway postgres container. Tests are skipped
// when no docker daemon is reachable.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("skipping, dockertest pool unavailable: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("skipping, docker daemon unreachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=eventdesk",
			"POSTGRES_PASSWORD=eventdesk",
			"POSTGRES_DB=eventdesk_test",
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })
	_ = resource.Expire(180)

	dsn := fmt.Sprintf(
		"host=localhost port=%v user=eventdesk password=eventdesk dbname=eventdesk_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	var db *gorm.DB
	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if openErr != nil {
			return openErr
		}
		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}
		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	return db
}

func TestEventDAO_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := startPostgres(t)
	ctx := context.Background()

	eventDAO := NewEventDAO(db)
	contactDAO := NewContactDAO(db)

	event, err := eventDAO.Insert(ctx, Event{
		Title:       "Tech Summit",
		Description: "A gathering of engineers and founders.",
		Location:    "Berlin",
		StartDate:   time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 9, 3, 18, 0, 0, 0, time.UTC),
		Status:      "UPCOMING",
		Organizers:  []string{"ACME Conferences"},
		Themes:      []string{"ai", "infrastructure"},
	})
	require.NoError(t, err)
	require.NotZero(t, event.ID)

	t.Run("create then find round trip", func(t *testing.T) {
		found, err := eventDAO.FindByID(ctx, event.ID)
		require.NoError(t, err)

		assert.Equal(t, "Tech Summit", found.Title)
		assert.Equal(t, []string{"ai", "infrastructure"}, found.Themes)
	})

	t.Run("contact insert resolves country once", func(t *testing.T) {
		first, err := contactDAO.InsertWithCountry(ctx, Contact{
			EventID: event.ID,
			Type:    "INVITE",
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Status:  "PENDING",
		}, "France", "FR")
		require.NoError(t, err)
		require.NotNil(t, first.CountryID)

		second, err := contactDAO.InsertWithCountry(ctx, Contact{
			EventID: event.ID,
			Type:    "CLIENT",
			Name:    "Blaise Pascal",
			Status:  "PENDING",
		}, "France", "FR")
		require.NoError(t, err)

		assert.Equal(t, *first.CountryID, *second.CountryID, "same country row reused")
	})

	t.Run("count contacts by type", func(t *testing.T) {
		counts, err := eventDAO.CountContactsByType(ctx, event.ID)
		require.NoError(t, err)

		byType := make(map[string]int64, len(counts))
		for _, row := range counts {
			byType[row.Type] = row.Count
		}
		assert.Equal(t, int64(1), byType["INVITE"])
		assert.Equal(t, int64(1), byType["CLIENT"])
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		events, err := eventDAO.FindAll(ctx, ListOptions{Search: "tech summit"})
		require.NoError(t, err)
		assert.Len(t, events, 1)

		total, err := eventDAO.Count(ctx, ListOptions{Search: "TECH"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("delete missing row reports not found", func(t *testing.T) {
		err := eventDAO.Delete(ctx, 9999)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}
