package postgres

import (
	"context"
	"strings"
	"testing"

	"pindrop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newOfflineDB opens a gorm handle on the postgres dialector without
// connecting. Statements are built and inspected through callbacks,
// never executed.
func newOfflineDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db
}

func TestPinRepository_FindPinsWithinBound_FiltersInactiveWindows(t *testing.T) {
	db := newOfflineDB(t)

	var capturedSQL string
	err := db.Callback().Query().After("gorm:query").Register("capture_sql", func(d *gorm.DB) {
		if strings.Contains(d.Statement.SQL.String(), "JOIN location_groups") {
			capturedSQL = d.Statement.SQL.String()
		}
	})
	require.NoError(t, err)

	repo := NewPinRepository(db.Session(&gorm.Session{DryRun: true}))

	bound := orb.Bound{Min: orb.Point{121.5, 25.0}, Max: orb.Point{121.6, 25.1}}
	_, err = repo.FindPinsWithinBound(context.Background(), bound, false)
	require.NoError(t, err)

	// Hidden pins are the exhausted ones plus those whose group has not
	// started yet, already ended, or was retired.
	assert.Contains(t, capturedSQL, "pins.collection_limit_remaining > ")
	assert.Contains(t, capturedSQL, "location_groups.start_date <= ")
	assert.Contains(t, capturedSQL, "location_groups.end_date > ")
	assert.Contains(t, capturedSQL, "location_groups.retired_at IS NULL")
}

func TestPinRepository_FindPinsWithinBound_ShowExpiredSkipsWindowFilters(t *testing.T) {
	db := newOfflineDB(t)

	var capturedSQL string
	err := db.Callback().Query().After("gorm:query").Register("capture_sql", func(d *gorm.DB) {
		if strings.Contains(d.Statement.SQL.String(), "JOIN location_groups") {
			capturedSQL = d.Statement.SQL.String()
		}
	})
	require.NoError(t, err)

	repo := NewPinRepository(db.Session(&gorm.Session{DryRun: true}))

	bound := orb.Bound{Min: orb.Point{121.5, 25.0}, Max: orb.Point{121.6, 25.1}}
	_, err = repo.FindPinsWithinBound(context.Background(), bound, true)
	require.NoError(t, err)

	assert.Contains(t, capturedSQL, "location_groups.approved = ")
	assert.NotContains(t, capturedSQL, "start_date")
	assert.NotContains(t, capturedSQL, "end_date")
}

func TestPinRepository_DecrementRemaining_CheckViolationMeansExhausted(t *testing.T) {
	db := newOfflineDB(t)

	err := db.Callback().Update().Before("gorm:update").Register("raise_check_violation", func(d *gorm.DB) {
		d.AddError(errors.New(`ERROR: new row for relation "pins" violates check constraint "chk_pins_collection_limit_remaining" (SQLSTATE 23514)`))
	})
	require.NoError(t, err)

	repo := NewPinRepository(db)

	err = repo.DecrementRemaining(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrCollectionLimitExhausted)
}
