package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Leestalion/quittance/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "logs.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestDBHandler_PersistsErrorsOnly(t *testing.T) {
	db := testDB(t)
	h := NewDBHandler(db, time.Hour)
	log := slog.New(h).With("request_id", "req-1")

	log.Info("ignored")
	log.Error("lease lookup failed", "user_id", "u1", "path", "/api/leases", "error", "boom", "lease_id", "l1")
	h.Stop()

	var rows []models.SystemLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "lease lookup failed", rows[0].Message)
	assert.Equal(t, "req-1", rows[0].RequestID)
	assert.Equal(t, "/api/leases", rows[0].Path)
	assert.Equal(t, "boom", rows[0].Error)
	require.NotNil(t, rows[0].UserID)
	assert.Equal(t, "u1", *rows[0].UserID)
	assert.JSONEq(t, `{"lease_id":"l1"}`, string(rows[0].Extra))
}

func TestMultiHandler_FansOut(t *testing.T) {
	var info, errs bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Info("started")
	log.Error("crashed")

	assert.Contains(t, info.String(), "started")
	assert.Contains(t, info.String(), "crashed")
	assert.NotContains(t, errs.String(), "started")
	assert.Contains(t, errs.String(), "crashed")
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler_KeepsGoingPastAFailingSink(t *testing.T) {
	var out bytes.Buffer
	text := slog.NewTextHandler(&out, nil)
	h := NewMultiHandler(failingHandler{text}, text)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "boom", 0))
	assert.EqualError(t, err, "sink down")
	assert.Contains(t, out.String(), "boom")
}

func TestSweep_DropsOldRecords(t *testing.T) {
	db := testDB(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := models.SystemLog{ID: uuid.New(), Timestamp: now.Add(-40 * 24 * time.Hour), Level: "ERROR"}
	recent := models.SystemLog{ID: uuid.New(), Timestamp: now.Add(-time.Hour), Level: "ERROR"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	deleted := Sweep(db, 30*24*time.Hour, now)

	assert.EqualValues(t, 1, deleted)
	var count int64
	db.Model(&models.SystemLog{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSetupCLI_WritesToGivenWriter(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var buf bytes.Buffer

	SetupCLI(&buf, slog.LevelWarn)
	slog.Info("hidden")
	slog.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
