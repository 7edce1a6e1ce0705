package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"usermgmt/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn() (string, int64) { return `SELECT 1`, 1 }

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("syntax error"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "syntax error")
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())
}
