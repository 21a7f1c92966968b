package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/models"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (l nopLogger) With(args ...any) logger.Interface             { return l }
func (l nopLogger) Named(name string) logger.Interface            { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupGeneratorDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.QueryModel{}))
	return db
}

func insertQueryNumber(t *testing.T, db *gorm.DB, number string) {
	t.Helper()
	err := db.Create(&models.QueryModel{
		Number:     number,
		CustomerID: 1,
		QueryText:  "placeholder",
		Status:     "open",
	}).Error
	require.NoError(t, err)
}

func TestQueryNumberGenerator_Generate(t *testing.T) {
	today := time.Now().Format("20060102")
	ctx := context.Background()

	t.Run("starts the day at one", func(t *testing.T) {
		g := NewQueryNumberGenerator(setupGeneratorDB(t), nopLogger{})

		number, err := g.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("Q-%s-0001", today), number)
	})

	t.Run("consecutive calls increment from the cache", func(t *testing.T) {
		g := NewQueryNumberGenerator(setupGeneratorDB(t), nopLogger{})

		first, err := g.Generate(ctx)
		require.NoError(t, err)
		second, err := g.Generate(ctx)
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("Q-%s-0001", today), first)
		assert.Equal(t, fmt.Sprintf("Q-%s-0002", today), second)
	})

	t.Run("continues from the stored maximum", func(t *testing.T) {
		db := setupGeneratorDB(t)
		insertQueryNumber(t, db, fmt.Sprintf("Q-%s-0007", today))
		g := NewQueryNumberGenerator(db, nopLogger{})

		number, err := g.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("Q-%s-0008", today), number)
	})

	t.Run("malformed maximum falls back to the row count", func(t *testing.T) {
		db := setupGeneratorDB(t)
		insertQueryNumber(t, db, fmt.Sprintf("Q-%s-0001", today))
		insertQueryNumber(t, db, fmt.Sprintf("Q-%s-0002", today))
		// Letters sort after digits, so this row wins the MAX() scan.
		insertQueryNumber(t, db, fmt.Sprintf("Q-%s-corrupt", today))
		g := NewQueryNumberGenerator(db, nopLogger{})

		number, err := g.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("Q-%s-0004", today), number)
	})
}
