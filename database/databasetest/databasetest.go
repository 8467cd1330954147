// Package databasetest opens throwaway in-memory stores for tests.
package databasetest

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"group-chat-app/config/logger"
	"group-chat-app/database"
	"testing"
)

// Open returns a migrated store private to the calling test. The pool is
// capped at one connection, so code inside a transaction must use the tx.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), logger.NewNopLogger())
	require.NoError(t, err)

	conn, err := db.DB()
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = conn.Close()
	})
	return db
}
