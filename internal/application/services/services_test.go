package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inventory-service/internal/infrastructure/db/postgres"
)

// newTestDB opens an isolated in-memory sqlite database migrated with the
// same models the postgres store uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := postgres.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = postgres.Close(db)
	})

	return db
}
