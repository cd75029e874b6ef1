package services

import (
	"fmt"
	"testing"

	localCache "github.com/driftline-social/driftline/pkg/internal/cache"
	"github.com/driftline-social/driftline/pkg/internal/database"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDatabase points database.C at a fresh in-memory sqlite database
// and resets the local cache store so nothing leaks between tests.
func openTestDatabase(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))
	database.C = db

	require.NoError(t, localCache.NewStore())
}

func mustAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account, err := RegisterAccount(name, name, "secret")
	require.NoError(t, err)
	return account
}

func mustPost(t *testing.T, author models.Account, title, body string) models.Post {
	t.Helper()

	item, err := NewPost(author, title, body, nil, nil)
	require.NoError(t, err)
	return item
}
