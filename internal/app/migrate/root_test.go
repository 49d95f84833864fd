package migrate

import (
	"bytes"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	productsmemory "github.com/selfservice/fastfood-api/internal/domains/products/adapters/memory"
)

func sqliteConnect(t *testing.T) connectFunc {
	t.Helper()
	return func(context.Context, string) (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = sqlDB.Close() })
		return db, nil
	}
}

func run(t *testing.T, connect connectFunc, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(connect)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUp_RequiresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	_, err := run(t, sqliteConnect(t), "up")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no DSN given")
}

func TestUp_AppliesSchema(t *testing.T) {
	out, err := run(t, sqliteConnect(t), "up", "--dsn", "sqlite")

	require.NoError(t, err)
	assert.Contains(t, out, "schema up to date")
}

func TestSeed_LoadsDemoMenu(t *testing.T) {
	out, err := run(t, sqliteConnect(t), "seed", "--dsn", "sqlite")

	require.NoError(t, err)
	assert.Contains(t, out, "seeded 5 products")
}

func TestSeedProducts_SkipsExisting(t *testing.T) {
	repo := productsmemory.NewRepository()
	var out bytes.Buffer

	first, err := seedProducts(context.Background(), repo, &out)
	require.NoError(t, err)
	second, err := seedProducts(context.Background(), repo, &out)
	require.NoError(t, err)

	assert.Equal(t, len(demoMenu), first)
	assert.Zero(t, second)
	assert.Contains(t, out.String(), "skip demo-fries: already present")

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, len(demoMenu))
}

func TestVersion(t *testing.T) {
	out, err := run(t, sqliteConnect(t), "version")

	require.NoError(t, err)
	assert.Equal(t, "migrate dev\n", out)
}
