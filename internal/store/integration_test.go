package store

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexiusacademia/goaisc/internal/config"
	"github.com/alexiusacademia/goaisc/internal/shape"
)

const testSchema = "goaisc_test"

// getTestConfig returns nil unless TEST_PG_HOST names a database to use.
func getTestConfig(t *testing.T) *config.Database {
	t.Helper()
	host := os.Getenv("TEST_PG_HOST")
	if host == "" {
		return nil
	}

	cfg := config.DefaultConfig().Database
	cfg.Host = host
	cfg.User = getEnvOrDefault("TEST_PG_USER", "postgres")
	cfg.Password = getEnvOrDefault("TEST_PG_PASSWORD", "postgres")
	cfg.Name = getEnvOrDefault("TEST_PG_DATABASE", "postgres")
	cfg.SSLMode = "disable"
	if port, err := strconv.Atoi(os.Getenv("TEST_PG_PORT")); err == nil {
		cfg.Port = port
	}
	return &cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func TestRepositoryPostgres(t *testing.T) {
	cfg := getTestConfig(t)
	if cfg == nil {
		t.Skip("No test database configured - set TEST_PG_HOST, TEST_PG_USER, etc.")
	}

	ctx := context.Background()
	client, err := NewClient(ctx, *cfg, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.Ping(ctx))

	repo := client.Repository(testSchema)
	require.NoError(t, repo.EnsureSchema(ctx))
	defer func() {
		_, _ = client.DB().Exec(ctx, "DROP SCHEMA IF EXISTS "+testSchema+" CASCADE")
	}()

	for _, f := range shape.AllFamilies() {
		require.NoError(t, repo.Clear(ctx, f))
	}

	recs := []shape.Record{
		sampleRecord(t, shape.FamilyWideFlange, "W6X9"),
		sampleRecord(t, shape.FamilyWideFlange, "W8X10"),
	}
	n, err := repo.InsertAll(ctx, shape.FamilyWideFlange, recs)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.NoError(t, repo.Insert(ctx, sampleRecord(t, shape.FamilyAngle, "L4X4X1/2")))

	all, err := repo.All(ctx, shape.FamilyWideFlange)
	require.NoError(t, err)
	assert.Equal(t, recs, all)

	wf, err := Get[shape.WideFlange](ctx, repo, "W8X10")
	require.NoError(t, err)
	assert.Equal(t, "W8X10", wf.Nomenclature)

	byDepth, err := repo.ByProperty(ctx, shape.FamilyWideFlange, shape.DLower, wf.DLower)
	require.NoError(t, err)
	assert.Len(t, byDepth, 2)

	_, err = repo.ByLabel(ctx, shape.FamilyAngle, "L9X9X9")
	assert.ErrorIs(t, err, ErrNotFound)
}
