package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/repositories/storetest"
)

func TestColumn(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: models.FieldID, want: "id"},
		{key: models.FieldCreatedAt, want: "created_at"},
		{key: models.FieldUpdatedAt, want: "updated_at"},
		{key: "category", want: "data->>'category'"},
		{key: "year", want: "data->>'year'"},
		{key: "x'; DROP TABLE skills; --", wantErr: true},
		{key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := column(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderBy(t *testing.T) {
	got, err := orderBy(repositories.SortBy("category", repositories.Ascending))
	require.NoError(t, err)
	assert.Equal(t, `(data->>'category') COLLATE "C" ASC, id ASC`, got)

	got, err = orderBy(repositories.SortBy(models.FieldCreatedAt, repositories.Descending))
	require.NoError(t, err)
	assert.Equal(t, "created_at DESC, id ASC", got)

	got, err = orderBy(repositories.SortBy(models.FieldID, repositories.Descending))
	require.NoError(t, err)
	assert.Equal(t, "id DESC", got)
}

func TestStoreContract_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("portfolio"),
		tcpostgres.WithUsername("portfolio"),
		tcpostgres.WithPassword("portfolio"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, MigrateAll(db))
	// migrating twice must be harmless
	require.NoError(t, MigrateAll(db))

	storetest.Run(t, func(t *testing.T, opts ...repositories.Option) repositories.Stores {
		for _, table := range tables {
			require.NoError(t, db.Exec("TRUNCATE TABLE "+table).Error)
		}
		return NewStores(db, opts...)
	})
}
