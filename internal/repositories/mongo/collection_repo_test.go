package mongo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/repositories/storetest"
)

func TestStoreContract_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcmongo.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	n := 0
	storetest.Run(t, func(t *testing.T, opts ...repositories.Option) repositories.Stores {
		n++
		db := client.Database(fmt.Sprintf("portfolio_test_%d", n))
		t.Cleanup(func() { _ = db.Drop(context.Background()) })
		return NewStores(db, opts...)
	})
}
