package storage

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sarveshramani/portfolio/config"
	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/repositories/memory"
	mongorepo "github.com/sarveshramani/portfolio/internal/repositories/mongo"
	pgrepo "github.com/sarveshramani/portfolio/internal/repositories/postgres"
)

// Backend is an opened store driver. Close releases the underlying client.
type Backend struct {
	Driver string
	Stores repositories.Stores
	Close  func(ctx context.Context) error
}

// Open connects the configured driver, prepares its indexes or tables and
// returns one store per collection.
func Open(ctx context.Context, cfg *config.Config, log logrus.FieldLogger, opts ...repositories.Option) (*Backend, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := config.NewMongo(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		db := client.Database(cfg.DBName)
		if err := config.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("ensure mongo indexes: %w", err)
		}
		log.WithField("db", cfg.DBName).Info("connected to mongo")

		return &Backend{
			Driver: cfg.StoreDriver,
			Stores: mongorepo.NewStores(db, opts...),
			Close:  client.Disconnect,
		}, nil

	case config.DriverPostgres:
		db, err := config.NewPostgres(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := pgrepo.MigrateAll(db.WithContext(ctx)); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		log.Info("connected to postgres")

		return &Backend{
			Driver: cfg.StoreDriver,
			Stores: pgrepo.NewStores(db, opts...),
			Close:  func(context.Context) error { return sqlDB.Close() },
		}, nil

	case config.DriverMemory:
		log.Warn("using in-memory store; data is lost on exit")
		return &Backend{
			Driver: cfg.StoreDriver,
			Stores: memory.NewStores(opts...),
			Close:  func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
