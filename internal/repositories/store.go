package repositories

import (
	"context"
	"fmt"

	"userdesk/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store bundles the repositories of one backend with the lifecycle of the
// connection behind them.
type Store struct {
	Driver string
	Users  UserRepository
	Admins AdminRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects the backend selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store, err := NewMongoStore(ctx, client, cfg.MongoDatabase)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info("MongoDB connected", zap.String("database", cfg.MongoDatabase))
		return store, nil
	case config.DriverPostgres, config.DriverSQLite:
		db, err := OpenGORM(cfg.StoreDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		log.Info("database connected", zap.String("driver", cfg.StoreDriver))
		return NewGORMStore(cfg.StoreDriver, db), nil
	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on exit")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewMongoStore builds a Store over the named database and ensures its indexes.
func NewMongoStore(ctx context.Context, client *mongo.Client, database string) (*Store, error) {
	db := client.Database(database)
	if err := EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return &Store{
		Driver: config.DriverMongo,
		Users:  NewMongoUserRepository(db),
		Admins: NewMongoAdminRepository(db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		close: client.Disconnect,
	}, nil
}

// NewGORMStore builds a Store over an opened GORM database.
func NewGORMStore(driver string, db *gorm.DB) *Store {
	return &Store{
		Driver: driver,
		Users:  NewGORMUserRepository(db),
		Admins: NewGORMAdminRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// NewMemoryStore builds a Store that keeps everything in process memory.
func NewMemoryStore() *Store {
	return &Store{
		Driver: config.DriverMemory,
		Users:  NewMemoryUserRepository(),
		Admins: NewMemoryAdminRepository(),
	}
}
