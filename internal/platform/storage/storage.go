// Package storage は設定に応じて社員コレクションの保存先を組み立てます。
package storage

import (
	"context"
	"fmt"
	"os"

	filerepo "github.com/ogurasousui/hr-smart-records/internal/adapters/repository/file"
	pgrepo "github.com/ogurasousui/hr-smart-records/internal/adapters/repository/postgres"
	redisrepo "github.com/ogurasousui/hr-smart-records/internal/adapters/repository/redis"
	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	"github.com/ogurasousui/hr-smart-records/internal/platform/config"
	pg "github.com/ogurasousui/hr-smart-records/internal/platform/db/postgres"
	"github.com/sirupsen/logrus"
)

// Backend は開いた保存先と、それに付随するトランザクション制御です。
type Backend struct {
	Driver string
	Blob   records.Blob
	// Tx は postgres の場合のみ設定されます。
	Tx    records.TransactionManager
	close func()
}

// Close は保存先の接続を閉じます。
func (b *Backend) Close() {
	if b != nil && b.close != nil {
		b.close()
	}
}

// Store は Backend 上の LocalStore を返します。
func (b *Backend) Store(cfg config.StorageConfig, logger logrus.FieldLogger) *records.LocalStore {
	return records.NewLocalStore(b.Blob, cfg.Key, logger)
}

// ServiceOptions は Service に渡すオプションを返します。
func (b *Backend) ServiceOptions(logger logrus.FieldLogger) []records.Option {
	opts := []records.Option{records.WithLogger(logger)}
	if b.Tx != nil {
		opts = append(opts, records.WithTransactionManager(b.Tx))
	}
	return opts
}

// Open は cfg.Storage.Driver に従って保存先を開きます。
func Open(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*Backend, error) {
	log := logger.WithField("driver", cfg.Storage.Driver)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := pg.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		log.Info("using postgres storage")
		return &Backend{
			Driver: cfg.Storage.Driver,
			Blob:   pgrepo.NewBlobRepository(pool),
			Tx:     pg.NewTransactionManager(pool, pg.WithTxLogger(logger)),
			close:  pool.Close,
		}, nil

	case config.DriverRedis:
		client, err := redisrepo.NewClient(ctx, redisrepo.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("storage: connect redis: %w", err)
		}
		log.WithField("addr", cfg.Redis.Addr).Info("using redis storage")
		return &Backend{
			Driver: cfg.Storage.Driver,
			Blob:   redisrepo.NewBlobRepository(client, cfg.Redis.Prefix),
			close: func() {
				if err := client.Close(); err != nil {
					logger.WithError(err).Warn("failed to close redis client")
				}
			},
		}, nil

	case config.DriverFile:
		if err := os.MkdirAll(cfg.Storage.FileDir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create %s: %w", cfg.Storage.FileDir, err)
		}
		log.WithField("dir", cfg.Storage.FileDir).Info("using file storage")
		return &Backend{
			Driver: cfg.Storage.Driver,
			Blob:   filerepo.NewBlobRepository(cfg.Storage.FileDir),
		}, nil

	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.Storage.Driver)
	}
}
