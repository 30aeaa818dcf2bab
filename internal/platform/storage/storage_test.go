package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	"github.com/ogurasousui/hr-smart-records/internal/platform/config"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_File(t *testing.T) {
	t.Parallel()

	logger, _ := logtest.NewNullLogger()
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverFile, FileDir: dir}}

	backend, err := Open(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer backend.Close()

	assert.Nil(t, backend.Tx)
	assert.Len(t, backend.ServiceOptions(logger), 1)

	ctx := context.Background()
	svc := records.NewService(ctx, backend.Store(cfg.Storage, logger), nil, backend.ServiceOptions(logger)...)
	_, err = svc.AddEmployee(ctx, records.EmployeeDraft{FirstName: "Jane", LastName: "Smith", Position: "Analyst"})
	require.NoError(t, err)

	reopened := records.NewService(ctx, backend.Store(cfg.Storage, logger), nil)
	assert.Len(t, reopened.Employees(ctx), 4)
}

func TestOpen_Redis(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	logger, _ := logtest.NewNullLogger()
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverRedis},
		Redis:   config.RedisConfig{Addr: mr.Addr(), Prefix: "hr"},
	}

	backend, err := Open(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	store := backend.Store(cfg.Storage, logger)
	require.NoError(t, store.Save(ctx, records.SeedCollection()))
	assert.True(t, mr.Exists("hr:"+records.StorageKey))
}

func TestOpen_RedisUnreachable(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	logger, _ := logtest.NewNullLogger()
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverRedis},
		Redis:   config.RedisConfig{Addr: addr},
	}

	_, err := Open(context.Background(), cfg, logger)
	assert.Error(t, err)
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	logger, _ := logtest.NewNullLogger()
	_, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}, logger)
	assert.Error(t, err)
}
