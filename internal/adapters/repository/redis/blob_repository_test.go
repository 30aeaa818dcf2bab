package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogurasousui/hr-smart-records/internal/core/records"
)

func newTestRepository(t *testing.T, prefix string) (*BlobRepository, *miniredis.Miniredis) {
	t.Helper()

	s := miniredis.RunT(t)
	client, err := NewClient(context.Background(), Options{Addr: s.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewBlobRepository(client, prefix), s
}

func TestBlobRepository_PutGet(t *testing.T) {
	t.Parallel()

	repo, s := newTestRepository(t, "hr")
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, records.StorageKey, []byte(`[{"id":"EMP-001"}]`)))

	got, err := repo.Get(ctx, records.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"EMP-001"}]`, string(got))

	stored, err := s.Get("hr:" + records.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"EMP-001"}]`, stored)
}

func TestBlobRepository_GetMissing(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t, "")

	_, err := repo.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, records.ErrBlobNotFound)
}

func TestBlobRepository_LocalStoreRoundTrip(t *testing.T) {
	t.Parallel()

	repo, s := newTestRepository(t, "")
	store := records.NewLocalStore(repo, "", nil)
	ctx := context.Background()

	require.NoError(t, s.Set(records.StorageKey, "{broken"))
	assert.Equal(t, records.SeedCollection(), store.Load(ctx))

	want := records.SeedCollection()[:1]
	require.NoError(t, store.Save(ctx, want))
	assert.Equal(t, want, store.Load(ctx))
}

func TestNewClient_Unreachable(t *testing.T) {
	t.Parallel()

	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	_, err := NewClient(context.Background(), Options{Addr: addr})
	assert.Error(t, err)
}
