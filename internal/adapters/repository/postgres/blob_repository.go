package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	pgdb "github.com/ogurasousui/hr-smart-records/internal/platform/db/postgres"
)

// BlobRepository は local_store テーブルをキーバリュー領域として扱う records.Blob の実装です。
type BlobRepository struct {
	pool pgdb.Queryer
	now  func() time.Time
}

var _ records.Blob = (*BlobRepository)(nil)

// NewBlobRepository は BlobRepository を生成します。
func NewBlobRepository(pool pgdb.Queryer) *BlobRepository {
	return &BlobRepository{pool: pool, now: func() time.Time { return time.Now().UTC() }}
}

// Get はキーに保存された値を返します。
func (r *BlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT value
          FROM local_store
         WHERE key = $1
         LIMIT 1
    `, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, records.ErrBlobNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

// Put はキーの値を上書き保存します。
func (r *BlobRepository) Put(ctx context.Context, key string, value []byte) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO local_store (key, value, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (key) DO UPDATE
           SET value = EXCLUDED.value,
               updated_at = EXCLUDED.updated_at
    `, key, string(value), r.now())
	return err
}
