package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ogurasousui/hr-smart-records/internal/core/records"
)

// BlobRepository は Redis の文字列キーを保存領域とする records.Blob の実装です。
type BlobRepository struct {
	client goredis.Cmdable
	prefix string
}

var _ records.Blob = (*BlobRepository)(nil)

// NewBlobRepository は BlobRepository を生成します。prefix は全キーの先頭に付与されます。
func NewBlobRepository(client goredis.Cmdable, prefix string) *BlobRepository {
	return &BlobRepository{client: client, prefix: prefix}
}

func (r *BlobRepository) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

// Get はキーに保存された値を返します。
func (r *BlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, records.ErrBlobNotFound
		}
		return nil, err
	}
	return value, nil
}

// Put はキーの値を有効期限なしで上書き保存します。
func (r *BlobRepository) Put(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

// Options は Redis 接続設定です。
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient は Redis クライアントを生成し疎通確認を行います。
func NewClient(ctx context.Context, opts Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
