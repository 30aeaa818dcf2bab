package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// StorageKey は社員コレクションを保存する固定キーです。
const StorageKey = "hr_smart_records_data"

// Blob はキー単位で値を丸ごと読み書きする保存領域の抽象です。
type Blob interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store はコレクション永続化の抽象です。
type Store interface {
	Load(ctx context.Context) Collection
	Save(ctx context.Context, c Collection) error
}

// LocalStore は Blob 上に社員コレクションを JSON として保存します。
type LocalStore struct {
	blob   Blob
	key    string
	seed   Collection
	logger logrus.FieldLogger
}

// NewLocalStore は LocalStore を生成します。key が空の場合は StorageKey を使用します。
func NewLocalStore(blob Blob, key string, logger logrus.FieldLogger) *LocalStore {
	if key == "" {
		key = StorageKey
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LocalStore{blob: blob, key: key, seed: SeedCollection(), logger: logger}
}

// WithSeed は保存データが読めない場合に返すコレクションを差し替えます。
func (s *LocalStore) WithSeed(seed Collection) *LocalStore {
	s.seed = cloneCollection(seed)
	return s
}

// Load は保存済みコレクションを読み込みます。未保存や破損の場合はシードを返し、エラーは返しません。
func (s *LocalStore) Load(ctx context.Context) Collection {
	log := s.logger.WithField("key", s.key)

	raw, err := s.blob.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrBlobNotFound) {
			log.WithError(err).Warn("failed to read stored records, using seed data")
		}
		return cloneCollection(s.seed)
	}

	var c Collection
	if err := json.Unmarshal(raw, &c); err != nil {
		log.WithError(err).Warn("failed to parse stored records, using seed data")
		return cloneCollection(s.seed)
	}
	if c == nil {
		log.Warn("stored records are null, using seed data")
		return cloneCollection(s.seed)
	}
	return c
}

// Save はコレクション全体をシリアライズして上書き保存します。
func (s *LocalStore) Save(ctx context.Context, c Collection) error {
	if c == nil {
		c = Collection{}
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("records: encode collection: %w", err)
	}
	if err := s.blob.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("records: write %s: %w", s.key, err)
	}
	return nil
}

// MemoryBlob はプロセス内のマップに値を保持する Blob です。
type MemoryBlob struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryBlob は MemoryBlob を生成します。
func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{values: make(map[string][]byte)}
}

func (b *MemoryBlob) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.values[key]
	if !ok {
		return nil, ErrBlobNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (b *MemoryBlob) Put(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	b.values[key] = stored
	return nil
}
