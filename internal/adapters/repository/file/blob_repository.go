package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogurasousui/hr-smart-records/internal/core/records"
)

// BlobRepository はディレクトリ配下の <key>.json ファイルを保存領域とする records.Blob の実装です。
type BlobRepository struct {
	dir string
}

var _ records.Blob = (*BlobRepository)(nil)

// NewBlobRepository は BlobRepository を生成します。
func NewBlobRepository(dir string) *BlobRepository {
	return &BlobRepository{dir: dir}
}

func (r *BlobRepository) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("file: invalid key %q", key)
	}
	return filepath.Join(r.dir, key+".json"), nil
}

// Get はキーに対応するファイルの内容を返します。
func (r *BlobRepository) Get(_ context.Context, key string) ([]byte, error) {
	p, err := r.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, records.ErrBlobNotFound
		}
		return nil, fmt.Errorf("file: read %s: %w", p, err)
	}
	return b, nil
}

// Put は一時ファイルに書き込んでから置き換えるため、書き込み途中の内容が読まれることはありません。
func (r *BlobRepository) Put(_ context.Context, key string, value []byte) error {
	p, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("file: create dir %s: %w", r.dir, err)
	}

	tmp, err := os.CreateTemp(r.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("file: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("file: rename to %s: %w", p, err)
	}
	return nil
}
