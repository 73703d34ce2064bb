package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ResumeStore は履歴書 PDF をローカルディスクに保存します。ファイル名は
// 衝突を避けるためランダムな UUID から生成します。
type ResumeStore struct {
	dir string
}

// NewResumeStore は保存先ディレクトリを作成して ResumeStore を返します。
func NewResumeStore(dir string) (*ResumeStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage: resume directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("storage: create resume directory %s: %w", dir, err)
	}
	return &ResumeStore{dir: dir}, nil
}

// Save は内容を書き込み、保存先の相対パスを返します。
func (s *ResumeStore) Save(ctx context.Context, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + ".pdf"
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("storage: write resume %s: %w", name, err)
	}
	return path, nil
}
