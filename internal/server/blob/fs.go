package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filehub/internal/common"
)

// FSStore keeps blobs as flat files under one base directory. References
// are the generated file names; the folder hierarchy lives only in
// metadata, never on disk.
type FSStore struct {
	baseDir string
}

func NewFSStore(baseDir string) *FSStore {
	return &FSStore{baseDir: baseDir}
}

func (s *FSStore) Write(ctx context.Context, data []byte) (string, error) {
	ref := uuid.NewString()
	if err := s.WriteRef(ctx, ref, data); err != nil {
		return "", err
	}
	return ref, nil
}

// WriteRef writes to a temp file in the same directory and renames it into
// place, so readers see either nothing or the whole payload.
func (s *FSStore) WriteRef(ctx context.Context, ref string, data []byte) error {
	if !validRef(ref) {
		return common.ErrorNotFound
	}

	if err := os.MkdirAll(s.baseDir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.baseDir, err)
	}

	tmp, err := os.CreateTemp(s.baseDir, ref+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.baseDir, ref)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

func (s *FSStore) Read(ctx context.Context, ref string) ([]byte, error) {
	if !validRef(ref) {
		return nil, common.ErrorNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, ref))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

func (s *FSStore) Ping(ctx context.Context) error {
	return os.MkdirAll(s.baseDir, 0o770)
}

// validRef rejects anything that could escape the base directory. Generated
// references never contain separators, so such a ref is simply absent.
func validRef(ref string) bool {
	return ref != "" && ref == filepath.Base(ref) && ref != "." && ref != ".."
}
