package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filehub/internal/common"
)

func TestFSStore_WriteReadRoundtrip(t *testing.T) {
	s := NewFSStore(t.TempDir())
	ctx := context.Background()

	ref, err := s.Write(ctx, []byte("payload"))
	require.NoError(t, err)
	require.NotEmpty(t, ref)

	got, err := s.Read(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestFSStore_RefsAreUnique(t *testing.T) {
	s := NewFSStore(t.TempDir())
	ctx := context.Background()

	r1, err := s.Write(ctx, []byte("a"))
	require.NoError(t, err)
	r2, err := s.Write(ctx, []byte("b"))
	require.NoError(t, err)
	assert.NotEqual(t, r1, r2)
}

func TestFSStore_FlatLayout(t *testing.T) {
	dir := t.TempDir()
	s := NewFSStore(dir)
	ctx := context.Background()

	ref, err := s.Write(ctx, []byte("payload"))
	require.NoError(t, err)

	// the blob sits directly in the base directory, no nesting
	_, err = os.Stat(filepath.Join(dir, ref))
	require.NoError(t, err)
}

func TestFSStore_MissingRef(t *testing.T) {
	s := NewFSStore(t.TempDir())

	_, err := s.Read(context.Background(), "no-such-ref")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFSStore_TraversalRefsReadAsAbsent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret"), []byte("x"), 0o600))

	s := NewFSStore(filepath.Join(dir, "blobs"))
	ctx := context.Background()

	for _, ref := range []string{"../secret", "a/b", "", ".", ".."} {
		_, err := s.Read(ctx, ref)
		assert.ErrorIs(t, err, common.ErrorNotFound, "ref %q", ref)

		err = s.WriteRef(ctx, ref, []byte("x"))
		assert.ErrorIs(t, err, common.ErrorNotFound, "ref %q", ref)
	}
}

func TestFSStore_WriteRefOverwrites(t *testing.T) {
	s := NewFSStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.WriteRef(ctx, "ref_500", []byte("v1")))
	require.NoError(t, s.WriteRef(ctx, "ref_500", []byte("v2")))

	got, err := s.Read(ctx, "ref_500")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestFSStore_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s := NewFSStore(dir)
	ctx := context.Background()

	_, err := s.Write(ctx, []byte("payload"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFSStore_PingCreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "blobs")
	s := NewFSStore(dir)

	require.NoError(t, s.Ping(context.Background()))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
