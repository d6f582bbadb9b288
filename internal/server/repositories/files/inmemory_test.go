package files

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filehub/internal/server/models"
)

func TestInMemory_ListPagination(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := repo.Create(ctx, &models.FileNode{
			OwnerID: "u-1", Name: fmt.Sprintf("file-%02d", i), Kind: models.KindFile,
			ParentID: models.RootParentID, LocalRef: "ref",
		})
		require.NoError(t, err)
	}

	page0, err := repo.ListByParent(ctx, "u-1", models.RootParentID, 0, 20)
	require.NoError(t, err)
	require.Len(t, page0, 20)
	assert.Equal(t, "file-00", page0[0].Name)
	assert.Equal(t, "file-19", page0[19].Name)

	page1, err := repo.ListByParent(ctx, "u-1", models.RootParentID, 20, 20)
	require.NoError(t, err)
	require.Len(t, page1, 5)
	assert.Equal(t, "file-20", page1[0].Name)

	page2, err := repo.ListByParent(ctx, "u-1", models.RootParentID, 40, 20)
	require.NoError(t, err)
	assert.Empty(t, page2)
}

func TestInMemory_ListScopedToOwner(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.FileNode{OwnerID: "u-1", Name: "mine", Kind: models.KindFolder, ParentID: models.RootParentID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.FileNode{OwnerID: "u-2", Name: "theirs", Kind: models.KindFolder, ParentID: models.RootParentID})
	require.NoError(t, err)

	got, err := repo.ListByParent(ctx, "u-1", models.RootParentID, 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].Name)
}

func TestInMemory_MutationDoesNotLeakThroughCopies(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.FileNode{OwnerID: "u-1", Name: "doc", Kind: models.KindFile, ParentID: models.RootParentID, LocalRef: "ref"})
	require.NoError(t, err)

	created.Name = "mutated"

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "doc", got.Name)
}
