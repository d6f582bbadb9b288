package files

import (
	"context"

	"github.com/dmitrijs2005/filehub/internal/server/models"
)

type Repository interface {
	// Create persists a new node and returns it with id, seq and created_at
	// assigned.
	Create(ctx context.Context, node *models.FileNode) (*models.FileNode, error)

	// GetByID looks a node up regardless of owner. Used only by the content
	// path, which applies its own visibility predicate.
	GetByID(ctx context.Context, id string) (*models.FileNode, error)

	// GetByIDAndOwner looks a node up with ownership as part of the
	// predicate, so non-owners cannot distinguish "absent" from "not yours".
	GetByIDAndOwner(ctx context.Context, id string, ownerID string) (*models.FileNode, error)

	// ListByParent returns the owner's children of parentID in creation
	// order, limit rows starting at offset. Out-of-range pages yield an
	// empty slice.
	ListByParent(ctx context.Context, ownerID string, parentID string, offset int, limit int) ([]*models.FileNode, error)

	// SetVisibility flips is_public on the owner's node and returns the
	// updated row, or common.ErrorNotFound.
	SetVisibility(ctx context.Context, id string, ownerID string, isPublic bool) (*models.FileNode, error)

	Count(ctx context.Context) (int64, error)
}
