package files

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filehub/internal/common"
	"github.com/dmitrijs2005/filehub/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests and for
// running the server without Postgres. Listings keep insertion order via
// the seq counter.
type InMemoryRepository struct {
	mu      sync.RWMutex
	nodes   map[string]*models.FileNode
	ordered []string
	nextSeq int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nodes: make(map[string]*models.FileNode)}
}

func (r *InMemoryRepository) Create(ctx context.Context, node *models.FileNode) (*models.FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := *node
	n.ID = uuid.NewString()
	r.nextSeq++
	n.Seq = r.nextSeq
	n.CreatedAt = time.Now()

	r.nodes[n.ID] = &n
	r.ordered = append(r.ordered, n.ID)

	out := n
	return &out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.FileNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.nodes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *n
	return &out, nil
}

func (r *InMemoryRepository) GetByIDAndOwner(ctx context.Context, id string, ownerID string) (*models.FileNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.nodes[id]
	if !ok || n.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	out := *n
	return &out, nil
}

func (r *InMemoryRepository) ListByParent(ctx context.Context, ownerID string, parentID string, offset int, limit int) ([]*models.FileNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []*models.FileNode{}
	for _, id := range r.ordered {
		n := r.nodes[id]
		if n.OwnerID == ownerID && n.ParentID == parentID {
			matched = append(matched, n)
		}
	}

	if offset >= len(matched) {
		return []*models.FileNode{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	result := make([]*models.FileNode, 0, end-offset)
	for _, n := range matched[offset:end] {
		out := *n
		result = append(result, &out)
	}
	return result, nil
}

func (r *InMemoryRepository) SetVisibility(ctx context.Context, id string, ownerID string, isPublic bool) (*models.FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[id]
	if !ok || n.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	n.IsPublic = isPublic
	out := *n
	return &out, nil
}

func (r *InMemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.nodes)), nil
}
