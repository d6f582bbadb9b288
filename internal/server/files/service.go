// Package files implements the file hierarchy store: the folder/file tree,
// its ownership and visibility rules, and content retrieval.
package files

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filehub/internal/common"
	"github.com/dmitrijs2005/filehub/internal/logging"
	"github.com/dmitrijs2005/filehub/internal/server/blob"
	"github.com/dmitrijs2005/filehub/internal/server/models"
	filesrepo "github.com/dmitrijs2005/filehub/internal/server/repositories/files"
	"github.com/dmitrijs2005/filehub/internal/server/thumbs"
)

// PageSize is the fixed listing page size.
const PageSize = 20

type Service struct {
	repo   filesrepo.Repository
	blobs  blob.Store
	queue  thumbs.Queue
	logger logging.Logger
}

func NewService(repo filesrepo.Repository, blobs blob.Store, queue thumbs.Queue, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		blobs:  blobs,
		queue:  queue,
		logger: logger.With("module", "files"),
	}
}

// CreateParams carries the upload payload. Data is the base64 encoding of
// the content and is required for non-folder kinds.
type CreateParams struct {
	Name     string
	Kind     string
	ParentID string
	IsPublic bool
	Data     string
}

// Create validates in a fixed order (first failure wins), writes the blob
// before the metadata so a storage failure cannot leave orphaned metadata,
// and enqueues a thumbnail job for images, fire-and-forget.
func (s *Service) Create(ctx context.Context, ownerID string, p CreateParams) (*models.FileNode, error) {

	if p.Name == "" {
		return nil, common.ErrorMissingName
	}
	if !models.ValidKind(p.Kind) {
		return nil, common.ErrorMissingType
	}
	if p.Data == "" && p.Kind != models.KindFolder {
		return nil, common.ErrorMissingData
	}

	parentID := models.RootParentID
	if p.ParentID != "" && p.ParentID != models.RootParentID {
		if _, err := uuid.Parse(p.ParentID); err != nil {
			return nil, common.ErrorParentNotFound
		}
		parent, err := s.repo.GetByID(ctx, p.ParentID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrorParentNotFound
			}
			return nil, fmt.Errorf("error looking up parent: %w", err)
		}
		if parent.Kind != models.KindFolder {
			return nil, common.ErrorParentNotFolder
		}
		parentID = parent.ID
	}

	node := &models.FileNode{
		OwnerID:  ownerID,
		Name:     p.Name,
		Kind:     p.Kind,
		IsPublic: p.IsPublic,
		ParentID: parentID,
	}

	if p.Kind != models.KindFolder {
		data, err := base64.StdEncoding.DecodeString(p.Data)
		if err != nil {
			return nil, common.ErrorMissingData
		}

		ref, err := s.blobs.Write(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("error writing blob: %w", err)
		}
		node.LocalRef = ref
	}

	node, err := s.repo.Create(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("error creating node: %w", err)
	}

	if node.Kind == models.KindImage && s.queue != nil {
		if !s.queue.Enqueue(thumbs.Job{FileID: node.ID, UserID: ownerID}) {
			s.logger.Warn(ctx, "thumbnail queue full, job dropped", "fileId", node.ID)
		}
	}

	return node, nil
}

// Get returns the acting user's node. Ownership is part of the lookup
// predicate, so other owners' ids read as absent.
func (s *Service) Get(ctx context.Context, ownerID string, fileID string) (*models.FileNode, error) {
	if _, err := uuid.Parse(fileID); err != nil {
		return nil, common.ErrorInvalidID
	}
	return s.repo.GetByIDAndOwner(ctx, fileID, ownerID)
}

// List returns page (zero-indexed) of the acting user's children of
// parentID, in creation order. Out-of-range pages are empty, not errors.
func (s *Service) List(ctx context.Context, ownerID string, parentID string, page int) ([]*models.FileNode, error) {
	if parentID == "" {
		parentID = models.RootParentID
	}
	if page < 0 {
		page = 0
	}
	return s.repo.ListByParent(ctx, ownerID, parentID, page*PageSize, PageSize)
}

// SetVisibility flips the public bit on the acting user's node and returns
// the updated projection. Setting the same value twice is a no-op.
func (s *Service) SetVisibility(ctx context.Context, ownerID string, fileID string, isPublic bool) (*models.FileNode, error) {
	if _, err := uuid.Parse(fileID); err != nil {
		return nil, common.ErrorInvalidID
	}
	return s.repo.SetVisibility(ctx, fileID, ownerID, isPublic)
}

// CanRead is the single owner-or-public predicate every content read goes
// through, so the not-found masking holds uniformly.
func CanRead(requesterID string, node *models.FileNode) bool {
	return node.IsPublic || (requesterID != "" && requesterID == node.OwnerID)
}

// ReadContent streams a node's bytes. requesterID may be empty (anonymous).
// Private nodes read by anyone but their owner are absent, not forbidden;
// a folder is rejected with ErrorNotAFile; metadata whose blob has gone
// missing reads as absent rather than crashing.
func (s *Service) ReadContent(ctx context.Context, requesterID string, fileID string) ([]byte, string, error) {
	if _, err := uuid.Parse(fileID); err != nil {
		return nil, "", common.ErrorInvalidID
	}

	node, err := s.repo.GetByID(ctx, fileID)
	if err != nil {
		return nil, "", err
	}

	if !CanRead(requesterID, node) {
		return nil, "", common.ErrorNotFound
	}

	if node.Kind == models.KindFolder {
		return nil, "", common.ErrorNotAFile
	}

	data, err := s.blobs.Read(ctx, node.LocalRef)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "blob missing for node", "fileId", node.ID)
			return nil, "", common.ErrorNotFound
		}
		return nil, "", fmt.Errorf("error reading blob: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(node.Name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return data, mimeType, nil
}

// Count backs GET /stats.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
