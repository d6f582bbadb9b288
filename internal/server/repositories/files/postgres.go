package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filehub/internal/common"
	"github.com/dmitrijs2005/filehub/internal/dbx"
	"github.com/dmitrijs2005/filehub/internal/server/models"
)

// PostgresRepository implements file-node storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const nodeColumns = `id, owner_id, name, kind, is_public, parent_id, local_ref, seq, created_at`

func scanNode(row *sql.Row) (*models.FileNode, error) {
	node := &models.FileNode{}
	err := row.Scan(&node.ID, &node.OwnerID, &node.Name, &node.Kind,
		&node.IsPublic, &node.ParentID, &node.LocalRef, &node.Seq, &node.CreatedAt)
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (r *PostgresRepository) Create(ctx context.Context, node *models.FileNode) (*models.FileNode, error) {

	query :=
		`INSERT INTO files (owner_id, name, kind, is_public, parent_id, local_ref)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, seq, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		node.OwnerID, node.Name, node.Kind, node.IsPublic, node.ParentID, node.LocalRef).
		Scan(&node.ID, &node.Seq, &node.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return node, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.FileNode, error) {
	query := `SELECT ` + nodeColumns + ` FROM files WHERE id = $1`

	node, err := scanNode(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return node, nil
}

func (r *PostgresRepository) GetByIDAndOwner(ctx context.Context, id string, ownerID string) (*models.FileNode, error) {
	query := `SELECT ` + nodeColumns + ` FROM files WHERE id = $1 AND owner_id = $2`

	node, err := scanNode(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return node, nil
}

func (r *PostgresRepository) ListByParent(ctx context.Context, ownerID string, parentID string, offset int, limit int) ([]*models.FileNode, error) {
	query := `SELECT ` + nodeColumns + ` FROM files
		 WHERE owner_id = $1 AND parent_id = $2
		 ORDER BY seq
		 OFFSET $3 LIMIT $4
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID, parentID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.FileNode{}
	for rows.Next() {
		node := &models.FileNode{}
		if err := rows.Scan(&node.ID, &node.OwnerID, &node.Name, &node.Kind,
			&node.IsPublic, &node.ParentID, &node.LocalRef, &node.Seq, &node.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, node)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresRepository) SetVisibility(ctx context.Context, id string, ownerID string, isPublic bool) (*models.FileNode, error) {
	query := `UPDATE files SET is_public = $3
		 WHERE id = $1 AND owner_id = $2
		 RETURNING ` + nodeColumns

	node, err := scanNode(r.db.QueryRowContext(ctx, query, id, ownerID, isPublic))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return node, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
