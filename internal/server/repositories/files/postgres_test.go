package files

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/filehub/internal/common"
	"github.com/dmitrijs2005/filehub/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func nodeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "name", "kind", "is_public", "parent_id", "local_ref", "seq", "created_at"})
}

func TestCreate_AssignsIDAndSeq(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+files\s*\(owner_id,\s*name,\s*kind,\s*is_public,\s*parent_id,\s*local_ref\)`).
		WithArgs("u-1", "notes", "folder", false, "0", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "seq", "created_at"}).AddRow("f-1", int64(1), time.Now()))

	node := &models.FileNode{OwnerID: "u-1", Name: "notes", Kind: "folder", ParentID: "0"}
	got, err := repo.Create(context.Background(), node)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "f-1" || got.Seq != 1 {
		t.Fatalf("unexpected node: %+v", got)
	}
}

func TestGetByIDAndOwner_OwnershipInPredicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// the owner filter is part of the query, not a post-check
	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+files\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs("f-1", "intruder").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIDAndOwner(context.Background(), "f-1", "intruder")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestListByParent_OrderedBySeq(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := nodeRows().
		AddRow("f-1", "u-1", "a.txt", "file", false, "0", "ref-1", int64(1), time.Now()).
		AddRow("f-2", "u-1", "b.txt", "file", false, "0", "ref-2", int64(2), time.Now())

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+files\s+WHERE\s+owner_id\s*=\s*\$1\s+AND\s+parent_id\s*=\s*\$2\s+ORDER\s+BY\s+seq\s+OFFSET\s+\$3\s+LIMIT\s+\$4`).
		WithArgs("u-1", "0", 0, 20).
		WillReturnRows(rows)

	got, err := repo.ListByParent(context.Background(), "u-1", "0", 0, 20)
	if err != nil {
		t.Fatalf("ListByParent error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "f-1" || got[1].ID != "f-2" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestSetVisibility_NotOwned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+files\s+SET\s+is_public\s*=\s*\$3`).
		WithArgs("f-1", "intruder", true).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.SetVisibility(context.Background(), "f-1", "intruder", true)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
