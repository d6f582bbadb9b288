package thumbs

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filehub/internal/common"
	"github.com/dmitrijs2005/filehub/internal/logging"
	"github.com/dmitrijs2005/filehub/internal/server/blob"
	filesrepo "github.com/dmitrijs2005/filehub/internal/server/repositories/files"
)

// Widths are the rendition targets, processed in this order.
var Widths = []int{500, 250, 100}

var (
	errMissingFileID = errors.New("missing fileId")
	errMissingUserID = errors.New("missing userId")
	errFileNotFound  = errors.New("file not found")
)

// Worker consumes thumbnail jobs one at a time. Renditions are written as
// sibling blobs at <localRef>_<width>, located later by convention; no
// pointer to them is ever stored in metadata.
type Worker struct {
	queue  *ChanQueue
	repo   filesrepo.Repository
	blobs  blob.Store
	logger logging.Logger
}

func NewWorker(queue *ChanQueue, repo filesrepo.Repository, blobs blob.Store, logger logging.Logger) *Worker {
	return &Worker{
		queue:  queue,
		repo:   repo,
		blobs:  blobs,
		logger: logger.With("module", "thumbs"),
	}
}

// Run consumes jobs until ctx is done. Failed jobs are logged, never
// retried.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info(ctx, "Starting thumbnail worker...")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Stopping thumbnail worker...")
			return
		case job := <-w.queue.Jobs():
			if err := w.Process(ctx, job); err != nil {
				w.logger.Error(ctx, "thumbnail job failed", "fileId", job.FileID, "error", err.Error())
			}
		}
	}
}

// Process runs a single job. An error deriving any width fails the job as
// a whole, but renditions already written stay in place: absence of a
// rendition is a legitimate transient state, so best-effort is enough.
func (w *Worker) Process(ctx context.Context, job Job) error {
	if job.FileID == "" {
		return errMissingFileID
	}
	if job.UserID == "" {
		return errMissingUserID
	}

	node, err := w.repo.GetByIDAndOwner(ctx, job.FileID, job.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return errFileNotFound
		}
		return err
	}

	src, err := w.blobs.Read(ctx, node.LocalRef)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	for _, width := range Widths {
		rendition, err := Resize(src, width)
		if err != nil {
			return fmt.Errorf("width %d: %w", width, err)
		}
		ref := fmt.Sprintf("%s_%d", node.LocalRef, width)
		if err := w.blobs.WriteRef(ctx, ref, rendition); err != nil {
			return fmt.Errorf("width %d: %w", width, err)
		}
	}

	return nil
}
