// Package thumbs derives resized renditions of uploaded images on a worker
// lane decoupled from the upload request cycle.
package thumbs

// Job names the source image for one rendition run. Both fields are
// required; the worker fails the job fast otherwise.
type Job struct {
	FileID string
	UserID string
}

// Queue is the boundary the upload path publishes jobs through. Enqueue
// must not block the caller; it reports whether the job was accepted.
type Queue interface {
	Enqueue(job Job) bool
}

// ChanQueue is an in-process Queue over a buffered channel. A full buffer
// drops the job rather than stalling an upload.
type ChanQueue struct {
	ch chan Job
}

func NewChanQueue(size int) *ChanQueue {
	return &ChanQueue{ch: make(chan Job, size)}
}

func (q *ChanQueue) Enqueue(job Job) bool {
	select {
	case q.ch <- job:
		return true
	default:
		return false
	}
}

// Jobs exposes the consuming side for the worker.
func (q *ChanQueue) Jobs() <-chan Job {
	return q.ch
}
