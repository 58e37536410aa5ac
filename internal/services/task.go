package services

import (
	"sync"

	"github.com/google/uuid"
)

type BatchStatus string

const (
	BatchPending   BatchStatus = "pending"
	BatchRunning   BatchStatus = "running"
	BatchDone      BatchStatus = "done"
	BatchFailed    BatchStatus = "failed"
	BatchCancelled BatchStatus = "cancelled"
)

// BatchTask is the handle for one detached ingestion batch. The upload
// caller gets its ID immediately; progress and cancellation go through it.
type BatchTask struct {
	ID    uuid.UUID
	JobID uuid.UUID

	mu         sync.Mutex
	status     BatchStatus
	total      int
	processed  int
	skipped    int
	failed     int
	errMsg     string
	cancelOnce sync.Once
	cancelCh   chan struct{}
}

func newBatchTask(jobID uuid.UUID, total int) *BatchTask {
	return &BatchTask{
		ID:       uuid.New(),
		JobID:    jobID,
		status:   BatchPending,
		total:    total,
		cancelCh: make(chan struct{}),
	}
}

// BatchSnapshot is a point-in-time copy of a task's state.
type BatchSnapshot struct {
	ID             uuid.UUID
	JobID          uuid.UUID
	Status         BatchStatus
	ItemsTotal     int
	ItemsProcessed int
	ItemsSkipped   int
	ItemsFailed    int
	Error          string
}

// Snapshot returns the task's current state.
func (t *BatchTask) Snapshot() BatchSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return BatchSnapshot{
		ID:             t.ID,
		JobID:          t.JobID,
		Status:         t.status,
		ItemsTotal:     t.total,
		ItemsProcessed: t.processed,
		ItemsSkipped:   t.skipped,
		ItemsFailed:    t.failed,
		Error:          t.errMsg,
	}
}

// Cancel requests cooperative cancellation; the pipeline checks between
// items, so the item in flight still runs to completion.
func (t *BatchTask) Cancel() {
	t.cancelOnce.Do(func() { close(t.cancelCh) })
}

func (t *BatchTask) cancelled() bool {
	select {
	case <-t.cancelCh:
		return true
	default:
		return false
	}
}

func (t *BatchTask) setStatus(status BatchStatus) {
	t.mu.Lock()
	t.status = status
	t.mu.Unlock()
}

func (t *BatchTask) fail(msg string) {
	t.mu.Lock()
	t.status = BatchFailed
	t.errMsg = msg
	t.mu.Unlock()
}

func (t *BatchTask) recordProcessed() { t.mu.Lock(); t.processed++; t.mu.Unlock() }
func (t *BatchTask) recordSkipped()   { t.mu.Lock(); t.skipped++; t.mu.Unlock() }
func (t *BatchTask) recordFailed()    { t.mu.Lock(); t.failed++; t.mu.Unlock() }

// TaskRegistry keeps live and finished batch tasks addressable by ID.
type TaskRegistry struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*BatchTask
}

func NewTaskRegistry() *TaskRegistry {
	return &TaskRegistry{tasks: make(map[uuid.UUID]*BatchTask)}
}

func (r *TaskRegistry) Add(task *BatchTask) {
	r.mu.Lock()
	r.tasks[task.ID] = task
	r.mu.Unlock()
}

func (r *TaskRegistry) Get(id uuid.UUID) (*BatchTask, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	return task, ok
}
