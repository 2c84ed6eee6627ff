package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"tasktrack/internal/domain"
	"tasktrack/internal/errors"
	"tasktrack/internal/logging"
)

// Options controls how the store creates its data directory and file
type Options struct {
	DirPermissions  uint32
	FilePermissions uint32
}

// Store persists tasks in a single JSON file. All tasks are held in
// memory; every mutation rewrites the file atomically.
type Store struct {
	path  string
	opts  Options
	mu    sync.Mutex
	tasks map[int64]*domain.Task
}

// New creates a store backed by the JSON file at path. A missing or
// malformed file yields an empty store rather than an error, so a
// corrupted file never locks the user out of their tasks.
func New(path string, opts Options) (*Store, error) {
	if opts.DirPermissions == 0 {
		opts.DirPermissions = 0755
	}
	if opts.FilePermissions == 0 {
		opts.FilePermissions = 0644
	}

	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(opts.DirPermissions)); err != nil {
		return nil, errors.NewPersistenceError("create data directory", err)
	}

	s := &Store{
		path:  path,
		opts:  opts,
		tasks: make(map[int64]*domain.Task),
	}
	s.load()
	return s, nil
}

// load reads the task file into memory. Any failure leaves the store
// empty; individual records that fail to parse are skipped.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Debugf("task file unreadable, starting empty: %v", err)
		}
		return
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logging.Debugf("task file malformed, starting empty: %v", err)
		return
	}

	for _, rec := range records {
		task, ok := fromRecord(rec)
		if !ok {
			logging.Debugf("skipping malformed task record id=%d", rec.ID)
			continue
		}
		s.tasks[task.ID] = task
	}
}

// save writes all tasks to a temporary file in the data directory and
// renames it over the task file, so readers never observe a partial
// write. The caller must hold s.mu.
func (s *Store) save() error {
	records := make([]taskRecord, 0, len(s.tasks))
	for _, task := range s.tasks {
		records = append(records, toRecord(task))
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.NewPersistenceError("encode tasks", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return errors.NewPersistenceError("create temporary file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewPersistenceError("write tasks", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewPersistenceError("sync tasks", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewPersistenceError("close temporary file", err)
	}

	if err := os.Chmod(tmpName, os.FileMode(s.opts.FilePermissions)); err != nil {
		os.Remove(tmpName)
		return errors.NewPersistenceError("set file permissions", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.NewPersistenceError("replace task file", err)
	}
	return nil
}

// nextID returns one more than the highest existing task ID, so IDs
// are never reused within a file even after deletions shift the count.
func (s *Store) nextID() int64 {
	var max int64
	for id := range s.tasks {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// CreateTask assigns the task a new ID and persists it
func (s *Store) CreateTask(ctx context.Context, task *domain.Task) error {
	if err := ctx.Err(); err != nil {
		return errors.NewPersistenceError("create task", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID()
	stored := *task
	s.tasks[task.ID] = &stored

	return s.save()
}

// GetTask retrieves a task by ID
func (s *Store) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewPersistenceError("get task", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	copied := *task
	return &copied, nil
}

// ListTasks retrieves all tasks ordered by ID
func (s *Store) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewPersistenceError("list tasks", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]*domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		copied := *task
		tasks = append(tasks, &copied)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

// UpdateTask replaces an existing task and persists the change. The
// in-memory state keeps the update even when the write fails, so the
// caller can retry the save without losing the edit.
func (s *Store) UpdateTask(ctx context.Context, task *domain.Task) error {
	if err := ctx.Err(); err != nil {
		return errors.NewPersistenceError("update task", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", task.ID))
	}
	stored := *task
	s.tasks[task.ID] = &stored

	return s.save()
}

// DeleteTask removes a task by ID and persists the change
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return errors.NewPersistenceError("delete task", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	delete(s.tasks, id)

	return s.save()
}

// Close is a no-op; every mutation already flushes to disk
func (s *Store) Close() error {
	return nil
}
