package server

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"tasktrack/internal/domain"
	"tasktrack/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

type createTaskRequest struct {
	Name     string `json:"name"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
}

type updateTaskRequest struct {
	Name      *string `json:"name"`
	DueDate   *string `json:"due_date"`
	Priority  *string `json:"priority"`
	Completed *bool   `json:"completed"`
}

type completeTaskRequest struct {
	Completed *bool `json:"completed"`
}

type taskResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	DueDate   string `json:"due_date"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	Overdue   bool   `json:"overdue"`
	CreatedAt string `json:"created_at,omitempty"`
}

type taskListResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

func (s *Server) taskToResponse(task *domain.Task) taskResponse {
	resp := taskResponse{
		ID:        task.ID,
		Name:      task.Name,
		DueDate:   task.DueDate.Format(domain.DateFormat),
		Priority:  string(task.Priority),
		Completed: task.Completed,
		Overdue:   task.IsOverdue(timeNow()),
	}
	if !task.CreatedAt.IsZero() {
		resp.CreatedAt = task.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func (s *Server) tasksToResponse(tasks []*domain.Task) taskListResponse {
	resp := taskListResponse{Tasks: make([]taskResponse, len(tasks))}
	for i, task := range tasks {
		resp.Tasks[i] = s.taskToResponse(task)
	}
	return resp
}

func taskIDFromRequest(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", raw, "must be a positive integer")
	}
	return id, nil
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "request body must be JSON")
		return
	}

	dueDate, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.DueDate))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "due_date must use format YYYY-MM-DD")
		return
	}
	priority, ok := domain.ParsePriority(strings.TrimSpace(req.Priority))
	if !ok {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "priority must be High, Medium or Low")
		return
	}

	task, err := s.api.AddTask(r.Context(), req.Name, dueDate, priority)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	s.countOperation("create")
	s.refreshTaskGauges(r)
	respondJSON(w, http.StatusCreated, s.taskToResponse(task))
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromRequest(r)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	task, err := s.api.GetTask(r.Context(), id)
	if err != nil {
		s.respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s.taskToResponse(task))
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	opts, err := queryOptionsFromRequest(r)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	tasks, err := s.api.QueryTasks(r.Context(), opts)
	if err != nil {
		s.respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s.tasksToResponse(tasks))
}

func queryOptionsFromRequest(r *http.Request) (domain.QueryOptions, error) {
	var opts domain.QueryOptions
	q := r.URL.Query()

	if raw := strings.TrimSpace(q.Get("priority")); raw != "" {
		priority, ok := domain.ParsePriority(raw)
		if !ok {
			return opts, errors.NewInvalidInputError("priority", raw, "must be High, Medium or Low")
		}
		opts.Priority = &priority
	}
	if raw := strings.TrimSpace(q.Get("date")); raw != "" {
		filter, ok := domain.ParseDateFilter(raw)
		if !ok {
			return opts, errors.NewInvalidInputError("date", raw, "must be all, today, this-week or overdue")
		}
		opts.Date = filter
	}
	if raw := strings.TrimSpace(q.Get("include_completed")); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, errors.NewInvalidInputError("include_completed", raw, "must be a boolean")
		}
		opts.IncludeCompleted = include
	}
	return opts, nil
}

func (s *Server) handleOverdueTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.api.OverdueTasks(r.Context())
	if err != nil {
		s.respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s.tasksToResponse(tasks))
}

func (s *Server) handleCountTasks(w http.ResponseWriter, r *http.Request) {
	counts, err := s.api.CountTasks(r.Context())
	if err != nil {
		s.respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, counts)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromRequest(r)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "request body must be JSON")
		return
	}

	var fields domain.UpdateFields
	fields.Name = req.Name
	fields.Completed = req.Completed
	if req.DueDate != nil {
		dueDate, err := time.Parse(domain.DateFormat, strings.TrimSpace(*req.DueDate))
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_INPUT", "due_date must use format YYYY-MM-DD")
			return
		}
		fields.DueDate = &dueDate
	}
	if req.Priority != nil {
		priority, ok := domain.ParsePriority(strings.TrimSpace(*req.Priority))
		if !ok {
			respondError(w, http.StatusBadRequest, "INVALID_INPUT", "priority must be High, Medium or Low")
			return
		}
		fields.Priority = &priority
	}

	task, err := s.api.UpdateTask(r.Context(), id, fields)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	s.countOperation("update")
	s.refreshTaskGauges(r)
	respondJSON(w, http.StatusOK, s.taskToResponse(task))
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromRequest(r)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	if err := s.api.DeleteTask(r.Context(), id); err != nil {
		s.respondAppError(w, err)
		return
	}

	s.countOperation("delete")
	s.refreshTaskGauges(r)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromRequest(r)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	var req completeTaskRequest
	if err := decodeJSON(r, &req); err != nil && !stderrors.Is(err, errEmptyBody) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "request body must be JSON")
		return
	}
	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	task, err := s.api.SetCompleted(r.Context(), id, completed)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	s.countOperation("complete")
	s.refreshTaskGauges(r)
	respondJSON(w, http.StatusOK, s.taskToResponse(task))
}
