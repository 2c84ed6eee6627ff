package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tasktrack/internal/api"
	"tasktrack/internal/config"
	"tasktrack/internal/errors"
	"tasktrack/internal/logging"
	"tasktrack/internal/observability"
	"tasktrack/internal/validation"
)

// Server exposes the task API over HTTP together with a small
// embedded web UI.
type Server struct {
	cfg     *config.Config
	api     api.API
	metrics *observability.Metrics
	static  http.Handler
}

func New(cfg *config.Config, taskAPI api.API, metrics *observability.Metrics) *Server {
	return &Server{
		cfg:     cfg,
		api:     taskAPI,
		metrics: metrics,
		static:  newStaticHandler(),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusTemporaryRedirect)
	})
	r.Get("/ui", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusTemporaryRedirect)
	})
	r.Handle("/ui/*", http.StripPrefix("/ui/", s.static))

	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		observability.MetricsHandler().ServeHTTP(w, r)
	})

	r.Post("/v1/tasks", s.handleCreateTask)
	r.Get("/v1/tasks", s.handleListTasks)
	r.Get("/v1/tasks/overdue", s.handleOverdueTasks)
	r.Get("/v1/tasks/counts", s.handleCountTasks)
	r.Get("/v1/tasks/{id}", s.handleGetTask)
	r.Patch("/v1/tasks/{id}", s.handleUpdateTask)
	r.Delete("/v1/tasks/{id}", s.handleDeleteTask)
	r.Post("/v1/tasks/{id}/complete", s.handleCompleteTask)

	return r
}

// requestID tags every request with an ID so log lines from one
// request can be correlated.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("X-Request-Id"))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"backend": s.cfg.Storage.Backend,
	})
}

// refreshTaskGauges updates the task count gauges after a mutation
func (s *Server) refreshTaskGauges(r *http.Request) {
	if s.metrics == nil {
		return
	}
	counts, err := s.api.CountTasks(r.Context())
	if err != nil {
		return
	}
	s.metrics.SetTaskCounts(counts.Active, counts.Completed)
}

func (s *Server) countOperation(op string) {
	if s.metrics == nil {
		return
	}
	s.metrics.TaskOperations.WithLabelValues(op).Inc()
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errEmptyBody = stderrors.New("empty body")

func decodeJSON(r *http.Request, out any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "eof") {
			return errEmptyBody
		}
		return err
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: message, Code: code})
}

// respondAppError maps structured application errors onto HTTP status
// codes. Validation problems are the caller's fault, missing tasks are
// 404, anything touching storage is a 500.
func (s *Server) respondAppError(w http.ResponseWriter, err error) {
	var valErr *validation.ValidationError
	if stderrors.As(err, &valErr) {
		if s.metrics != nil {
			s.metrics.RequestErrors.WithLabelValues("validation").Inc()
		}
		respondError(w, http.StatusBadRequest, "VALIDATION_FAILED", valErr.GetUserFriendlyMessage())
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.IsErrorType(err, errors.ErrorTypeValidation),
		errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
		status = http.StatusBadRequest
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		status = http.StatusNotFound
	}

	if errors.ShouldLogError(err) {
		logging.Debugf("request failed: %v", err)
	}
	if s.metrics != nil {
		kind := "unknown"
		if appErr, ok := errors.AsAppError(err); ok {
			kind = appErr.Type.String()
		}
		s.metrics.RequestErrors.WithLabelValues(kind).Inc()
	}

	respondError(w, status, errors.GetErrorCode(err), errors.GetUserMessage(err))
}
