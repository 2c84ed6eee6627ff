package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the web server
type Metrics struct {
	TaskOperations *prometheus.CounterVec
	RequestErrors  *prometheus.CounterVec
	ActiveTasks    prometheus.Gauge
	CompletedTasks prometheus.Gauge
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		TaskOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_operations_total",
			Help:      "Task operations by type.",
		}, []string{"op"}),
		RequestErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_errors_total",
			Help:      "Failed requests by error kind.",
		}, []string{"kind"}),
		ActiveTasks: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_tasks",
			Help:      "Number of incomplete tasks in the store.",
		}),
		CompletedTasks: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "completed_tasks",
			Help:      "Number of completed tasks in the store.",
		}),
	}
}

// SetTaskCounts updates the task gauges after a mutation
func (m *Metrics) SetTaskCounts(active, completed int) {
	m.ActiveTasks.Set(float64(active))
	m.CompletedTasks.Set(float64(completed))
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
