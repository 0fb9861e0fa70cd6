package api

import (
	"github.com/prometheus/client_golang/prometheus"          // Metric types
	"github.com/prometheus/client_golang/prometheus/promauto" // Auto registration
)

var taskMutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "task_manager_task_mutations_total",
	Help: "Successful task mutations by operation.",
}, []string{"operation"})

func recordTaskMutation(op string) {
	taskMutations.WithLabelValues(op).Inc()
}
