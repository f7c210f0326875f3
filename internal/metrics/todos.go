package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalCreatedTodos     = "total_created_todos"
	NameTotalUpdatedTodos     = "total_updated_todos"
	NameTotalDeletedTodos     = "total_deleted_todos"
	NameTotalRejectedRequests = "total_rejected_requests"
)

var TotalCreatedTodos = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalCreatedTodos,
		Help:      "Total created todos",
		Namespace: Namespace,
	},
)

var TotalUpdatedTodos = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalUpdatedTodos,
		Help:      "Total updated todos",
		Namespace: Namespace,
	},
)

var TotalDeletedTodos = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalDeletedTodos,
		Help:      "Total deleted todos",
		Namespace: Namespace,
	},
)

var TotalRejectedRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalRejectedRequests,
		Help:      "Total requests rejected with an error response",
		Namespace: Namespace,
	},
)
