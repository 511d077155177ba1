package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency by method and route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RecipeWritesTotal counts successful recipe writes by operation
	RecipeWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_writes_total",
			Help: "Total number of recipe create, update and delete operations",
		},
		[]string{"operation"},
	)

	// AssociationChangesTotal counts favorite, cart and subscription changes
	AssociationChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "association_changes_total",
			Help: "Total number of favorite, shopping cart and subscription changes",
		},
		[]string{"kind", "action"},
	)
)

// Association kinds
const (
	KindFavorite     = "favorite"
	KindShoppingCart = "shopping_cart"
	KindSubscription = "subscription"
)

// RecordRequest records one finished HTTP request
func RecordRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordRecipeWrite records a successful recipe create, update or delete
func RecordRecipeWrite(operation string) {
	RecipeWritesTotal.WithLabelValues(operation).Inc()
}

// RecordAssociation records an association being added or removed
func RecordAssociation(kind string, added bool) {
	action := "removed"
	if added {
		action = "added"
	}
	AssociationChangesTotal.WithLabelValues(kind, action).Inc()
}
