// Package metrics defines and registers all custom Prometheus metrics for
// the library catalog API. It is the single source of truth for metric
// names, labels, and help strings; metrics auto-register with the default
// registry on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "library"

// BooksIssuedTotal counts successful issue operations.
var BooksIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_issued_total",
		Help:      "Total number of book copies issued.",
	},
)

// BooksReturnedTotal counts successful return operations.
var BooksReturnedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_returned_total",
		Help:      "Total number of book copies returned.",
	},
)

// BooksAddedTotal counts records added to the catalog.
var BooksAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_added_total",
		Help:      "Total number of book records added to the catalog.",
	},
)

// LoginsTotal counts successful logins by role.
// Label:
//   - role: "admin" or "user"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// RegistrationsTotal counts accounts created through registration.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// AuthFailuresTotal counts rejected logins and registrations.
// Label:
//   - reason: "invalid_credentials" or "duplicate_username"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected logins and registrations, by reason.",
	},
	[]string{"reason"},
)
