package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	RegistrationsTotal prometheus.Counter
	LoginsTotal        *prometheus.CounterVec
	BookingsTotal      *prometheus.CounterVec
	PurchasesTotal     *prometheus.CounterVec
	ContactMessages    prometheus.Counter
}

// NewMetrics creates all application metrics on reg, which must be the
// registry the scrape endpoint serves.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RegistrationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Total number of member registrations",
		}),
		LoginsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Total number of login attempts",
		}, []string{"status"}),
		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Total number of bookings by session type",
		}, []string{"type"}),
		PurchasesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "membership_purchases_total",
			Help:      "Total number of membership purchases by plan",
		}, []string{"plan"}),
		ContactMessages: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Total number of contact form submissions",
		}),
	}
}
