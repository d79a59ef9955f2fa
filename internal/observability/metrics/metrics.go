package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts core business operations. Each instance owns its
// registry so tests can build as many as they need.
type Metrics struct {
	Registry *prometheus.Registry

	TransactionsRecorded *prometheus.CounterVec
	TransactionsRejected prometheus.Counter
	OrdersSaved          prometheus.Counter
	OrdersPruned         prometheus.Counter
	MessagesSent         prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		TransactionsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockroom",
			Name:      "stock_transactions_total",
			Help:      "Stock transactions recorded, by type.",
		}, []string{"type"}),
		TransactionsRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "stockroom",
			Name:      "stock_transactions_rejected_total",
			Help:      "Stock transactions rejected for insufficient stock.",
		}),
		OrdersSaved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "stockroom",
			Name:      "purchase_orders_saved_total",
			Help:      "Purchase orders created or updated.",
		}),
		OrdersPruned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "stockroom",
			Name:      "purchase_orders_pruned_total",
			Help:      "Cancelled purchase orders removed by the retention sweep.",
		}),
		MessagesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "stockroom",
			Name:      "messages_sent_total",
			Help:      "Messages posted.",
		}),
	}
}
