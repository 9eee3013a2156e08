package item

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	itemsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "itemd_items",
			Help: "Current number of items in the store",
		},
	)

	itemOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itemd_item_operations_total",
			Help: "Total number of item store operations by outcome",
		},
		[]string{"operation", "outcome"},
	)
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)
