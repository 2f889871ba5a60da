package obs

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// StockOpsTotal counts CRUD operation outcomes on the product store.
	StockOpsTotal *prometheus.CounterVec
	// DiscountAppliedTotal counts discounts granted at write time, by category and percentage.
	DiscountAppliedTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		StockOpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_operations_total",
			Help:      "Count of inventory CRUD operation outcomes.",
		}, []string{"op", "result"})
		DiscountAppliedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_applied_total",
			Help:      "Count of discounts applied at write time by category and percent.",
		}, []string{"category", "percent"})
		reg.MustRegister(StockOpsTotal, DiscountAppliedTotal)
	})
}

// ObserveStockOp records the outcome of one store operation. Safe to call
// before metrics registration; it becomes a no-op.
func ObserveStockOp(op string, err error) {
	if StockOpsTotal == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	StockOpsTotal.WithLabelValues(op, result).Inc()
}

// ObserveDiscount records a discount grant. Zero-percent writes are counted
// too, so the ratio of discounted stock is visible.
func ObserveDiscount(category string, percent int) {
	if DiscountAppliedTotal == nil {
		return
	}
	DiscountAppliedTotal.WithLabelValues(category, strconv.Itoa(percent)).Inc()
}
