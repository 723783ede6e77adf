package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rifago_tickets_sold_total",
			Help: "Total tickets sold across all raffles",
		},
	)

	salesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rifago_sales_total",
			Help: "Sale attempts by outcome",
		},
		[]string{"outcome"},
	)

	drawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rifago_draws_total",
			Help: "Draw attempts by outcome",
		},
		[]string{"outcome"},
	)

	revenueCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rifago_revenue_collected_total",
			Help: "Revenue collected from completed sales, in currency units",
		},
	)
)

func RecordSale(tickets int, amount float64) {
	salesTotal.WithLabelValues("completed").Inc()
	ticketsSold.Add(float64(tickets))
	revenueCollected.Add(amount)
}

func RecordSaleRejected() {
	salesTotal.WithLabelValues("rejected").Inc()
}

func RecordDraw(outcome string) {
	drawsTotal.WithLabelValues(outcome).Inc()
}
