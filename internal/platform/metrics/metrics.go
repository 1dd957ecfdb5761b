package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// InvoicesPosted counts successfully posted invoices by type ("sale" or
// "purchase").
var InvoicesPosted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bizbooks_invoices_posted_total",
	Help: "Number of invoices posted successfully, partitioned by invoice type.",
}, []string{"type"})

// PostingFailures counts invoice postings rejected or rolled back, by type.
var PostingFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bizbooks_invoice_posting_failures_total",
	Help: "Number of failed invoice postings, partitioned by invoice type.",
}, []string{"type"})
