// SPDX-License-Identifier: GPL-3.0-or-later
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements the Collector interface using Prometheus metrics.
type PrometheusCollector struct {
	// Classification metrics
	mailsCheckedTotal *prometheus.CounterVec
	mailsSkippedTotal *prometheus.CounterVec

	// Action metrics
	spamActionedTotal      *prometheus.CounterVec
	spamActionFailureTotal *prometheus.CounterVec

	// Run metrics
	runsTotal          *prometheus.CounterVec
	runErrorsTotal     *prometheus.CounterVec
	runDurationSeconds *prometheus.HistogramVec
}

// NewPrometheusCollector creates a new PrometheusCollector with all metrics registered.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		mailsCheckedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sweeper_mails_checked_total",
			Help: "Total number of mails classified.",
		}, []string{"folder", "verdict", "rule"}),
		mailsSkippedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sweeper_mails_skipped_total",
			Help: "Total number of mails skipped without classification.",
		}, []string{"folder", "reason"}),

		spamActionedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sweeper_spam_actioned_total",
			Help: "Total number of spam mails acted upon.",
		}, []string{"folder", "action"}),
		spamActionFailureTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sweeper_spam_action_failures_total",
			Help: "Total number of failed spam actions.",
		}, []string{"folder", "action"}),

		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sweeper_runs_total",
			Help: "Total number of completed folder runs.",
		}, []string{"folder"}),
		runErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sweeper_run_errors_total",
			Help: "Total number of folder runs that ended in an error.",
		}, []string{"folder"}),
		runDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sweeper_run_duration_seconds",
			Help:    "Duration of folder runs in seconds.",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		}, []string{"folder"}),
	}

	// Register all metrics
	reg.MustRegister(
		c.mailsCheckedTotal,
		c.mailsSkippedTotal,
		c.spamActionedTotal,
		c.spamActionFailureTotal,
		c.runsTotal,
		c.runErrorsTotal,
		c.runDurationSeconds,
	)

	return c
}

// MailChecked increments the checked counter with the verdict outcome.
func (c *PrometheusCollector) MailChecked(folder string, spam bool, rule string) {
	verdict := "ham"
	if spam {
		verdict = "spam"
	}
	c.mailsCheckedTotal.WithLabelValues(folder, verdict, rule).Inc()
}

// MailSkipped increments the skipped counter.
func (c *PrometheusCollector) MailSkipped(folder string, reason string) {
	c.mailsSkippedTotal.WithLabelValues(folder, reason).Inc()
}

// SpamActioned increments the actioned counter.
func (c *PrometheusCollector) SpamActioned(folder string, action string) {
	c.spamActionedTotal.WithLabelValues(folder, action).Inc()
}

// SpamActionFailed increments the action failure counter.
func (c *PrometheusCollector) SpamActionFailed(folder string, action string) {
	c.spamActionFailureTotal.WithLabelValues(folder, action).Inc()
}

// RunCompleted increments the run counter and observes the run duration.
func (c *PrometheusCollector) RunCompleted(folder string, duration time.Duration) {
	c.runsTotal.WithLabelValues(folder).Inc()
	c.runDurationSeconds.WithLabelValues(folder).Observe(duration.Seconds())
}

// RunError increments the run error counter.
func (c *PrometheusCollector) RunError(folder string) {
	c.runErrorsTotal.WithLabelValues(folder).Inc()
}
