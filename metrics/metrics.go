// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics provides interfaces and implementations for collecting
// sweeper run metrics. This package defines the Collector interface for
// recording metrics and the Server interface for exposing them.
package metrics

import (
	"context"
	"time"
)

// Collector defines the interface for recording sweeper metrics.
type Collector interface {
	// Classification metrics (folder first)
	// rule is empty for ham verdicts
	MailChecked(folder string, spam bool, rule string)
	MailSkipped(folder string, reason string)

	// Action metrics
	// action should be "report-and-remove", "move" or "dry-run"
	SpamActioned(folder string, action string)
	SpamActionFailed(folder string, action string)

	// Run metrics
	RunCompleted(folder string, duration time.Duration)
	RunError(folder string)
}

// Server defines the interface for a metrics HTTP server.
type Server interface {
	// Start begins serving metrics. It blocks until the context is canceled
	// or an error occurs.
	Start(ctx context.Context) error

	// Shutdown gracefully stops the metrics server.
	Shutdown(ctx context.Context) error
}
