// SPDX-License-Identifier: GPL-3.0-or-later
package metrics

import "time"

// NoopCollector is a no-op implementation of the Collector interface.
// All methods are empty stubs that do nothing.
type NoopCollector struct{}

// MailChecked is a no-op.
func (n *NoopCollector) MailChecked(folder string, spam bool, rule string) {}

// MailSkipped is a no-op.
func (n *NoopCollector) MailSkipped(folder string, reason string) {}

// SpamActioned is a no-op.
func (n *NoopCollector) SpamActioned(folder string, action string) {}

// SpamActionFailed is a no-op.
func (n *NoopCollector) SpamActionFailed(folder string, action string) {}

// RunCompleted is a no-op.
func (n *NoopCollector) RunCompleted(folder string, duration time.Duration) {}

// RunError is a no-op.
func (n *NoopCollector) RunError(folder string) {}
