// SPDX-License-Identifier: GPL-3.0-or-later
package domain

// MailMessage is the header-level view of a message handed to the rule
// engine. Bodies are never fetched; the decision rules only ever look at
// subject, sender and the raw header block. The struct is owned by the
// caller and never mutated.
type MailMessage struct {
	Uid        uint32
	Subject    string
	Sender     string
	RawHeaders string
	Size       uint32
	MailIdHash string
}

// Signals holds the extractor outputs for a single message. A Signals
// value is created fresh per message and never shared across messages.
type Signals struct {
	BulkInfrastructure bool
	SensationalCount   int
	FearDetected       bool
	MarketingFormat    bool
}

// Verdict is the binary classification result. Trace carries the
// human-readable names of the signal categories and rules that fired; it
// is retained for observability only and plays no part in the decision.
type Verdict struct {
	Spam    bool
	Rule    string
	Trace   []string
	Signals Signals
}
