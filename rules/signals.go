// SPDX-License-Identifier: GPL-3.0-or-later
package rules

import (
	"strings"

	"github.com/mpeters/go-imap-sweeper/domain"
)

// ExtractSignals runs the four independent extractors against a message
// and returns the signal set plus the ids of the categories that matched.
// The extractors are pure and total: an empty subject or sender degrades to
// zero signals, never to an error. They do not depend on each other or on
// evaluation order.
func ExtractSignals(msg domain.MailMessage) (domain.Signals, []string) {
	subjectAndSender := msg.Subject + " " + msg.Sender

	signals := domain.Signals{
		BulkInfrastructure: BulkInfrastructure(msg.RawHeaders),
	}

	matched := []string{}
	if signals.BulkInfrastructure {
		matched = append(matched, "bulk-infrastructure")
	}

	for _, c := range SensationalCategories {
		if c.Matches(subjectAndSender) {
			signals.SensationalCount++
			matched = append(matched, "sensational:"+c.Id)
		}
	}

	for _, c := range FearCategories {
		if c.Matches(subjectAndSender) {
			signals.FearDetected = true
			matched = append(matched, "fear:"+c.Id)
			break
		}
	}

	for _, c := range MarketingPatterns {
		if c.Matches(msg.Sender) {
			signals.MarketingFormat = true
			matched = append(matched, "marketing:"+c.Id)
			break
		}
	}

	return signals, matched
}

// BulkInfrastructure reports whether the raw header block carries any known
// bulk-mail-service fingerprint, matched case-insensitively.
func BulkInfrastructure(rawHeaders string) bool {
	if rawHeaders == "" {
		return false
	}

	lowered := strings.ToLower(rawHeaders)
	for _, fingerprint := range BulkFingerprints {
		if strings.Contains(lowered, fingerprint) {
			return true
		}
	}

	return false
}
