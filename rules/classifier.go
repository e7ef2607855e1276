// SPDX-License-Identifier: GPL-3.0-or-later

// Package rules implements the deterministic spam classifier: an allow-list
// short-circuit, four independent signal extractors and an ordered rule set
// that combines the signals into a binary verdict. Everything in this
// package is pure CPU-bound pattern evaluation; there is no I/O, no hidden
// state and no numeric score. The rule set deliberately rejects additive
// point-scoring: that approach overfits to artifacts of whatever corpus the
// weights were tuned on, while boolean combinations of strong signals stay
// inspectable.
package rules

import "github.com/mpeters/go-imap-sweeper/domain"

const (
	RuleAllowListed        = "allow-listed"
	RuleBulkSensational    = "bulk + sensational"
	RuleBulkBehaviors      = "bulk + behaviors"
	RuleBulkMarketing      = "bulk + marketing + warning"
	RuleExtremeSensational = "extreme sensationalism"
)

// Classify is the sole entry point of the core. The allow list is checked
// before any extractor runs; a match forces a not-spam verdict so a message
// can never be both allow-listed and flagged. The rules below all resolve
// to spam and are commutative in effect; their order only determines which
// rule name leads the trace.
func Classify(msg domain.MailMessage, allowList []string) domain.Verdict {
	if IsAllowed(msg.Sender, allowList) {
		return domain.Verdict{
			Spam:  false,
			Rule:  RuleAllowListed,
			Trace: []string{RuleAllowListed},
		}
	}

	signals, matched := ExtractSignals(msg)

	verdict := domain.Verdict{
		Signals: signals,
		Trace:   matched,
	}

	behaviorCount := 0
	if signals.SensationalCount >= 1 {
		behaviorCount++
	}
	if signals.FearDetected {
		behaviorCount++
	}
	if signals.MarketingFormat {
		behaviorCount++
	}

	for _, rule := range []struct {
		name  string
		fired bool
	}{
		{RuleBulkSensational, signals.BulkInfrastructure && signals.SensationalCount >= 2},
		{RuleBulkBehaviors, signals.BulkInfrastructure && behaviorCount >= 2},
		{RuleBulkMarketing, signals.BulkInfrastructure && signals.MarketingFormat && (signals.SensationalCount >= 1 || signals.FearDetected)},
		{RuleExtremeSensational, signals.SensationalCount >= 3},
	} {
		if !rule.fired {
			continue
		}
		if !verdict.Spam {
			verdict.Spam = true
			verdict.Rule = rule.name
		}
		verdict.Trace = append(verdict.Trace, "rule:"+rule.name)
	}

	return verdict
}
