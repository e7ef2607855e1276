// SPDX-License-Identifier: GPL-3.0-or-later
package rules

import "regexp"

// Category is a named class of subject/sender phrasing. A category
// contributes at most 1 to the sensational count no matter how many of its
// patterns match, and no matter how often a single pattern matches.
type Category struct {
	Id       string
	patterns []*regexp.Regexp
}

func (c Category) Matches(text string) bool {
	for _, p := range c.patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func category(id string, exprs ...string) Category {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		patterns[i] = regexp.MustCompile(e)
	}
	return Category{Id: id, patterns: patterns}
}

// BulkFingerprints are substrings of the raw header block that identify
// mass-mail sending services, matched case-insensitively. Sending through
// such a service is cheap for an abuser and costly to avoid, which is what
// makes it worth fingerprinting.
var BulkFingerprints = []string{
	"amazonses.com",
	"sendgrid.net",
	"sparkpostmail.com",
	"mailgun.org",
	"x-ses-outgoing",
	"x-sg-eid",
}

// SensationalCategories is evaluated against subject + " " + sender into a
// count of distinct matching categories. The list was tuned against a small
// spam corpus; treat it as configuration, not as an oracle.
var SensationalCategories = []Category{
	category("sensational-adjective",
		`(?i)\b(shocking|stunning|bizarre|mysterious|secret|hidden|leaked|exposed|forbidden)\b`),
	category("alarmist-adjective",
		`(?i)\b(terrifying|alarming|devastating|horrifying|frightening|chilling|disturbing)\b`),
	category("curiosity-gap",
		`(?i)(strange|secret|hidden|mysterious|shocking|bizarre|unusual|leaked).*(picture|photo|image|video|camera|footage|document)`),
	category("urgency-scandal",
		`(?i)(breaking|urgent|warning|alert|stop|exposed|banned).*(news|truth|secret|scandal|exposed|revealed)`),
	category("urgency-word",
		`(?i)\b(warning|urgent|breaking|alert)\b`),
	category("financial-crisis",
		`(?i)(market|stock|economy|dollar|gold|bitcoin|investment|crypto).*(crash|collapse|shift|crisis|warning|alert|plunge|tank)`),
	category("caught-on",
		`(?i)caught (on|doing|in|red-handed)`),
	category("changes-everything",
		`(?i)(what|this).*(changes everything|stunned everyone|shocked|amazed|surprised)`),
	category("celebrity-claim",
		`(?i)\b(RFK|Trump|Biden|Musk|Elon|Kennedy|Obama|Fauci|Gates)\b.*(warning|says|reveals|exposes|issues|predicts|warns)`),
	category("demographic-target",
		`(?i)\b(seniors?|elderly|retirees?|boomers?|over \d{2}|born before|age \d{2})\b.*(risk|warning|alert|danger|affected|target)`),
	category("year-warning",
		`(?i)\b20[23][0-9]\b.*(warning|alert|prediction|forecast|crisis)`),
	category("conspiracy",
		`(?i)(what|who).*(hiding|don't want you|truth|they won't tell)`),
	category("war-military",
		`(?i)\b(declared war|bombed|bombing|attack|attacked|destroyed|invasion)\b`),
	category("stock-hype",
		`(?i)\$\d+(\.\d+)?\s*(a\s+)?share`,
		`(?i)\bpenny stock\b`),
	category("watch-see",
		`(?i)\b(watch|see)\s+(what|this|the moment)`),
	category("jobs-fear",
		`(?i)\b(jobs?|employment).*(disappeared|vanished|never existed|fake|fraud|layoffs?)`),
	category("bank-closure",
		`(?i)\b(banks?|branch|branches|ATMs?).*(clos|shut|disappear|eliminat)`),

	// Structural markers
	category("cjk-bracket-stamp", `【.*】`),
	category("bracketed-punch", `\[.{3,}[?!]\]`),
	category("urgency-emoji", `[💼📸⏯️🚨⚠️📰💰]`),
	category("building-emoji", `[🏦🏥🏛️🏢]`),
	category("repeated-punctuation", `\?\?\?|!!!`),
	category("watch-question", `(?i)\bWATCH\b.*\?$`),

	// Script mixing. Legitimate senders in the target locale do not mix
	// scripts; spammers do it to dodge literal keyword filters.
	category("cyrillic-script", `[\x{0400}-\x{04FF}]`),
	category("greek-script", `[\x{0370}-\x{03FF}]`),
	category("lookalike-script",
		`[\x{1D00}-\x{1DBF}]`,
		`[\x{1E00}-\x{1EFF}]`,
		`[\x{2C60}-\x{2C7F}]`,
		`[\x{A720}-\x{A7FF}]`,
		`[\x{FB00}-\x{FB4F}]`,
		`[\x{1D400}-\x{1D7FF}]`,
		`[\x{FF01}-\x{FF5E}]`),
}

// FearCategories is evaluated against subject + " " + sender with
// short-circuit on first match; fear is a flag, never a count.
var FearCategories = []Category{
	category("government-threat",
		`(?i)\b(IRS|NSA|FBI|CIA|government|federal)\b.*(warn|hiding|secret|spy|spied|spies|track|audit|investigation|admission|reveal|expose|confiscat)`),
	category("account-seizure",
		`(?i)\b(banks?|bank account|credit card|social security|identity|savings|cash|money)\b.*(seize|steal|stolen|hacked|freeze|frozen|close|closed|warning|alert|confiscat|take|taking|lost)`),
	category("health-danger",
		`(?i)\b(blood thinner|medication|drug|vaccine|doctor|FDA|health crisis|at risk)\b.*(warning|danger|deadly|killing|risk|avoid|corrupt)`),
	category("urgency-word",
		`(?i)\b(warning|alert|urgent|breaking|exposed|banned|stopped)\b`),
	category("stop-imperative",
		`(?i)\bSTOP (using|taking|doing|buying)\b`),
}

// MarketingPatterns is evaluated against the sender string only. Any match
// flags the mass-marketing sender format.
var MarketingPatterns = []Category{
	category("name-pipe-org", `["|,]\s*[A-Za-z]`),
	category("name-at-org", `(?i)\s+at\s+[A-Z]`),
	category("pipe-separator", `\|\s*`),
	category("business-vocab",
		`(?i)\b(investment|trading|wealth|profit|finance|insider|market)\s*(tools?|pro|tips?|alert)`),
	category("grow-with-prefix", `(?i)grow@with\.`),
	category("multi-level-subdomain", `(?i)@[a-z]\.[a-z]+\.(com|net)`),
}
