// SPDX-License-Identifier: GPL-3.0-or-later
package rules

import "strings"

// IsAllowed reports whether any list entry is a case-insensitive substring
// of the sender. Partial-string matches are the only supported mechanism;
// there is no wildcard syntax. The function is total: an empty list or an
// empty/malformed sender yields false.
func IsAllowed(sender string, list []string) bool {
	return MatchesAny(sender, list)
}

// MatchesAny is the shared substring matcher behind both the allow list
// and the deny list.
func MatchesAny(text string, list []string) bool {
	if text == "" || len(list) == 0 {
		return false
	}

	lowered := strings.ToLower(text)
	for _, entry := range list {
		if entry == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(entry)) {
			return true
		}
	}

	return false
}
