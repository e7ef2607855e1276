// SPDX-License-Identifier: GPL-3.0-or-later

// Package liststore persists the allow and deny lists as JSON arrays of
// lowercase substrings behind a domain.PropertyStore. The sweeper takes a
// snapshot once per run; a list mutation made mid-run is only observed on
// the next run.
package liststore

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mpeters/go-imap-sweeper/domain"
	"github.com/mpeters/go-imap-sweeper/log"

	"github.com/sirupsen/logrus"
)

const (
	AllowListKey = "allowlist"
	DenyListKey  = "denylist"
)

// Lists is a read-only snapshot of both lists.
type Lists struct {
	Allow []string
	Deny  []string
}

type Store struct {
	props domain.PropertyStore

	l *logrus.Logger
}

func NewStore(props domain.PropertyStore) *Store {
	return &Store{
		props: props,
		l:     log.Logger(log.LOG_LISTSTORE),
	}
}

// Snapshot loads both lists. A missing property is an empty list, not an
// error.
func (s *Store) Snapshot() (*Lists, error) {
	allow, err := s.loadList(AllowListKey)
	if err != nil {
		return nil, err
	}

	deny, err := s.loadList(DenyListKey)
	if err != nil {
		return nil, err
	}

	s.l.WithFields(logrus.Fields{"allow": len(allow), "deny": len(deny)}).Debug("Loaded list snapshot")

	return &Lists{Allow: allow, Deny: deny}, nil
}

func (s *Store) SaveAllowList(entries []string) error {
	return s.saveList(AllowListKey, entries)
}

func (s *Store) SaveDenyList(entries []string) error {
	return s.saveList(DenyListKey, entries)
}

func (s *Store) loadList(key string) ([]string, error) {
	value, found, err := s.props.GetProperty(key)
	if err != nil {
		return nil, fmt.Errorf("could not load property %s: %w", key, err)
	}
	if !found {
		return []string{}, nil
	}

	entries := []string{}
	err = json.Unmarshal([]byte(value), &entries)
	if err != nil {
		return nil, fmt.Errorf("could not deserialize property %s: %w", key, err)
	}

	// Entries are stored lowercase, but the store is shared external state
	// so they are lowered again on the way in.
	for i := range entries {
		entries[i] = strings.ToLower(strings.TrimSpace(entries[i]))
	}

	return entries, nil
}

func (s *Store) saveList(key string, entries []string) error {
	normalized := []string{}
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		normalized = append(normalized, entry)
	}

	serialized, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("could not serialize property %s: %w", key, err)
	}

	err = s.props.SetProperty(key, string(serialized))
	if err != nil {
		return fmt.Errorf("could not save property %s: %w", key, err)
	}

	s.l.WithFields(logrus.Fields{"key": key, "entries": len(normalized)}).Info("Persisted list")
	return nil
}
