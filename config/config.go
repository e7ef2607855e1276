// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database string
	RedisURL string

	ImapHost string
	User     string
	Password string

	DryRun bool

	ReportAndRemove bool
	MoveSpam        bool
	SpamFolder      string

	CheckFolders []string

	MaxItemsPerRun      int
	MaxMessageSizeBytes int
	LookbackDays        int
	ProcessedMarker     string

	MetricsListen string

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:            "sweeper.db",
		CheckFolders:        []string{"INBOX"},
		DryRun:              true,
		MaxItemsPerRun:      200,
		MaxMessageSizeBytes: 1024 * 1024,
		LookbackDays:        7,
		ProcessedMarker:     "SweeperProcessed",
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.ImapHost, "ImapHost must not be empty, set to host:port of the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.User, "User must not be empty, set to username on the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Password, "Password must not be empty, set to password of User on the imap server"); err != nil {
		return err
	}

	if c.ReportAndRemove && c.MoveSpam {
		return fmt.Errorf("ReportAndRemove and MoveSpam cannot be set at the same time")
	}

	if c.MoveSpam {
		if err := validateNonEmptyStringField(c.SpamFolder, "SpamFolder must be set if MoveSpam is set"); err != nil {
			return err
		}
	}

	if c.MaxItemsPerRun <= 0 {
		return fmt.Errorf("MaxItemsPerRun must be positive, got %d", c.MaxItemsPerRun)
	}

	if c.MaxMessageSizeBytes <= 0 {
		return fmt.Errorf("MaxMessageSizeBytes must be positive, got %d", c.MaxMessageSizeBytes)
	}

	if c.LookbackDays <= 0 {
		return fmt.Errorf("LookbackDays must be positive, got %d", c.LookbackDays)
	}

	if err := validateNonEmptyStringField(c.ProcessedMarker, "ProcessedMarker must not be empty, set to the imap keyword marking handled mails"); err != nil {
		return err
	}

	if strings.ContainsAny(c.ProcessedMarker, " \t()%*\"\\]") {
		return fmt.Errorf("ProcessedMarker must be a valid imap keyword, got %q", c.ProcessedMarker)
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
