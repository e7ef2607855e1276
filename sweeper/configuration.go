// SPDX-License-Identifier: GPL-3.0-or-later
package sweeper

import "fmt"

type ConfigFunc func(c *configuration) error

func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true

		return nil
	}
}

func ReportAndRemove() ConfigFunc {
	return func(c *configuration) error {
		if c.MoveSpam {
			return fmt.Errorf("MoveSpam and ReportAndRemove cannot be used at the same time")
		}

		c.ReportAndRemove = true
		return nil
	}
}

func MoveSpam(spamFolder string) ConfigFunc {
	return func(c *configuration) error {
		if len(spamFolder) == 0 {
			return fmt.Errorf("SpamFolder cannot be null")
		}

		if c.ReportAndRemove {
			return fmt.Errorf("MoveSpam and ReportAndRemove cannot be used at the same time")
		}

		c.MoveSpam = true
		c.SpamFolder = spamFolder
		return nil
	}
}

// FallbackSpamFolder sets the destination used when removal is configured
// but the selected folder is not ready for it. Without it such folders are
// skipped.
func FallbackSpamFolder(spamFolder string) ConfigFunc {
	return func(c *configuration) error {
		if len(spamFolder) == 0 {
			return fmt.Errorf("SpamFolder cannot be null")
		}

		if c.MoveSpam {
			return fmt.Errorf("FallbackSpamFolder is only useful together with ReportAndRemove")
		}

		c.SpamFolder = spamFolder
		return nil
	}
}

func MaxItems(items int) ConfigFunc {
	return func(c *configuration) error {
		if items <= 0 {
			return fmt.Errorf("MaxItems must be positive")
		}

		c.MaxItems = items
		return nil
	}
}

func MaxMessageSize(sizeBytes uint32) ConfigFunc {
	return func(c *configuration) error {
		if sizeBytes == 0 {
			return fmt.Errorf("MaxMessageSize must be positive")
		}

		c.MaxMessageSize = sizeBytes
		return nil
	}
}

func Lookback(days int) ConfigFunc {
	return func(c *configuration) error {
		if days <= 0 {
			return fmt.Errorf("Lookback must be positive")
		}

		c.LookbackDays = days
		return nil
	}
}

func ProcessedMarker(marker string) ConfigFunc {
	return func(c *configuration) error {
		if len(marker) == 0 {
			return fmt.Errorf("ProcessedMarker cannot be null")
		}

		c.ProcessedMarker = marker
		return nil
	}
}

type configuration struct {
	DryRun bool

	ReportAndRemove bool
	MoveSpam        bool

	SpamFolder string

	MaxItems       int
	MaxMessageSize uint32
	LookbackDays   int

	ProcessedMarker string
}

func defaultConfiguration() *configuration {
	return &configuration{
		MaxItems:        200,
		MaxMessageSize:  1024 * 1024,
		LookbackDays:    7,
		ProcessedMarker: "SweeperProcessed",
	}
}
