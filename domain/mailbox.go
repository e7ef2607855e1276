// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/mailbox.go -package=mocks . MailboxConnector
type MailboxConnector interface {
	Select(folder string) (uint32, error)
	SearchCandidates(since time.Time, processedMarker string) ([]uint32, error)
	FetchEnvelopes(uids []uint32) ([]*MailMessage, error)
	ReportAndRemove(uids []uint32) error
	RemoveReady() (error, error)
	MoveToSpam(uids []uint32, folder string) error
	MoveReady() (error, error)
	MarkProcessed(uids []uint32, marker string) error

	Close() error
}
