// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

//go:generate mockgen -destination=imap_mocks_test.go -package=imapconnection -source imap.go

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/mpeters/go-imap-sweeper/domain"
	"github.com/mpeters/go-imap-sweeper/log"
	"github.com/mpeters/go-imap-sweeper/mail"

	"github.com/emersion/go-imap"
	move "github.com/emersion/go-imap-move"
	uidplus "github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

// fetchClient is the slice of the imap client the envelope fetch needs.
type fetchClient interface {
	UidFetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
}

type ImapConnection struct {
	connection  *client.Client
	fetcher     fetchClient
	mailRemover remover
	mailMover   mover

	server, user, password string

	selectedFolder string

	l *logrus.Logger
}

func NewImapConnection(server string, user string, password string) (*ImapConnection, error) {
	imapClient, err := client.DialTLS(server, nil)
	if err != nil {
		return nil, fmt.Errorf("could not dial to imap: %w", err)
	}

	err = imapClient.Login(user, password)
	if err != nil {
		return nil, fmt.Errorf("could not login to imap: %w", err)
	}

	uidPlusClient := uidplus.NewClient(imapClient)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		return nil, fmt.Errorf("could not check for UIDPLUS support: %w", err)
	}

	moveClient := move.NewClient(imapClient)
	moveSupported, err := moveClient.SupportMove()
	if err != nil {
		return nil, fmt.Errorf("could not check for MOVE support: %w", err)
	}

	conn := &ImapConnection{
		connection: imapClient,
		fetcher:    imapClient,
		server:     server,
		user:       user,
		password:   password,
		l:          log.Logger(log.LOG_IMAP),
	}

	baseLogger := conn.l.WithFields(logrus.Fields{"server": server})
	baseLogger.Debug("Logged in to server")

	if uidPlusSupported {
		baseLogger.Debug("UIDPLUS supported on server, using UID remove")
		conn.mailRemover = &uidPlusRemover{
			imapConn:      conn,
			uidplusClient: uidPlusClient,
		}
	} else {
		baseLogger.Info("UIDPLUS not supported on server, falling back to flag&expunge")
		conn.mailRemover = &compatibilityRemover{
			imapConn: conn,
		}
	}

	if moveSupported {
		baseLogger.Debug("MOVE supported on server")
		conn.mailMover = &moveMover{
			moveClient: moveClient,
		}
	} else {
		baseLogger.Info("MOVE not supported on server, falling back to copy&remove")
		conn.mailMover = &compatibilityMover{
			imapConn: conn,
		}
	}

	return conn, nil
}

func (ic *ImapConnection) Select(folder string) (uint32, error) {
	m, err := ic.connection.Select(folder, false)
	if err != nil {
		return 0, fmt.Errorf("could not select folder: %w", err)
	}

	ic.selectedFolder = folder
	return m.UidValidity, nil
}

// SearchCandidates lists uids of mails received since the given time that
// do not carry the processed marker keyword yet.
func (ic *ImapConnection) SearchCandidates(since time.Time, processedMarker string) ([]uint32, error) {
	criteria := imap.NewSearchCriteria()
	criteria.Since = since
	criteria.WithoutFlags = []string{processedMarker, imap.DeletedFlag}

	ids, err := ic.connection.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search folder: %w", err)
	}

	return ids, nil
}

// FetchEnvelopes fetches header blocks and sizes only. The rule engine
// never needs bodies, so they stay on the server.
func (ic *ImapConnection) FetchEnvelopes(uids []uint32) ([]*domain.MailMessage, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)

	section := &imap.BodySectionName{
		BodyPartName: imap.BodyPartName{
			Specifier: imap.HeaderSpecifier,
		},
		Peek: true,
	}
	fetchItems := []imap.FetchItem{section.FetchItem(), imap.FetchRFC822Size, imap.FetchUid}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- ic.fetcher.UidFetch(seqset, fetchItems, messages)
	}()

	mails := []*domain.MailMessage{}
	for msg := range messages {
		r := msg.GetBody(section)
		if r == nil {
			return nil, fmt.Errorf("no header section in fetch response for uid %d", msg.Uid)
		}
		rawHeaders, err := ioutil.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("could not read mail headers: %w", err)
		}

		info, err := mail.ParseHeaders(rawHeaders)
		if err != nil {
			// A single broken mail must not abort the whole batch.
			ic.l.WithFields(logrus.Fields{"uid": msg.Uid, "error": err}).Warn("Could not parse mail headers, skipping mail")
			continue
		}

		mails = append(
			mails,
			&domain.MailMessage{
				Uid:        msg.Uid,
				Subject:    info.Subject,
				Sender:     info.Sender,
				RawHeaders: info.RawHeaders,
				Size:       msg.Size,
				MailIdHash: info.MailIdHash,
			},
		)
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch mails: %w", err)
	}

	return mails, nil
}

// ReportAndRemove marks the mails deleted server-side and expunges them.
// The verdict record in persistence is the durable report; IMAP has no
// first-class spam reporting operation.
func (ic *ImapConnection) ReportAndRemove(uids []uint32) error {
	return ic.mailRemover.remove(uids)
}

func (ic *ImapConnection) RemoveReady() (error, error) {
	return ic.mailRemover.removeReady()
}

func (ic *ImapConnection) MoveToSpam(uids []uint32, folder string) error {
	return ic.mailMover.move(uids, folder)
}

func (ic *ImapConnection) MoveReady() (error, error) {
	return ic.mailMover.moveReady()
}

// MarkProcessed sets the processed marker keyword so the next run's search
// skips these mails even if the local database is lost.
func (ic *ImapConnection) MarkProcessed(uids []uint32, marker string) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err := ic.connection.UidStore(seqset, imap.FormatFlagsOp(imap.AddFlags, true), []interface{}{marker}, nil)
	if err != nil {
		return fmt.Errorf("could not set processed marker: %w", err)
	}

	return nil
}

func (ic *ImapConnection) Close() error {
	return ic.connection.Logout()
}

func (ic *ImapConnection) flagDeleted(uids []uint32) (*imap.SeqSet, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err := ic.connection.UidStore(seqset, imap.FormatFlagsOp(imap.AddFlags, true), []interface{}{imap.DeletedFlag}, nil)
	if err != nil {
		return nil, fmt.Errorf("could not set delete flag: %w", err)
	}

	return seqset, nil
}

// Forwarders so ImapConnection satisfies the remover and mover client
// interfaces of the compatibility fallbacks.

func (ic *ImapConnection) Expunge(ch chan uint32) error {
	return ic.connection.Expunge(ch)
}

func (ic *ImapConnection) UidSearch(criteria *imap.SearchCriteria) ([]uint32, error) {
	return ic.connection.UidSearch(criteria)
}

func (ic *ImapConnection) UidCopy(seqset *imap.SeqSet, dest string) error {
	return ic.connection.UidCopy(seqset, dest)
}

func (ic *ImapConnection) remove(uids []uint32) error {
	return ic.mailRemover.remove(uids)
}

func (ic *ImapConnection) removeReady() (error, error) {
	return ic.mailRemover.removeReady()
}
