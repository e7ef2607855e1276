// SPDX-License-Identifier: GPL-3.0-or-later
package sweeper

import (
	"fmt"
	"sort"
	"time"

	"github.com/mpeters/go-imap-sweeper/domain"
	"github.com/mpeters/go-imap-sweeper/liststore"
	"github.com/mpeters/go-imap-sweeper/log"
	"github.com/mpeters/go-imap-sweeper/mail"
	"github.com/mpeters/go-imap-sweeper/metrics"
	"github.com/mpeters/go-imap-sweeper/rules"

	"github.com/sirupsen/logrus"
)

// DenyListedRule is the verdict rule name for deny-list hits. The deny list
// is checked before the rule engine ever runs.
const DenyListedRule = "deny-listed"

const (
	SkipReasonAlreadyRecorded = "already-recorded"
	SkipReasonOversized       = "oversized"
	SkipReasonUnparsable      = "unparsable"
)

type Sweeper struct {
	persistence domain.Persistence
	lists       *liststore.Store
	mailbox     domain.MailboxConnector
	collector   metrics.Collector

	configuration *configuration

	l *logrus.Logger
}

func NewSweeper(persistence domain.Persistence, lists *liststore.Store, mailbox domain.MailboxConnector, collector metrics.Collector, configFunc ...ConfigFunc) (*Sweeper, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	if collector == nil {
		collector = &metrics.NoopCollector{}
	}

	return &Sweeper{
		persistence:   persistence,
		lists:         lists,
		mailbox:       mailbox,
		collector:     collector,
		configuration: config,
		l:             log.Logger(log.LOG_SWEEPER),
	}, nil
}

// Run sweeps the given folders sequentially. The allow and deny lists are
// snapshotted once at the start, a list change mid-run is only observed by
// the next run.
func (s *Sweeper) Run(folders []string) error {
	lists, err := s.lists.Snapshot()
	if err != nil {
		return fmt.Errorf("could not load list snapshot: %w", err)
	}

	knownFolders, err := s.persistence.AllFolders()
	if err != nil {
		return fmt.Errorf("could not list known folders: %w", err)
	}

	for _, f := range folders {
		err := s.runFolder(f, lists, knownFolders)
		if err != nil {
			s.collector.RunError(f)
			s.l.WithFields(logrus.Fields{"folder": f, "error": err}).Error("Folder run failed")
			return err
		}
	}

	return nil
}

func (s *Sweeper) runFolder(folder string, lists *liststore.Lists, knownFolders []*domain.ImapFolder) error {
	start := time.Now()
	baseLogger := s.l.WithFields(logrus.Fields{"folder": folder})

	uidvalidity, err := s.mailbox.Select(folder)
	if err != nil {
		return fmt.Errorf("could not select folder %s: %w", folder, err)
	}

	removeSpam, moveSpam, ready, err := s.spamActionsReady(baseLogger)
	if err != nil {
		return err
	}
	if !ready {
		return nil
	}

	since := time.Now().AddDate(0, 0, -s.configuration.LookbackDays)
	candidates, err := s.mailbox.SearchCandidates(since, s.configuration.ProcessedMarker)
	if err != nil {
		return fmt.Errorf("could not search folder %s for candidates: %w", folder, err)
	}

	newUids, err := s.filterKnownUids(folder, candidates, knownFolders, uidvalidity)
	if err != nil {
		return fmt.Errorf("could not determine new mail uids: %w", err)
	}

	if len(newUids) == 0 {
		baseLogger.WithFields(logrus.Fields{"newmails": 0}).Info("Folder contains no new mails")
		err = s.persistence.SaveFolder(folder, uidvalidity)
		if err != nil {
			return fmt.Errorf("could not save uidvalidity for %s: %w", folder, err)
		}
		s.collector.RunCompleted(folder, time.Since(start))
		return nil
	}

	// Newest first, then cap the run.
	sort.Slice(newUids, func(i, j int) bool { return newUids[i] > newUids[j] })
	if len(newUids) > s.configuration.MaxItems {
		baseLogger.WithFields(logrus.Fields{"newmails": len(newUids), "maxitems": s.configuration.MaxItems}).Info("Capping run, remaining mails are picked up by the next run")
		newUids = newUids[:s.configuration.MaxItems]
	}

	mails, err := s.mailbox.FetchEnvelopes(newUids)
	if err != nil {
		return fmt.Errorf("could not fetch mail envelopes: %w", err)
	}

	// Mails the connector dropped because their headers did not parse.
	skipped := len(newUids) - len(mails)
	for i := 0; i < skipped; i++ {
		s.collector.MailSkipped(folder, SkipReasonUnparsable)
	}

	recorded, err := s.recordedHashes(mails)
	if err != nil {
		return err
	}

	ok, spam := []uint32{}, []uint32{}
	hamRecords, spamRecords := []domain.SaveMail{}, []domain.SaveMail{}
	for _, m := range mails {
		if recorded[m.MailIdHash] {
			// Known by hash from a previous uidvalidity, only the marker is missing.
			baseLogger.WithFields(logrus.Fields{"uid": m.Uid, "subject": mail.ShortSubject(m.Subject)}).Debug("Mail is already recorded, only marking processed")
			s.collector.MailSkipped(folder, SkipReasonAlreadyRecorded)
			skipped++
			ok = append(ok, m.Uid)
			continue
		}

		if m.Size > s.configuration.MaxMessageSize {
			// Deliberately not marked processed so a raised size limit
			// picks the mail up again.
			baseLogger.WithFields(logrus.Fields{"uid": m.Uid, "subject": mail.ShortSubject(m.Subject), "size": m.Size}).Info("Mail exceeds size limit, skipping")
			s.collector.MailSkipped(folder, SkipReasonOversized)
			skipped++
			continue
		}

		verdict := s.classify(m, lists)
		s.collector.MailChecked(folder, verdict.Spam, verdict.Rule)
		baseLogger.WithFields(logrus.Fields{"uid": m.Uid, "subject": mail.ShortSubject(m.Subject), "isSpam": verdict.Spam, "rule": verdict.Rule, "trace": verdict.Trace}).Debug("Checked mail")

		record := domain.SaveMail{
			Uid:        m.Uid,
			MailIdHash: m.MailIdHash,
			FolderName: folder,
			Subject:    m.Subject,
			Spam:       verdict.Spam,
			Rule:       verdict.Rule,
		}
		if verdict.Spam {
			spam = append(spam, m.Uid)
			spamRecords = append(spamRecords, record)
		} else {
			ok = append(ok, m.Uid)
			hamRecords = append(hamRecords, record)
		}
	}

	// An action failure leaves the spam in place for the next run; the ham
	// of the same batch is still marked and recorded.
	saveMails := hamRecords
	actionErr := s.actOnSpam(baseLogger, folder, spam, removeSpam, moveSpam)
	if actionErr != nil {
		baseLogger.WithFields(logrus.Fields{"spam": len(spam), "error": actionErr}).Error("Could not act on spam mails, leaving them for the next run")
	} else {
		saveMails = append(saveMails, spamRecords...)
	}

	err = s.markProcessed(baseLogger, ok, spam, removeSpam, moveSpam)
	if err != nil {
		return err
	}

	// Only then mark the mails in the database
	if len(saveMails) > 0 {
		err = s.persistence.SaveMails(saveMails)
		if err != nil {
			return fmt.Errorf("could not save mails: %w", err)
		}
	}

	err = s.persistence.SaveFolder(folder, uidvalidity)
	if err != nil {
		return fmt.Errorf("could not save uidvalidity for %s: %w", folder, err)
	}

	s.collector.RunCompleted(folder, time.Since(start))
	baseLogger.WithFields(logrus.Fields{"duration": time.Since(start), "ok": len(ok), "spam": len(spam), "skipped": skipped}).Info("Swept folder")

	return nil
}

// spamActionsReady resolves the configured spam action against the readiness
// of the selected folder. When removal is not available but a spam folder is
// configured, the run degrades to moving instead of failing.
func (s *Sweeper) spamActionsReady(baseLogger *logrus.Entry) (removeSpam bool, moveSpam bool, ready bool, err error) {
	removeSpam = s.configuration.ReportAndRemove
	moveSpam = s.configuration.MoveSpam

	if s.configuration.DryRun {
		return removeSpam, moveSpam, true, nil
	}

	if removeSpam {
		notRemoveReadyReason, err := s.mailbox.RemoveReady()
		if err != nil {
			return false, false, false, fmt.Errorf("could not check for remove readiness: %w", err)
		}

		if notRemoveReadyReason != nil {
			if s.configuration.SpamFolder != "" {
				baseLogger.WithFields(logrus.Fields{"error": notRemoveReadyReason}).Warn("Folder is not ready for mail removal, falling back to moving")
				removeSpam, moveSpam = false, true
			} else {
				baseLogger.WithFields(logrus.Fields{"error": notRemoveReadyReason}).Warn("Folder is not ready for mail removal, skipping")
				return false, false, false, nil
			}
		}
	}

	if moveSpam {
		notMoveReadyReason, err := s.mailbox.MoveReady()
		if err != nil {
			return false, false, false, fmt.Errorf("could not check for move readiness: %w", err)
		}

		if notMoveReadyReason != nil {
			baseLogger.WithFields(logrus.Fields{"error": notMoveReadyReason}).Warn("Folder is not ready for mail moving, skipping")
			return false, false, false, nil
		}
	}

	return removeSpam, moveSpam, true, nil
}

func (s *Sweeper) actOnSpam(baseLogger *logrus.Entry, folder string, spam []uint32, removeSpam bool, moveSpam bool) error {
	if len(spam) == 0 {
		return nil
	}

	if s.configuration.DryRun {
		baseLogger.WithFields(logrus.Fields{"spam": len(spam)}).Info("Not removing or moving spam mails due to dry-run")
		s.collector.SpamActioned(folder, "dry-run")
		return nil
	}

	if removeSpam {
		baseLogger.WithFields(logrus.Fields{"spam": len(spam)}).Info("Reporting and removing spam mails")
		err := s.mailbox.ReportAndRemove(spam)
		if err != nil {
			s.collector.SpamActionFailed(folder, "report-and-remove")
			return fmt.Errorf("could not report and remove spam: %w", err)
		}
		s.collector.SpamActioned(folder, "report-and-remove")
		return nil
	}

	if moveSpam {
		baseLogger.WithFields(logrus.Fields{"spam": len(spam), "destination": s.configuration.SpamFolder}).Info("Moving spam mails")
		err := s.mailbox.MoveToSpam(spam, s.configuration.SpamFolder)
		if err != nil {
			s.collector.SpamActionFailed(folder, "move")
			return fmt.Errorf("could not move spam: %w", err)
		}
		s.collector.SpamActioned(folder, "move")
		return nil
	}

	baseLogger.WithFields(logrus.Fields{"spam": len(spam)}).Info("No spam action configured, leaving spam in place")
	return nil
}

// markProcessed sets the processed marker on everything that stays in the
// folder. Removed or moved spam is gone and needs no marker; in dry-run the
// mailbox is not touched at all.
func (s *Sweeper) markProcessed(baseLogger *logrus.Entry, ok []uint32, spam []uint32, removeSpam bool, moveSpam bool) error {
	if s.configuration.DryRun {
		baseLogger.Debug("Not marking mails processed due to dry-run")
		return nil
	}

	keep := ok
	if !removeSpam && !moveSpam {
		keep = append(keep, spam...)
	}

	if len(keep) == 0 {
		return nil
	}

	err := s.mailbox.MarkProcessed(keep, s.configuration.ProcessedMarker)
	if err != nil {
		return fmt.Errorf("could not mark mails as processed: %w", err)
	}

	return nil
}

func (s *Sweeper) classify(m *domain.MailMessage, lists *liststore.Lists) domain.Verdict {
	if rules.MatchesAny(m.Sender, lists.Deny) {
		return domain.Verdict{
			Spam:  true,
			Rule:  DenyListedRule,
			Trace: []string{DenyListedRule},
		}
	}

	return rules.Classify(*m, lists.Allow)
}

// filterKnownUids drops candidates that are already recorded for this folder.
// The uid shortcut is only valid while the folder's uidvalidity is unchanged,
// otherwise the hash-based dedup after fetching catches re-numbered mails.
func (s *Sweeper) filterKnownUids(folder string, candidates []uint32, knownFolders []*domain.ImapFolder, uidValidity uint32) ([]uint32, error) {
	knownFolder := folderByName(knownFolders, folder)
	if knownFolder == nil || knownFolder.UidValidity != uidValidity {
		if knownFolder != nil {
			s.l.WithFields(logrus.Fields{"folder": folder}).Debug("Folder uidvalidity has changed, falling back to hash-based dedup")
		}
		return candidates, nil
	}

	knownMails, err := s.persistence.MailsInFolder(folder)
	if err != nil {
		return nil, fmt.Errorf("could not list known uids: %w", err)
	}

	for _, m := range knownMails {
		candidates = removeUid(candidates, m.Uid)
	}

	return candidates, nil
}

func (s *Sweeper) recordedHashes(mails []*domain.MailMessage) (map[string]bool, error) {
	if len(mails) == 0 {
		return map[string]bool{}, nil
	}

	hashes := make([]string, len(mails))
	for i, m := range mails {
		hashes[i] = m.MailIdHash
	}

	recorded, err := s.persistence.HashesExist(hashes)
	if err != nil {
		return nil, fmt.Errorf("could not look up known mail hashes: %w", err)
	}

	return recorded, nil
}

func folderByName(knownFolders []*domain.ImapFolder, folder string) *domain.ImapFolder {
	for i := 0; i < len(knownFolders); i++ {
		if knownFolders[i].Name == folder {
			return knownFolders[i]
		}
	}
	return nil
}

func removeUid(uids []uint32, uid uint32) []uint32 {
	for i := 0; i < len(uids); i++ {
		if uid == uids[i] {
			uids[len(uids)-1], uids[i] = uids[i], uids[len(uids)-1]
			uids = uids[:len(uids)-1]
			break
		}
	}
	return uids
}
