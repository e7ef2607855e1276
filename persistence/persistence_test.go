// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"path/filepath"
	"testing"

	"github.com/mpeters/go-imap-sweeper/domain"
	"github.com/mpeters/go-imap-sweeper/log"

	"github.com/stretchr/testify/assert"
)

func testPersistence(t *testing.T) *Persistence {
	t.Helper()
	log.InitLogging("error")

	p, err := NewPersistence(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, p.Close())
	})

	return p
}

func TestPersistence_Folders(t *testing.T) {
	p := testPersistence(t)

	folders, err := p.AllFolders()
	assert.NoError(t, err)
	assert.Empty(t, folders)

	assert.NoError(t, p.SaveFolder("INBOX", 123))
	assert.NoError(t, p.SaveFolder("INBOX", 124))
	assert.NoError(t, p.SaveFolder("Newsletters", 7))

	folders, err = p.AllFolders()
	assert.NoError(t, err)
	assert.ElementsMatch(t, folders, []*domain.ImapFolder{
		{Name: "INBOX", UidValidity: 124},
		{Name: "Newsletters", UidValidity: 7},
	})
}

func TestPersistence_Mails(t *testing.T) {
	p := testPersistence(t)

	err := p.SaveMails([]domain.SaveMail{
		{Uid: 1, MailIdHash: "a", FolderName: "INBOX", Subject: "one", Spam: false},
		{Uid: 2, MailIdHash: "b", FolderName: "INBOX", Subject: "two", Spam: true, Rule: "bulk + sensational"},
		{Uid: 3, MailIdHash: "c", FolderName: "Other", Subject: "three", Spam: false},
	})
	assert.NoError(t, err)

	mails, err := p.MailsInFolder("INBOX")
	assert.NoError(t, err)
	assert.Len(t, mails, 2)

	uids := []uint32{}
	for _, m := range mails {
		uids = append(uids, m.Uid)
	}
	assert.ElementsMatch(t, uids, []uint32{1, 2})

	for _, m := range mails {
		if m.Uid == 2 {
			assert.True(t, m.Spam)
			assert.Equal(t, "bulk + sensational", m.Rule)
		}
	}
}

func TestPersistence_HashesExist(t *testing.T) {
	p := testPersistence(t)

	err := p.SaveMails([]domain.SaveMail{
		{Uid: 1, MailIdHash: "a", FolderName: "INBOX", Subject: "one"},
		{Uid: 2, MailIdHash: "b", FolderName: "INBOX", Subject: "two"},
	})
	assert.NoError(t, err)

	exists, err := p.HashesExist([]string{"a", "c"})
	assert.NoError(t, err)
	assert.Equal(t, map[string]bool{"a": true}, exists)

	exists, err = p.HashesExist(nil)
	assert.NoError(t, err)
	assert.Empty(t, exists)
}

func TestPersistence_Properties(t *testing.T) {
	p := testPersistence(t)

	_, found, err := p.GetProperty("allowlist")
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, p.SetProperty("allowlist", `["aunt carol","example.com"]`))
	assert.NoError(t, p.SetProperty("allowlist", `["example.com"]`))

	value, found, err := p.GetProperty("allowlist")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["example.com"]`, value)
}
