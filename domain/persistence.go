// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . Persistence
type ImapFolder struct {
	Name        string
	UidValidity uint32
}

type SavedMail struct {
	Id         int64
	Uid        uint32
	MailIdHash string
	FolderName string
	Subject    string
	Spam       bool
	Rule       string
}

type SaveMail struct {
	Uid        uint32
	MailIdHash string
	FolderName string
	Subject    string
	Spam       bool
	Rule       string
}

type Persistence interface {
	Close() error
	AllFolders() ([]*ImapFolder, error)
	SaveFolder(name string, uidValidity uint32) error
	MailsInFolder(folder string) ([]*SavedMail, error)
	HashesExist(mailIdHashes []string) (map[string]bool, error)
	SaveMails(mails []SaveMail) error
}
