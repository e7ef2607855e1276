// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mpeters/go-imap-sweeper/domain"
	"github.com/mpeters/go-imap-sweeper/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_initial",
			Up: []string{
				`CREATE TABLE folders (
					name TEXT NOT NULL PRIMARY KEY,
					uidvalidity INTEGER NOT NULL
				)`,
				`CREATE TABLE messages (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					uid INTEGER NOT NULL,
					mailidhash TEXT NOT NULL,
					foldername TEXT NOT NULL,
					subject TEXT NOT NULL,
					spam INTEGER NOT NULL,
					rule TEXT NOT NULL DEFAULT ''
				)`,
				`CREATE INDEX idx_messages_folder ON messages (foldername)`,
				`CREATE INDEX idx_messages_hash ON messages (mailidhash)`,
			},
			Down: []string{
				`DROP TABLE messages`,
				`DROP TABLE folders`,
			},
		},
		{
			Id: "2_properties",
			Up: []string{
				`CREATE TABLE properties (
					key TEXT NOT NULL PRIMARY KEY,
					value TEXT NOT NULL
				)`,
			},
			Down: []string{
				`DROP TABLE properties`,
			},
		},
	},
}

type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

func (p *Persistence) AllFolders() ([]*domain.ImapFolder, error) {
	dbFolders := []struct {
		Name        string
		UidValidity uint32 `db:"uidvalidity"`
	}{}

	err := p.db.Select(
		&dbFolders,
		`SELECT name, uidvalidity from folders`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	folders := []*domain.ImapFolder{}
	for _, f := range dbFolders {
		folders = append(
			folders,
			&domain.ImapFolder{
				Name:        f.Name,
				UidValidity: f.UidValidity,
			},
		)
	}

	p.l.WithField("Count", len(folders)).Debug("Found folders")

	return folders, nil
}

func (p *Persistence) SaveFolder(name string, uidValidity uint32) error {
	_, err := p.db.Exec(
		"INSERT OR REPLACE INTO folders (name, uidvalidity) VALUES (?, ?)",
		name,
		uidValidity,
	)

	if err != nil {
		return fmt.Errorf("could not save folder: %w", err)
	}

	p.l.WithFields(logrus.Fields{"Name": name, "UidValidity": uidValidity}).Info("Persisted folder")
	return nil
}

func (p *Persistence) MailsInFolder(folder string) ([]*domain.SavedMail, error) {
	dbMessages := []struct {
		Id         int64
		Uid        uint32
		MailIdHash string `db:"mailidhash"`
		FolderName string `db:"foldername"`
		Subject    string
		Spam       bool
		Rule       string
	}{}

	err := p.db.Select(
		&dbMessages,
		`SELECT id, uid, mailidhash, foldername, subject, spam, rule from messages WHERE foldername = ?`,
		folder,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	messages := []*domain.SavedMail{}
	for _, m := range dbMessages {
		messages = append(
			messages,
			&domain.SavedMail{
				Id:         m.Id,
				Uid:        m.Uid,
				MailIdHash: m.MailIdHash,
				FolderName: m.FolderName,
				Subject:    m.Subject,
				Spam:       m.Spam,
				Rule:       m.Rule,
			},
		)
	}

	return messages, nil
}

func (p *Persistence) HashesExist(mailIdHashes []string) (map[string]bool, error) {
	result := map[string]bool{}
	if len(mailIdHashes) == 0 {
		return result, nil
	}

	qry, args, err := sqlx.In(
		"SELECT mailidhash from messages WHERE mailidhash IN (?)",
		mailIdHashes,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create query: %w", err)
	}

	hashes := []string{}
	err = p.db.Select(
		&hashes,
		qry,
		args...,
	)

	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	for _, hash := range hashes {
		result[hash] = true
	}

	return result, nil
}

func (p *Persistence) SaveMails(mails []domain.SaveMail) error {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO messages(uid, mailidhash, foldername, subject, spam, rule) VALUES(?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
	}

	for _, mail := range mails {
		_, err := stmt.Exec(
			mail.Uid, mail.MailIdHash, mail.FolderName, mail.Subject, mail.Spam, mail.Rule,
		)

		if err != nil {
			return txEnd(tx, fmt.Errorf("could not save mail: %w", err))
		}
	}

	return txEnd(tx, nil)
}

// GetProperty implements domain.PropertyStore on the sqlite database, which
// keeps single-host setups to one state file.
func (p *Persistence) GetProperty(key string) (string, bool, error) {
	var value string
	err := p.db.Get(&value, "SELECT value from properties WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not query db: %w", err)
	}

	return value, true, nil
}

func (p *Persistence) SetProperty(key, value string) error {
	_, err := p.db.Exec(
		"INSERT OR REPLACE INTO properties (key, value) VALUES (?, ?)",
		key,
		value,
	)
	if err != nil {
		return fmt.Errorf("could not save property: %w", err)
	}

	return nil
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
