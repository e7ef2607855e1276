// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import "github.com/emersion/go-imap"

//go:generate mockgen -destination=remove_move_mocks_test.go -package=imapconnection -source remove_move.go

// Consolidated file for remover and mover interfaces used by imapconnection
// plus the copyAndRemoveMoveClient so gomock can generate mocks properly.
// Unexported interfaces do not allow for reflection mode but source-mode
// fails if there are embedded interfaces spread over multiple source files.

type remover interface {
	remove([]uint32) error
	removeReady() (error, error)
}

type mover interface {
	move(uids []uint32, folder string) error
	moveReady() (error, error)
}

type copyAndRemoveMoveClient interface {
	remover
	UidCopy(seqset *imap.SeqSet, dest string) error
}
