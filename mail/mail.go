// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"mime"
	stdmail "net/mail"
	"strings"

	"github.com/emersion/go-message/charset"
)

// HeaderInfo is everything the sweeper needs from a fetched header block:
// the decoded subject and sender, the raw header text for infrastructure
// fingerprinting and a stable hash identifying the message across uid
// validity changes.
type HeaderInfo struct {
	Subject    string
	Sender     string
	RawHeaders string
	MailIdHash string
}

// ParseHeaders extracts HeaderInfo from a raw header block (or a full raw
// message; anything after the blank line is ignored).
func ParseHeaders(rawHeaders []byte) (*HeaderInfo, error) {
	msg, err := stdmail.ReadMessage(bytes.NewReader(ensureBody(rawHeaders)))
	if err != nil {
		return nil, fmt.Errorf("could not parse mail: %w", err)
	}

	messageIdHeader := msg.Header["Message-Id"]
	receivedHeader := msg.Header["Received"]
	if len(receivedHeader) == 0 && len(messageIdHeader) == 0 {
		return nil, fmt.Errorf("Received and Message-Id header not found")
	}

	dec := &mime.WordDecoder{
		CharsetReader: charset.Reader,
	}

	subject, err := dec.DecodeHeader(msg.Header.Get("Subject"))
	if err != nil {
		return nil, fmt.Errorf("could not decode subject header: %w", err)
	}

	sender, err := dec.DecodeHeader(msg.Header.Get("From"))
	if err != nil {
		return nil, fmt.Errorf("could not decode from header: %w", err)
	}

	mailIdHash, err := hash([][]string{messageIdHeader, receivedHeader})
	if err != nil {
		return nil, fmt.Errorf("could not hash headers: %w", err)
	}

	return &HeaderInfo{
		Subject:    subject,
		Sender:     sender,
		RawHeaders: headerBlock(rawHeaders),
		MailIdHash: mailIdHash,
	}, nil
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}

// net/mail requires a blank line after the headers; IMAP header fetches
// usually end with one but are not required to.
func ensureBody(raw []byte) []byte {
	if bytes.Contains(raw, []byte("\r\n\r\n")) || bytes.Contains(raw, []byte("\n\n")) {
		return raw
	}
	return append(append([]byte{}, raw...), []byte("\r\n\r\n")...)
}

func headerBlock(raw []byte) string {
	s := string(raw)
	if idx := strings.Index(s, "\r\n\r\n"); idx >= 0 {
		return s[:idx]
	}
	if idx := strings.Index(s, "\n\n"); idx >= 0 {
		return s[:idx]
	}
	return s
}

func hash(input [][]string) (string, error) {
	sha := sha256.New()
	for _, i := range input {
		for _, ii := range i {
			_, err := sha.Write([]byte(ii))
			if err != nil {
				return "", fmt.Errorf("could not hash: %w", err)
			}
		}
	}

	return fmt.Sprintf("%x", sha.Sum(nil)), nil
}
