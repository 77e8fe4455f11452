package imap

import (
	"errors"
	"fmt"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
)

var ErrNotConnected = errors.New("imap: not connected")

type TLSClient struct {
	client  *client.Client
	timeout time.Duration
}

// NewTLSClient creates a client with a 30 second timeout for fetches
func NewTLSClient() *TLSClient {
	return &TLSClient{
		timeout: 30 * time.Second,
	}
}

// Connect dials the server over TLS
func (c *TLSClient) Connect(server string) error {
	cl, err := client.DialTLS(server, nil)
	if err != nil {
		return fmt.Errorf("IMAP connection error: %w", err)
	}
	c.client = cl
	return nil
}

func (c *TLSClient) Login(user, password string) error {
	if c.client == nil {
		return ErrNotConnected
	}
	if err := c.client.Login(user, password); err != nil {
		return fmt.Errorf("IMAP login: %w", err)
	}
	return nil
}

// SelectMailbox opens the mailbox read-write so processed drafts can be flagged
func (c *TLSClient) SelectMailbox(name string) error {
	if c.client == nil {
		return ErrNotConnected
	}
	if _, err := c.client.Select(name, false); err != nil {
		return fmt.Errorf("select mailbox %s: %w", name, err)
	}
	return nil
}

// ListPendingUIDs returns unseen messages received within the given duration
func (c *TLSClient) ListPendingUIDs(since time.Duration) ([]uint32, error) {
	if c.client == nil {
		return nil, ErrNotConnected
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag, imap.DeletedFlag}
	criteria.Since = time.Now().Add(-since)

	uids, err := c.client.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("error searching for pending drafts: %w", err)
	}

	return uids, nil
}

// FetchMessage retrieves the full message and its internal date
func (c *TLSClient) FetchMessage(uid uint32) (*imap.Message, error) {
	if c.client == nil {
		return nil, ErrNotConnected
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uid)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{section.FetchItem(), imap.FetchInternalDate, imap.FetchUid}

	prevTimeout := c.client.Timeout
	c.client.Timeout = c.timeout
	defer func() { c.client.Timeout = prevTimeout }()

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)

	go func() {
		done <- c.client.Fetch(seqSet, items, messages)
	}()

	var msg *imap.Message
	for m := range messages {
		msg = m
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("error fetching message UID %d: %w", uid, err)
	}

	if msg == nil {
		return nil, fmt.Errorf("no message retrieved for UID %d", uid)
	}

	return msg, nil
}

// MarkSeen flags a processed draft so the next poll skips it
func (c *TLSClient) MarkSeen(uid uint32) error {
	if c.client == nil {
		return ErrNotConnected
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uid)

	item := imap.FormatFlagsOp(imap.AddFlags, true)
	flags := []interface{}{imap.SeenFlag}

	return c.client.Store(seqSet, item, flags, nil)
}

// Close logs out; it is a no-op without a connection
func (c *TLSClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Logout()
}
