package mailparse

import (
	"fmt"
	"io"
	"mime"
	"regexp"
	"strings"
	"sync"

	"email-send-pipeline/internal/models"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

var (
	addressRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	stripPolicy     *bluemonday.Policy
	stripPolicyOnce sync.Once
)

// Parse reads a fetched IMAP message into a Draft
func Parse(msg *imap.Message) (*models.Draft, error) {
	section := &imap.BodySectionName{}
	r := msg.GetBody(section)
	if r == nil {
		return nil, io.EOF
	}

	draft, err := ParseReader(r)
	if err != nil {
		return nil, err
	}

	draft.UID = msg.SeqNum
	if !msg.InternalDate.IsZero() {
		draft.InternalDate = msg.InternalDate
	}
	return draft, nil
}

// ParseReader reads a raw RFC 5322 message (e.g. an .eml file) into a Draft
func ParseReader(r io.Reader) (*models.Draft, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	defer func() {
		_ = mr.Close()
	}()

	draft := &models.Draft{
		TraceID: uuid.New().String(),
	}

	header := mr.Header

	if date, err := header.Date(); err == nil {
		draft.InternalDate = date
	}

	// Extract From
	draft.From = extractEmailAddress(header.Get("From"))

	// Keep To entries as written; malformed ones are rejected by the pipeline
	if toList, err := header.AddressList("To"); err == nil {
		for _, addr := range toList {
			draft.To = append(draft.To, addr.Address)
		}
	} else {
		draft.To = splitAddressList(header.Get("To"))
	}

	// Decode Subject
	decodedSubject, err := DecodeHeader(header.Get("Subject"))
	if err != nil {
		return nil, err
	}
	draft.Subject = decodedSubject

	// Prefer text/plain, fall back to stripped text/html
	var htmlBody string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read message part: %w", err)
		}

		h, ok := p.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		contentType, _, err := h.ContentType()
		if err != nil {
			continue
		}
		body, err := io.ReadAll(p.Body)
		if err != nil {
			continue
		}

		switch contentType {
		case "text/plain":
			if draft.BodyText == "" {
				draft.BodyText = string(body)
			}
		case "text/html":
			if htmlBody == "" {
				htmlBody = string(body)
			}
		}
	}

	if draft.BodyText == "" && htmlBody != "" {
		draft.BodyText = StripHTML(htmlBody)
	}

	return draft, nil
}

// Simple regex to extract email address from "From" header, which may contain name and email.
// The raw header is returned when no address is found.
func extractEmailAddress(fromHeader string) string {
	if found := addressRe.FindString(fromHeader); found != "" {
		return found
	}
	return fromHeader
}

// splitAddressList splits a To header that mail.ParseAddressList rejected
func splitAddressList(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(header, ",") {
		if start := strings.LastIndex(part, "<"); start >= 0 {
			if end := strings.Index(part[start:], ">"); end > 0 {
				part = part[start+1 : start+end]
			}
		}
		out = append(out, part)
	}
	return out
}

// DecodeHeader decodes MIME-encoded headers (e.g., "=?UTF-8?B?...?=") to plain text
func DecodeHeader(encoded string) (string, error) {
	decoder := &mime.WordDecoder{CharsetReader: charset.Reader}
	decoded, err := decoder.DecodeHeader(encoded)
	if err != nil {
		return "", err
	}
	return decoded, nil
}

// StripHTML removes all markup and returns the text content
func StripHTML(html string) string {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(stripPolicy.Sanitize(html))
}
