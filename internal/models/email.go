package models

import "time"

// DateLayout is the send date format (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// SendRequest represents the raw input of one send pipeline run
type SendRequest struct {
	Sender     string
	Recipients []string
	Subject    string
	Body       string
	TraceID    string
}

// Draft represents a parsed message waiting to go through the send pipeline
type Draft struct {
	UID          uint32
	From         string
	To           []string
	Subject      string
	BodyText     string
	InternalDate time.Time
	TraceID      string
}

// Request converts the draft into a pipeline request, keeping addresses as written
func (d *Draft) Request() SendRequest {
	return SendRequest{
		Sender:     d.From,
		Recipients: d.To,
		Subject:    d.Subject,
		Body:       d.BodyText,
		TraceID:    d.TraceID,
	}
}

// EmailRecord represents one outgoing message addressed to a single recipient.
// Date and ShortBody are empty until the matching derivation step runs.
type EmailRecord struct {
	Sender    string
	Recipient string
	Subject   string
	Body      string
	Date      string
	ShortBody string
}

// HasDate reports whether a send date has been attached
func (r EmailRecord) HasDate() bool {
	return r.Date != ""
}

// WithSender returns a copy of the record with the sender replaced
func (r EmailRecord) WithSender(sender string) EmailRecord {
	r.Sender = sender
	return r
}
