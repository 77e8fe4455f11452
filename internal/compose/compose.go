// Package compose builds EmailRecord values and attaches derived fields.
// Every step returns a new record and leaves its input untouched.
package compose

import (
	"time"

	"email-send-pipeline/internal/models"
)

const (
	shortBodyLen    = 10
	shortBodySuffix = "..."
)

// Compose creates a record from already normalized addresses and cleaned text.
func Compose(sender, recipient, subject, body string) models.EmailRecord {
	return models.EmailRecord{
		Sender:    sender,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	}
}

// WithSendDate sets the date to now (YYYY-MM-DD) unless the record already has one.
func WithSendDate(record models.EmailRecord, now time.Time) models.EmailRecord {
	if record.HasDate() {
		return record
	}
	record.Date = now.Format(models.DateLayout)
	return record
}

// WithShortBody sets ShortBody to the first ten characters of the body plus "...".
func WithShortBody(record models.EmailRecord) models.EmailRecord {
	record.ShortBody = ShortBody(record.Body)
	return record
}

// ShortBody returns the first ten characters of body followed by "...".
// Shorter bodies get the suffix too.
func ShortBody(body string) string {
	runes := []rune(body)
	if len(runes) > shortBodyLen {
		runes = runes[:shortBodyLen]
	}
	return string(runes) + shortBodySuffix
}
