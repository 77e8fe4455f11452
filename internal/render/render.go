package render

import (
	"fmt"
	"time"

	"email-send-pipeline/internal/models"
)

const textTemplate = "Кому: %s, от %s\nТема: %s, дата %s\n%s"

// Text renders a record into its final text block. The sender is expected to be
// masked already. A record without a date gets the date of now.
func Text(record models.EmailRecord, now time.Time) string {
	date := record.Date
	if !record.HasDate() {
		date = now.Format(models.DateLayout)
	}

	return fmt.Sprintf(textTemplate, record.Recipient, record.Sender, record.Subject, date, record.Body)
}
