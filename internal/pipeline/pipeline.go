// Package pipeline turns a raw send request into one rendered text per valid recipient.
//
// Every gating failure (empty recipient list, invalid addresses, blank subject or
// body, only self-sends left) collapses the whole run to an empty result. The
// reason is logged at debug level and is not returned to the caller.
package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"email-send-pipeline/internal/address"
	"email-send-pipeline/internal/compose"
	"email-send-pipeline/internal/logging"
	"email-send-pipeline/internal/mailtext"
	"email-send-pipeline/internal/models"
	"email-send-pipeline/internal/render"
)

// Clock returns the current time. It is read once when dates are attached and
// once more per record when rendering.
type Clock func() time.Time

type Pipeline struct {
	now Clock
}

// New creates a Pipeline reading dates from clock. A nil clock uses time.Now.
func New(clock Clock) *Pipeline {
	if clock == nil {
		clock = time.Now
	}
	return &Pipeline{now: clock}
}

// Send validates the inputs and renders one message per valid recipient
// that is not the sender, in the original recipient order.
func (p *Pipeline) Send(recipients []string, subject, body, sender string) []string {
	return p.SendRequest(models.SendRequest{
		Sender:     sender,
		Recipients: recipients,
		Subject:    subject,
		Body:       body,
	})
}

// SendRequest is Send for a request value. A missing TraceID is generated.
func (p *Pipeline) SendRequest(req models.SendRequest) []string {
	traceID := req.TraceID
	if traceID == "" {
		traceID = uuid.New().String()
	}
	locallog := logging.Log.WithField("trace_id", traceID)

	if len(req.Recipients) == 0 {
		skip(locallog, "empty recipient list")
		return []string{}
	}

	validSender := address.FilterValid([]string{req.Sender})
	recipients := address.FilterValid(req.Recipients)
	if len(validSender) == 0 || len(recipients) == 0 {
		skip(locallog, "no valid sender or recipients")
		return []string{}
	}

	// Checked on the raw text, before cleaning.
	subjectEmpty, bodyEmpty := mailtext.CheckEmptyFields(req.Subject, req.Body)
	if subjectEmpty || bodyEmpty {
		skip(locallog, "blank subject or body")
		return []string{}
	}

	sender := address.Normalize(validSender[0])
	recipients = withoutSelf(recipients, sender)
	if len(recipients) == 0 {
		skip(locallog, "only self-sends")
		return []string{}
	}

	subject := mailtext.Clean(req.Subject)
	body := mailtext.Clean(req.Body)
	recipients = address.NormalizeAll(recipients)

	records := make([]models.EmailRecord, 0, len(recipients))
	for _, recipient := range recipients {
		records = append(records, compose.Compose(sender, recipient, subject, body))
	}

	sendTime := p.now()
	for i := range records {
		records[i] = compose.WithSendDate(records[i], sendTime)
	}

	// The sender passed validation, so it always has exactly one "@".
	login, domain, _ := address.Split(sender)
	masked := address.Mask(login, domain)
	for i := range records {
		records[i] = records[i].WithSender(masked)
	}

	for i := range records {
		records[i] = compose.WithShortBody(records[i])
	}

	texts := make([]string, 0, len(records))
	for _, record := range records {
		texts = append(texts, render.Text(record, p.now()))
	}

	locallog.WithField("count", len(texts)).Info("Messages rendered")
	return texts
}

// Send runs a Pipeline backed by the system clock.
func Send(recipients []string, subject, body, sender string) []string {
	return New(nil).Send(recipients, subject, body, sender)
}

func withoutSelf(recipients []string, sender string) []string {
	var kept []string
	for _, r := range recipients {
		if address.Normalize(r) != sender {
			kept = append(kept, r)
		}
	}
	return kept
}

func skip(locallog *logrus.Entry, reason string) {
	locallog.WithField("reason", reason).Debug("Nothing to send")
}
