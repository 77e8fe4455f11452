package outbox

import (
	"fmt"
	"time"

	imapclient "email-send-pipeline/internal/imap"
	"email-send-pipeline/internal/logging"
	"email-send-pipeline/internal/mailparse"
	"email-send-pipeline/internal/models"
	"email-send-pipeline/internal/pipeline"
)

type Processor struct {
	imapClient imapclient.Client
	pipeline   *pipeline.Pipeline
	window     time.Duration
	now        func() time.Time
}

// NewProcessor creates a Processor that skips drafts older than window
func NewProcessor(imapClient imapclient.Client, p *pipeline.Pipeline, window time.Duration) *Processor {
	return &Processor{
		imapClient: imapClient,
		pipeline:   p,
		window:     window,
		now:        time.Now,
	}
}

// ProcessMessage runs one draft end to end:
// fetch → parse → check age → send pipeline → mark as seen.
// It returns the rendered texts, empty when nothing was produced.
func (p *Processor) ProcessMessage(uid uint32) ([]string, error) {
	msg, err := p.imapClient.FetchMessage(uid)
	if err != nil {
		return nil, err
	}

	draft, err := mailparse.Parse(msg)
	if err != nil {
		logging.Log.WithField("trace_id", "unknown").Errorf("Error parsing draft UID %d: %v", uid, err)
		return nil, fmt.Errorf("parse draft UID %d: %w", uid, err)
	}

	locallog := logging.Log.WithField("trace_id", draft.TraceID)

	if !p.isFreshAt(draft, p.now()) {
		locallog.Infof("Draft UID %d is older than %v (date: %v), skipping", uid, p.window, draft.InternalDate)
		return nil, nil
	}

	texts := p.pipeline.SendRequest(draft.Request())
	if len(texts) == 0 {
		locallog.Infof("Draft UID %d produced no messages", uid)
		return texts, nil
	}

	// Only drafts that produced output are flagged, the rest stay for inspection
	if err := p.imapClient.MarkSeen(uid); err != nil {
		locallog.Errorf("Error marking draft UID %d as seen: %v", uid, err)
	}

	return texts, nil
}

// isFreshAt reports whether the draft falls inside the window ending at now
func (p *Processor) isFreshAt(draft *models.Draft, now time.Time) bool {
	if draft.InternalDate.IsZero() || p.window <= 0 {
		return true
	}

	cutoff := now.Add(-p.window)
	return !draft.InternalDate.Before(cutoff) // inclusive
}
