package main

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	imapclient "email-send-pipeline/internal/imap"
	"email-send-pipeline/internal/logging"
	"email-send-pipeline/internal/models"
	"email-send-pipeline/internal/outbox"
	"email-send-pipeline/internal/pipeline"
)

var imapFailureCount atomic.Int32

const failureSleepDuration = 30 * time.Minute

func runOutbox(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logging.Log.Infof("Starting outbox polling of %s, refresh every %s", cfg.Outbox.MailBox, cfg.Outbox.RefreshTime)

	p := pipeline.New(nil)
	for {
		fetchAndProcessDrafts(cmd.OutOrStdout(), cfg, p)
		time.Sleep(cfg.Outbox.RefreshTime)
	}
}

// fetchAndProcessDrafts connects to the IMAP server, lists pending drafts and renders them
func fetchAndProcessDrafts(w io.Writer, cfg *models.Config, p *pipeline.Pipeline) {
	client := imapclient.NewTLSClient()

	if err := client.Connect(cfg.Outbox.Imap); err != nil {
		handleIMAPFailure(err)
		return
	}
	defer func(client *imapclient.TLSClient) {
		_ = client.Close()
	}(client)

	// Reset failure count on successful connection
	imapFailureCount.Store(0)

	if err := client.Login(cfg.Outbox.Login, cfg.Outbox.Password); err != nil {
		logging.Log.Errorf("Login error: %v", err)
		return
	}

	if err := client.SelectMailbox(cfg.Outbox.MailBox); err != nil {
		logging.Log.Errorf("Folder selection error: %v", err)
		return
	}

	uids, err := client.ListPendingUIDs(cfg.Outbox.Window)
	if err != nil {
		logging.Log.Errorf("Error searching for pending drafts: %v", err)
		return
	}

	if len(uids) == 0 {
		return
	}

	processor := outbox.NewProcessor(client, p, cfg.Outbox.Window)
	for _, uid := range uids {
		texts, err := processor.ProcessMessage(uid)
		if err != nil {
			logging.Log.Errorf("Error processing draft UID %d: %v", uid, err)
			continue
		}
		if len(texts) > 0 {
			printLetters(w, texts)
		}
	}
}

// handleIMAPFailure increments the failure count and backs off exponentially after five failures
func handleIMAPFailure(err error) {
	failures := imapFailureCount.Add(1)
	logging.Log.Errorf("IMAP connection error: %v", err)

	if backoff := backoffFor(failures); backoff > 0 {
		logging.Log.Warnf("IMAP failed %d times, waiting %s before next attempt", failures, backoff)
		time.Sleep(backoff)
	}
}

func backoffFor(failures int32) time.Duration {
	if failures < 5 {
		return 0
	}

	base := 5 * time.Minute
	maxSteps := int32(10)

	n := failures - 5
	if n > maxSteps {
		n = maxSteps
	}

	backoff := base * time.Duration(1<<n)
	if backoff > failureSleepDuration {
		backoff = failureSleepDuration
	}
	return backoff
}
