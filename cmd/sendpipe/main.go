package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"email-send-pipeline/internal/config"
	"email-send-pipeline/internal/logging"
	"email-send-pipeline/internal/mailparse"
	"email-send-pipeline/internal/models"
	"email-send-pipeline/internal/pipeline"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "sendpipe",
	Short:         "Validate recipients and render one message per valid recipient",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in sample batch",
	RunE:  runDemo,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run the message section of the config file",
	RunE:  runBatch,
}

var emlCmd = &cobra.Command{
	Use:   "eml [file...]",
	Short: "Run each .eml file through the pipeline",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEML,
}

var outboxCmd = &cobra.Command{
	Use:   "outbox",
	Short: "Poll the IMAP drafts mailbox and render pending drafts",
	RunE:  runOutbox,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(emlCmd)
	rootCmd.AddCommand(outboxCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Log.Errorf("Error: %v", err)
		os.Exit(1)
	}
}

// sampleRequest is the batch the tool was first written against
func sampleRequest() models.SendRequest {
	return models.SendRequest{
		Sender: "default@study.com",
		Recipients: []string{
			"default@study.com", // same as sender
			" hello@corp.ru   ",
			"user@site.NET",
			"user@domain.coM",
			"user.name@domain.ru",
			"usergmail.com",    // no @
			"user@domain",      // no tld
			"user@domain.org",  // tld not allowed
			"@mail.ru",         // empty login
			"name@.com",        // empty domain
			"name@domain.comm", // tld not allowed
			"",
			"   ",
		},
		Subject: "Hello!\tFriend",
		Body:    "Привет,\nдруг!   Как дела?",
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	texts := pipeline.New(nil).SendRequest(sampleRequest())
	printLetters(cmd.OutOrStdout(), texts)
	return nil
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	texts := pipeline.New(nil).SendRequest(cfg.Message.Request())
	printLetters(cmd.OutOrStdout(), texts)
	return nil
}

func runEML(cmd *cobra.Command, args []string) error {
	p := pipeline.New(nil)
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		draft, err := mailparse.ParseReader(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		logging.Log.WithField("trace_id", draft.TraceID).Infof("Processing %s", path)
		printLetters(cmd.OutOrStdout(), p.SendRequest(draft.Request()))
	}
	return nil
}

func loadConfig() (*models.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logging.Configure(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

func printLetters(w io.Writer, texts []string) {
	_, _ = fmt.Fprintf(w, "Всего отправлено писем: %d\n\n", len(texts))

	separator := strings.Repeat("-", 40)
	for _, text := range texts {
		_, _ = fmt.Fprintln(w, separator)
		_, _ = fmt.Fprintln(w, text)
	}
}
