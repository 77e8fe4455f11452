package models

import "time"

// Config represents the application configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Message MessageConfig `yaml:"message"`
	Outbox  OutboxConfig  `yaml:"outbox"`
}

// LogConfig represents logger settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "text"
}

// MessageConfig represents a single batch to run through the send pipeline
type MessageConfig struct {
	Sender     string   `yaml:"sender"`
	Subject    string   `yaml:"subject"`
	Body       string   `yaml:"body"`
	Recipients []string `yaml:"recipients"`
}

// OutboxConfig represents the IMAP mailbox holding pending drafts
type OutboxConfig struct {
	Imap        string        `yaml:"imap"`
	Login       string        `yaml:"login"`
	Password    string        `yaml:"password"`
	MailBox     string        `yaml:"mailbox"`
	RefreshTime time.Duration `yaml:"refreshTime"` // ex: "30s", "1m"
	Window      time.Duration `yaml:"window"`
}

// Request converts the batch section into a pipeline request
func (m MessageConfig) Request() SendRequest {
	return SendRequest{
		Sender:     m.Sender,
		Recipients: m.Recipients,
		Subject:    m.Subject,
		Body:       m.Body,
	}
}
