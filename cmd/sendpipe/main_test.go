package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintLetters(t *testing.T) {
	var buf bytes.Buffer
	printLetters(&buf, []string{"one", "two"})

	sep := strings.Repeat("-", 40)
	assert.Equal(t, "Всего отправлено писем: 2\n\n"+sep+"\none\n"+sep+"\ntwo\n", buf.String())
}

func TestPrintLetters_Empty(t *testing.T) {
	var buf bytes.Buffer
	printLetters(&buf, nil)

	assert.Equal(t, "Всего отправлено писем: 0\n\n", buf.String())
}

func TestDemoCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"demo"})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Всего отправлено писем: 4\n"), out)
	assert.Contains(t, out, "Кому: hello@corp.ru, от de***@study.com\n")
	assert.Contains(t, out, "Кому: user.name@domain.ru, от de***@study.com\n")
	assert.NotContains(t, out, "Кому: default@study.com")
}

func TestEMLCommand(t *testing.T) {
	raw := "From: Study <default@study.com>\r\n" +
		"To: hello@corp.ru\r\n" +
		"Subject: Hi\r\n" +
		"\r\n" +
		"line one\nline two"
	path := filepath.Join(t.TempDir(), "draft.eml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"eml", path})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Кому: hello@corp.ru, от de***@study.com\n")
	assert.Contains(t, buf.String(), "\nline one line two\n")
}

func TestBackoffFor(t *testing.T) {
	assert.Equal(t, time.Duration(0), backoffFor(1))
	assert.Equal(t, time.Duration(0), backoffFor(4))
	assert.Equal(t, 5*time.Minute, backoffFor(5))
	assert.Equal(t, 10*time.Minute, backoffFor(6))
	assert.Equal(t, 20*time.Minute, backoffFor(7))
	assert.Equal(t, failureSleepDuration, backoffFor(8))
	assert.Equal(t, failureSleepDuration, backoffFor(100))
}

func TestBatchCommand(t *testing.T) {
	cfg := "log:\n  level: warn\n" +
		"message:\n" +
		"  sender: default@study.com\n" +
		"  subject: \"Hello!\\tFriend\"\n" +
		"  body: \"Привет,\\nдруг!\"\n" +
		"  recipients: [\"default@study.com\", \" hello@corp.ru \", \"bad\"]\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"batch", "--config", path})

	require.NoError(t, rootCmd.Execute())
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Всего отправлено писем: 1\n"), out)
	assert.Contains(t, out, "Кому: hello@corp.ru, от de***@study.com\nТема: Hello! Friend, дата ")
	assert.Contains(t, out, "\nПривет, друг!\n")
}

func TestBatchCommand_MissingConfig(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"batch", "--config", filepath.Join(t.TempDir(), "missing.yaml")})

	assert.Error(t, rootCmd.Execute())
}
