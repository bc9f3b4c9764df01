package contact

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meertayyab/portfolio/internal/config"
)

var testSMTP = config.SMTPConfig{
	Host: "smtp.example.com",
	Port: "587",
	User: "site@example.com",
	Pass: "secret",
	To:   "me@example.com",
}

func TestNewRelayRequiresCredentials(t *testing.T) {
	assert.Nil(t, NewRelay(config.SMTPConfig{Host: "smtp.example.com"}, nil))
	assert.NotNil(t, NewRelay(testSMTP, nil))
}

func TestNilRelay(t *testing.T) {
	var r *SMTPRelay
	assert.ErrorIs(t, r.Send(context.Background(), Message{}), ErrNotConfigured)
}

func TestSend(t *testing.T) {
	r := NewRelay(testSMTP, nil)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	r.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := r.Send(context.Background(), Message{
		Name:    "Ada\r\nBcc: victim@example.com",
		Email:   "ada@example.com",
		Message: "Hello there",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "site@example.com", gotFrom)
	assert.Equal(t, []string{"me@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "To: me@example.com\r\n")
	assert.Contains(t, msg, "Subject: Portfolio Contact: Ada  Bcc: victim@example.com\r\n")
	assert.Contains(t, msg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, msg, "Hello there")
	headers := strings.SplitN(msg, "\r\n\r\n", 2)[0]
	assert.NotContains(t, headers, "\r\nBcc:")
}

func TestSendError(t *testing.T) {
	r := NewRelay(testSMTP, nil)
	boom := errors.New("connection refused")
	r.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }

	assert.ErrorIs(t, r.Send(context.Background(), Message{Name: "x"}), boom)
}

func TestSendCancelled(t *testing.T) {
	r := NewRelay(testSMTP, nil)
	r.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Send(ctx, Message{}), context.Canceled)
}
