// Package contact delivers contact-form messages. Without a relay the form
// on the page is inert.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/Meertayyab/portfolio/internal/config"
	"github.com/Meertayyab/portfolio/internal/logging"
)

var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Message is one contact form submission.
type Message struct {
	Name    string `form:"name" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,max=5000"`
}

// Relay hands a message to some delivery backend.
type Relay interface {
	Send(ctx context.Context, msg Message) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPRelay mails submissions to a fixed inbox.
type SMTPRelay struct {
	cfg  config.SMTPConfig
	log  *zap.Logger
	send sendFunc
}

// NewRelay returns an SMTP relay, or nil when no credentials are set.
func NewRelay(cfg config.SMTPConfig, log *zap.Logger) *SMTPRelay {
	if !cfg.Configured() {
		return nil
	}
	if log == nil {
		log = logging.Log
	}
	return &SMTPRelay{cfg: cfg, log: log, send: smtp.SendMail}
}

func (r *SMTPRelay) Send(ctx context.Context, msg Message) error {
	if r == nil || !r.cfg.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", r.cfg.User, r.cfg.Pass, r.cfg.Host)
	addr := r.cfg.Host + ":" + r.cfg.Port
	if err := r.send(addr, auth, r.cfg.User, []string{r.cfg.To}, r.compose(msg)); err != nil {
		r.log.Error("error sending email", zap.String("smtp_addr", addr), zap.Error(err))
		return fmt.Errorf("send contact email: %w", err)
	}

	r.log.Info("contact email sent", zap.String("from_name", msg.Name))
	return nil
}

func (r *SMTPRelay) compose(msg Message) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + r.cfg.To + "\r\n" +
		"Subject: " + "Portfolio Contact: " + headerSafe(msg.Name) + "\r\n" +
		"From: " + r.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe strips CR and LF so form input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
