package service

import (
	"bytes"
	"fmt"

	"uni_archive_backend/internal/config"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// MailSender delivers transactional mail. Tests substitute a recorder.
type MailSender interface {
	Configured() bool
	Send(to, subject, body string) error
}

// MailerService sends plain-text mail over SMTP with PLAIN auth.
type MailerService struct {
	cfg config.SMTPConfig
}

func NewMailerService(cfg config.SMTPConfig) *MailerService {
	return &MailerService{cfg: cfg}
}

func (m *MailerService) Configured() bool {
	return m.cfg.Host != "" && m.cfg.User != ""
}

func (m *MailerService) Send(to, subject, body string) error {
	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	auth := sasl.NewPlainClient("", m.cfg.User, m.cfg.Password)

	buf := bytes.NewBufferString("From: UniArchive <" + from + ">\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	return smtp.SendMail(addr, auth, from, []string{to}, buf)
}
