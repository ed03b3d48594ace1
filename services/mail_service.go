// Package services: services/mail_service.go
package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"mapao-magazine/config"
	"mapao-magazine/logger"
)

// ClubAddress receives every contact-form message.
const ClubAddress = "mapaoliteraryjournal@gmail.com"

// MailServiceInterface sends the site's transactional emails.
type MailServiceInterface interface {
	Enabled() bool
	SendContactEmails(name, email, subject, message string) error
	SendWelcomeEmail(email string) error
}

// MailService delivers email over SMTP. When credentials are missing at
// startup the service is permanently disabled for the process lifetime and
// every send becomes a successful no-op; the user experience never depends
// on deliverability.
type MailService struct {
	enabled  bool
	addr     string
	host     string
	username string
	password string
	sender   string
}

// NewMailService builds the dispatcher from configuration. A missing SMTP
// password disables it.
func NewMailService(cfg *config.Config) *MailService {
	if !cfg.MailConfigured() {
		logger.Warn.Println("NewMailService: SMTP credentials missing, email functionality is disabled")
		return &MailService{}
	}
	return &MailService{
		enabled:  true,
		addr:     fmt.Sprintf("%s:%d", cfg.MailServer, cfg.MailPort),
		host:     cfg.MailServer,
		username: cfg.MailUsername,
		password: cfg.MailPassword,
		sender:   cfg.MailDefaultSender,
	}
}

// Enabled reports whether the mail subsystem initialized with credentials.
func (m *MailService) Enabled() bool {
	return m.enabled
}

// send writes one message. Headers are assembled by hand, the same framing
// net/smtp expects everywhere.
func (m *MailService) send(to, subject, body, replyTo string) error {
	headers := []string{
		"From: " + m.sender,
		"To: " + to,
		"Subject: " + subject,
	}
	if replyTo != "" {
		headers = append(headers, "Reply-To: "+replyTo)
	}
	msg := []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + body)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(m.addr, auth, m.sender, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// ---------------- contact form ----------------

// SendContactEmails sends the submitted message to the club and an
// acknowledgment back to the sender. A disabled service succeeds without
// sending anything.
func (m *MailService) SendContactEmails(name, email, subject, message string) error {
	if !m.enabled {
		logger.Info.Printf("SendContactEmails: email disabled, contact from %s <%s> logged only", name, email)
		return nil
	}

	clubBody := fmt.Sprintf(`Name: %s
Email: %s
Subject: %s

Message:
%s

---
This message was sent from the Fiction & Poetry Club Manipur website contact form.`,
		name, email, subject, message)

	if err := m.send(ClubAddress, "Contact Form: "+subject, clubBody, email); err != nil {
		return err
	}

	confirmationBody := fmt.Sprintf(`Dear %s,

Thank you for contacting Fiction & Poetry Club Manipur. We have received your message and will get back to you soon.

Your message:
%s

Best regards,
Fiction & Poetry Club Manipur`, name, message)

	return m.send(email, "Thank you for contacting Fiction & Poetry Club Manipur", confirmationBody, "")
}

// ---------------- newsletter ----------------

// SendWelcomeEmail sends the newsletter welcome message. A disabled service
// succeeds without sending anything.
func (m *MailService) SendWelcomeEmail(email string) error {
	if !m.enabled {
		logger.Info.Printf("SendWelcomeEmail: email disabled, subscription for %s logged only", email)
		return nil
	}

	body := `Dear Subscriber,

Thank you for subscribing to the Fiction & Poetry Club Manipur newsletter!

You will now receive:
- Updates about new Mapao journal issues
- Information about literary events and workshops
- Behind-the-scenes content from our community
- Exclusive content and early access to publications

We're excited to have you as part of our literary community.

Best regards,
Fiction & Poetry Club Manipur`

	return m.send(email, "Welcome to Fiction & Poetry Club Manipur Newsletter", body, "")
}
