package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"Employee-Onboarding-System/config"
	"Employee-Onboarding-System/models"
)

// Mailer sends status-change notifications to employees. Sending is
// best-effort: a misconfigured or unreachable SMTP server must never fail the
// approval itself, so errors are only logged.
type Mailer struct {
	cfg *config.AppConfig
}

func New(cfg *config.AppConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) enabled() bool {
	return m.cfg != nil && m.cfg.SMTPHost != ""
}

// NotifyStatusChange mails the employee that one of their records moved to
// Approved or Rejected. subjectKind names the record, e.g. "Employee profile"
// or "Aadhar card".
func (m *Mailer) NotifyStatusChange(to, name, subjectKind, status, reply string) {
	if !m.enabled() {
		return
	}
	if to == "" {
		return
	}

	body := fmt.Sprintf("Hello %s,\n\nYour %s has been marked %s.", name, subjectKind, status)
	if status == models.StatusRejected && reply != "" {
		body += "\nReason: " + reply
	}
	body += "\n\nEmployee Onboarding System"

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("%s %s", subjectKind, status))
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("Warning: failed to send %s notification to %s: %v", status, to, err)
	}
}
