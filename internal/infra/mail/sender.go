package mail

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/PrinceSD2/lms-sub001/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from, alertsTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		AlertsTo: alertsTo,
	}
}

// NotifyHotLead mails the alerts inbox about a freshly captured hot lead.
// The payload already carries masked contact fields only, so the alert mail
// never contains raw PII either.
func (s *EmailSender) NotifyHotLead(ctx context.Context, payload queue.LeadCapturedPayload) error {
	data := HotLeadAlertData{
		Name:                 payload.Name,
		Source:               payload.Source,
		CompletionPercentage: payload.CompletionPercentage,
		MaskedEmail:          payload.MaskedEmail,
		MaskedPhone:          payload.MaskedPhone,
		MaskedDebtAmount:     payload.MaskedDebtAmount,
		DashboardLink:        "/leads/" + payload.LeadID,
	}

	tmplPath := filepath.Join("templates", "hot_lead_alert.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parse alert template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("render alert template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.AlertsTo)
	m.SetHeader("Subject", fmt.Sprintf("Hot lead: %s (%s)", payload.Name, payload.Source))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send alert email: %w", err)
	}
	return nil
}
