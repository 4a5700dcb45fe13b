package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

var leadClosedTmpl = template.Must(template.New("lead_closed").Parse(
	`<p>Hi {{.AgentName}},</p>
<p>Your lead <strong>{{.LeadName}}</strong> has just been marked as Closed. Nice work!</p>
<p>It will show up in the weekly closed-leads report.</p>`))

// SendLeadClosed emails the owning agent that one of their leads closed.
func (s *EmailSender) SendLeadClosed(to, agentName, leadName string) error {
	data := LeadClosedEmailData{
		AgentName: agentName,
		LeadName:  leadName,
	}

	var body bytes.Buffer
	if err := leadClosedTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Lead closed: %s", leadName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
