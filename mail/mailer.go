package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"trailhead/config"
)

// Message é o envelope mínimo que o core precisa entregar.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer is the outbound delivery boundary. The auth core only depends on
// this interface; transport, retries and templating belong to the
// implementation.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer envia e-mails via SMTP simples (host/port/auth do config).
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewSMTPMailer(cfg config.Configuration) *SMTPMailer {
	return &SMTPMailer{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}
}

func (m *SMTPMailer) Send(msg Message) error {
	addr := m.Host + ":" + m.Port

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.From, msg.To, msg.Subject, msg.Body)

	return smtp.SendMail(addr, auth, m.From, []string{msg.To}, []byte(body))
}

// LogMailer só loga a mensagem; útil em dev quando não há SMTP configurado.
type LogMailer struct{}

func (LogMailer) Send(msg Message) error {
	log.Printf("mail (dev): to=%s subject=%q\n%s", msg.To, msg.Subject, msg.Body)
	return nil
}
