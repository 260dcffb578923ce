package services

import (
	"fmt"
	"log"
	"net/smtp"

	"orgsite-cms/config"
	"orgsite-cms/models"
)

type ContactService interface {
	Send(req models.ContactRequest) error
}

type contactService struct {
	cfg config.MailConfig
}

func NewContactService(cfg config.MailConfig) ContactService {
	return &contactService{cfg: cfg}
}

// Send delivers a contact-form message to the configured mailbox with
// the visitor's address as Reply-To. A delivery failure is logged and
// returned; the handler softens it into a try-again-later message
// instead of failing the request.
func (s *contactService) Send(req models.ContactRequest) error {
	subject := fmt.Sprintf("New message from %s", req.Name)

	body := fmt.Sprintf(
		"Name: %s\r\nEmail: %s\r\n\r\nMessage:\r\n%s\r\n\r\n---\r\nSent via the website contact form.\r\n",
		req.Name, req.Email, req.Message,
	)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\n", s.cfg.Sender, s.cfg.Username, req.Email, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
			body,
	)

	var auth smtp.Auth
	if s.cfg.Username != "" && s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Server)
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Server, s.cfg.Port)
	if err := smtp.SendMail(addr, auth, s.cfg.Sender, []string{s.cfg.Username}, msg); err != nil {
		log.Printf("SMTP send error: %v", err)
		return err
	}

	log.Printf("Contact email sent from %s (%s)", req.Name, req.Email)
	return nil
}
