package notifier

import (
	"log"

	"gopkg.in/gomail.v2"
)

// SMTPNotifier sends mail over plain SMTP with STARTTLS.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, username, password string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

func (s *SMTPNotifier) Send(to, subject, htmlBody string) bool {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return false
	}

	log.Println("Email sent successfully to", to)
	return true
}
