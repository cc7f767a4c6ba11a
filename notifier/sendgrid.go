package notifier

import (
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridNotifier sends mail through the SendGrid v3 API.
type SendGridNotifier struct {
	client *sendgrid.Client
	from   string
}

func NewSendGrid(apiKey, from string) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

func (s *SendGridNotifier) Send(to, subject, htmlBody string) bool {
	from := mail.NewEmail("Kalpana Medcare", s.from)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)

	resp, err := s.client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return false
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send email to %s, response code: %d", to, resp.StatusCode)
		return false
	}

	log.Println("Email sent successfully to", to)
	return true
}
