package notifier

import (
	"log"

	"hms/config"
)

// Notifier delivers a formatted message to an email address. Send never
// propagates transport errors; it reports delivery with a bool and leaves
// the details in the log. Callers decide what a false means for their flow.
type Notifier interface {
	Send(to, subject, htmlBody string) bool
}

// FromConfig picks the delivery transport: SendGrid when an API key is
// configured, plain SMTP otherwise.
func FromConfig(cfg *config.Config) Notifier {
	if cfg.SendGridKey != "" {
		log.Println("Email delivery via SendGrid")
		return NewSendGrid(cfg.SendGridKey, cfg.EmailSender)
	}
	return NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailSender, cfg.EmailPassword)
}
