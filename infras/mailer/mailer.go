package mailer

import (
	"fmt"

	"wakens/config"

	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"
)

// Client sends HTML mail through the configured SMTP relay.
type Client interface {
	Send(to, subject, htmlBody string) (err error)
}

type mailerClientImpl struct {
	dialer *gomail.Dialer
	from   string
}

func New(config *config.Config) Client {
	dialer := gomail.NewDialer(
		config.Mail.SMTP.Host,
		config.Mail.SMTP.Port,
		config.Mail.SMTP.Username,
		config.Mail.SMTP.Password,
	)

	log.Info().Str("host", config.Mail.SMTP.Host).Msg("Mailer client initialized")

	return &mailerClientImpl{
		dialer: dialer,
		from:   config.Mail.From,
	}
}

func (m *mailerClientImpl) Send(to, subject, htmlBody string) (err error) {
	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	err = m.dialer.DialAndSend(message)
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("Failed to send mail.")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
