package mailer

import (
	"github.com/rs/zerolog/log"
)

// logOnlyImpl is the demo-mode sender used when no SMTP relay is
// configured. It reports success so callers behave exactly as in live
// mode; the mail body is only logged.
type logOnlyImpl struct{}

func NewLogOnly() Client {
	log.Info().Msg("No SMTP relay configured, mail delivery is log-only")

	return &logOnlyImpl{}
}

func (m *logOnlyImpl) Send(to, subject, _ string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("Skipping mail delivery (log-only mode).")

	return nil
}
