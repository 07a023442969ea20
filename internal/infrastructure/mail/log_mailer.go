package mail

import (
	"context"

	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// LogMailer no envía nada: registra el destinatario y el enlace. Pensado para desarrollo.
type LogMailer struct {
	log      *logger.Logger
	resetURL string
}

func NewLogMailer(log *logger.Logger, resetURL string) *LogMailer {
	return &LogMailer{log: log, resetURL: resetURL}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to, token string, redirectURL *string) error {
	link, err := ResetLink(m.resetURL, redirectURL, token)
	if err != nil {
		return err
	}
	m.log.Info().Str("to", to).Str("link", link).Msg("correo de recuperación (driver log)")
	return nil
}
