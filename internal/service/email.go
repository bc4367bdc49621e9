package service

import (
	"context"

	"go.uber.org/zap"
)

// EmailSender delivers the download link on shipment confirmation.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogEmailSender is the dev delivery: it only logs the message.
type LogEmailSender struct {
	Logger *zap.SugaredLogger
}

func (s *LogEmailSender) Send(ctx context.Context, to, subject, body string) error {
	s.Logger.Infow("email (dev: logged only)",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}
