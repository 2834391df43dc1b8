package notify

import (
	"context"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// mailgunSender delivers messages through the Mailgun API.
type mailgunSender struct {
	mg *mailgun.MailgunImpl
}

func newMailgunSender(domain, apiKey string) *mailgunSender {
	return &mailgunSender{
		mg: mailgun.NewMailgun(domain, apiKey),
	}
}

func (s *mailgunSender) Send(ctx context.Context, msg Message) error {
	m := s.mg.NewMessage(msg.From, msg.Subject, msg.Body, msg.To)

	sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := s.mg.Send(sendCtx, m)
	return err
}
