package mail

import "context"

// Mailer sends a single plain-text message. The SMTP implementation lives in
// smtp.go; tests use FakeMailer.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type FakeMailer struct {
	SendFn func(ctx context.Context, to, subject, body string) error
}

func (f *FakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if f.SendFn != nil {
		return f.SendFn(ctx, to, subject, body)
	}
	panic("unexpected Send")
}
