package service

import "context"

// Mailer sends transactional mail such as OTP codes.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}
