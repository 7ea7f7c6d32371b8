package external

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// Mail is a plain notification email
type Mail struct {
	To      string
	Subject string
	Message string
}

// Mailer delivers notification emails using the SMTP settings in effect for the request
type Mailer interface {
	Send(ctx context.Context, settings entity.SystemSettings, mail Mail) error
}
