package payments

import "errors"

var ErrNoWebhookSecret = errors.New("webhook secret not configured")
