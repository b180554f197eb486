package models

import "time"

type Notification struct {
	ID         string    `json:"id"`
	WebhookURL string    `json:"webhook_url"`
	Email      string    `json:"email"`
	Token      string    `json:"token"`
	CreatedAt  time.Time `json:"created_at"`
}

// WebhookPayload is the exact body posted to the webhook.
type WebhookPayload struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

func (n Notification) Payload() WebhookPayload {
	return WebhookPayload{Email: n.Email, Token: n.Token}
}
