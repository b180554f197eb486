package webhook

import (
	"bytes"
	"context"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type webhookSender struct {
	Log    *zap.Logger
	Client *http.Client
}

// NewWebhookSender posts notifications as JSON. The response body and status are not interpreted.
func NewWebhookSender(logger *zap.Logger, timeout time.Duration) contracts.WebhookSender {
	if timeout <= 0 {
		timeout = time.Duration(constvars.DefaultWebhookTimeoutMS) * time.Millisecond
	}
	return &webhookSender{
		Log:    logger,
		Client: &http.Client{Timeout: timeout},
	}
}

func (s *webhookSender) Send(ctx context.Context, notification models.Notification) error {
	body, err := json.Marshal(notification.Payload())
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, notification.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := s.Client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	s.Log.Info("webhookSender.Send delivered",
		zap.String(constvars.LoggingNotificationIDKey, notification.ID),
		zap.String(constvars.LoggingWebhookURLKey, notification.WebhookURL),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return nil
}
