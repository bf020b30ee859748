package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avc/linecoffee/internal/domain"
)

// WhatsAppConfig содержит параметры доступа к API сообщений.
// Значения передаются из окружения при запуске.
type WhatsAppConfig struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

// WhatsAppSender реализует domain.AlertSender через REST API сообщений (Twilio)
type WhatsAppSender struct {
	cfg        WhatsAppConfig
	httpClient *http.Client
}

// NewWhatsAppSender создает новый WhatsAppSender
func NewWhatsAppSender(cfg WhatsAppConfig) *WhatsAppSender {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &WhatsAppSender{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type whatsAppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send отправляет текст сообщения оператору
func (c *WhatsAppSender) Send(ctx context.Context, alert *domain.OperatorAlert) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.cfg.BaseURL, url.PathEscape(c.cfg.AccountSID))

	form := url.Values{}
	form.Set("From", whatsAppAddress(c.cfg.From))
	form.Set("To", whatsAppAddress(c.cfg.To))
	form.Set("Body", alert.Text())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("whatsapp client: failed to create request: %w", err)
	}
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil

	case resp.StatusCode == http.StatusTooManyRequests:
		seconds, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return NewRateLimitError(time.Duration(seconds) * time.Second)

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr whatsAppError
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return fmt.Errorf("whatsapp client: %w", &DeliveryError{StatusCode: resp.StatusCode, Message: apiErr.Message})
	}
}

// whatsAppAddress добавляет префикс канала к номеру телефона
func whatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
