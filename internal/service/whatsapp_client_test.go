package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAlert() *domain.OperatorAlert {
	return &domain.OperatorAlert{
		Kind: domain.AlertOrderPlaced,
		Order: &domain.Order{
			ID:          42,
			TotalAmount: decimal.NewFromInt(100),
			FinalAmount: decimal.NewFromInt(100),
		},
	}
}

func TestWhatsAppSender_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "AC123", user)
			assert.Equal(t, "secret", pass)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "whatsapp:+14155238886", r.PostForm.Get("From"))
			assert.Equal(t, "whatsapp:+201000000000", r.PostForm.Get("To"))
			assert.Contains(t, r.PostForm.Get("Body"), "New order #42")

			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		sender := NewWhatsAppSender(WhatsAppConfig{
			BaseURL:    server.URL + "/",
			AccountSID: "AC123",
			AuthToken:  "secret",
			From:       "+14155238886",
			To:         "whatsapp:+201000000000",
		})
		require.NoError(t, sender.Send(ctx, testAlert()))
	})

	t.Run("Rate limit exceeded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		sender := NewWhatsAppSender(WhatsAppConfig{BaseURL: server.URL, AccountSID: "AC123"})
		err := sender.Send(ctx, testAlert())

		var rateLimitErr *RateLimitError
		require.ErrorAs(t, err, &rateLimitErr)
		assert.Equal(t, "1m0s", rateLimitErr.RetryAfter.String())
	})

	t.Run("Rejected message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code": 21211, "message": "Invalid 'To' Phone Number"}`))
		}))
		defer server.Close()

		sender := NewWhatsAppSender(WhatsAppConfig{BaseURL: server.URL, AccountSID: "AC123"})
		err := sender.Send(ctx, testAlert())

		var deliveryErr *DeliveryError
		require.ErrorAs(t, err, &deliveryErr)
		assert.Equal(t, http.StatusBadRequest, deliveryErr.StatusCode)
		assert.Equal(t, "Invalid 'To' Phone Number", deliveryErr.Message)
	})

	t.Run("Unexpected status code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		sender := NewWhatsAppSender(WhatsAppConfig{BaseURL: server.URL, AccountSID: "AC123"})
		assert.Error(t, sender.Send(ctx, testAlert()))
	})

	t.Run("Server unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		sender := NewWhatsAppSender(WhatsAppConfig{BaseURL: server.URL, AccountSID: "AC123"})
		assert.Error(t, sender.Send(ctx, testAlert()))
	})
}
