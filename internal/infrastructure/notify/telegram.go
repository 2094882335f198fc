// Package notify delivers best-effort alerts to an operator chat through the
// Telegram Bot API.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/tgxchange/exchange-api/internal/api/metrics"
	"github.com/tgxchange/exchange-api/internal/core/ports"
)

const requestTimeout = 10 * time.Second

// TelegramNotifier posts a sendMessage call for each created order. One
// attempt per order, no retries: a missed alert is cheaper than a duplicate.
type TelegramNotifier struct {
	client     *resty.Client
	botToken   string
	chatID     string
	publicName string
	log        zerolog.Logger
}

// NewTelegramNotifier builds a notifier against apiBase (normally
// https://api.telegram.org, overridable in tests). When botToken or chatID is
// empty, delivery is silently skipped.
func NewTelegramNotifier(apiBase, botToken, chatID, publicName string, log zerolog.Logger) *TelegramNotifier {
	client := resty.New().
		SetBaseURL(apiBase).
		SetTimeout(requestTimeout).
		SetRetryCount(0)

	return &TelegramNotifier{
		client:     client,
		botToken:   botToken,
		chatID:     chatID,
		publicName: publicName,
		log:        log,
	}
}

// OrderCreated formats and sends the new-order summary.
func (t *TelegramNotifier) OrderCreated(ctx context.Context, n ports.OrderNotification) error {
	if t.botToken == "" || t.chatID == "" {
		t.log.Debug().Str("order_id", n.OrderID).Msg("notification skipped: bot not configured")
		return nil
	}

	body := map[string]any{
		"chat_id":                  t.chatID,
		"text":                     t.formatMessage(n),
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/bot" + t.botToken + "/sendMessage")
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	if resp.IsError() {
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("telegram sendMessage: %s", resp.Status())
	}

	metrics.NotificationsTotal.WithLabelValues("ok").Inc()
	return nil
}

func (t *TelegramNotifier) formatMessage(n ports.OrderNotification) string {
	var b strings.Builder
	if t.publicName != "" {
		fmt.Fprintf(&b, "<b>%s</b>\n", safe(t.publicName))
	}

	uname := "(no username)"
	if n.Username != "" {
		uname = "@" + safe(n.Username)
	}
	method := "—"
	if n.ReceiveMethod != "" {
		method = string(n.ReceiveMethod)
	}

	fmt.Fprintf(&b, "🆕 <b>New order</b>\n")
	fmt.Fprintf(&b, "<b>ID:</b> %s\n", n.OrderID)
	fmt.Fprintf(&b, "<b>User:</b> <code>%d</code> %s\n", n.UserID, uname)
	fmt.Fprintf(&b, "<b>Asset:</b> %s\n", n.Asset)
	fmt.Fprintf(&b, "<b>Amount:</b> %g\n", n.Amount)
	fmt.Fprintf(&b, "<b>RUB payout:</b> %.2f\n", n.RubAmount)
	fmt.Fprintf(&b, "<b>Receive (RUB):</b> %s\n", method)
	fmt.Fprintf(&b, "<b>Deposit address:</b> <code>%s</code>", safe(n.Address))
	return b.String()
}

// safe flattens newlines so user-supplied values cannot break message layout.
func safe(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
