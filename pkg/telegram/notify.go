// Package telegram forwards checkout orders to a Telegram bot chat with a
// single synchronous sendMessage call.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"getsbiplay.ru/store/api/pkg/models"
	"getsbiplay.ru/store/api/pkg/pricing"
)

// ErrSubmission is the single error surfaced for any submission failure:
// missing configuration, transport errors and non-success responses alike.
// The caller leaves the cart intact and may retry manually.
var ErrSubmission = errors.New("order submission failed")

const defaultBaseURL = "https://api.telegram.org"

// Notifier sends order summaries to one bot chat.
type Notifier struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

func NewNotifier(token, chatID string) *Notifier {
	return &Notifier{
		token:   token,
		chatID:  chatID,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NewNotifierFromEnv reads TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID. Either
// may be empty; the misconfiguration surfaces on submit, not at startup.
func NewNotifierFromEnv() *Notifier {
	return NewNotifier(os.Getenv("TELEGRAM_BOT_TOKEN"), os.Getenv("TELEGRAM_CHAT_ID"))
}

// WithBaseURL overrides the Telegram API endpoint. Used by tests.
func (n *Notifier) WithBaseURL(baseURL string) *Notifier {
	n.baseURL = baseURL
	return n
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SubmitOrder sends the order snapshot. There is no retry; failure leaves
// the submission to be repeated by the user.
func (n *Notifier) SubmitOrder(ctx context.Context, order models.Order) error {
	if n.token == "" || n.chatID == "" {
		return fmt.Errorf("%w: telegram credentials not configured", ErrSubmission)
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    n.chatID,
		Text:      formatOrderMessage(order),
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmission, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmission, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: telegram responded %d", ErrSubmission, resp.StatusCode)
	}

	return nil
}

// formatOrderMessage renders the human-readable HTML summary posted to the
// chat.
func formatOrderMessage(order models.Order) string {
	var b strings.Builder

	b.WriteString("🛒 <b>Новый заказ</b>\n\n")
	fmt.Fprintf(&b, "👤 <b>Имя:</b> %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📞 <b>Телефон:</b> %s\n", order.Phone)

	if order.Email != "" {
		fmt.Fprintf(&b, "📧 <b>Email:</b> %s\n", order.Email)
	}
	if order.Address != "" {
		fmt.Fprintf(&b, "📍 <b>Адрес:</b> %s\n", order.Address)
	}

	b.WriteString("\n📦 <b>Товары:</b>\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s × %d = %s\n",
			item.ProductName, item.Quantity, pricing.FormatPrice(item.Price*float64(item.Quantity)))
	}

	fmt.Fprintf(&b, "\n💰 <b>Итого:</b> %s\n", pricing.FormatPrice(order.Total))

	if order.Notes != "" {
		fmt.Fprintf(&b, "\n💬 <b>Комментарий:</b> %s\n", order.Notes)
	}

	return b.String()
}
