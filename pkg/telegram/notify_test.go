package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"getsbiplay.ru/store/api/pkg/models"
)

func testOrder() models.Order {
	return models.Order{
		Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "PlayStation 5", Quantity: 2, Price: 500},
			{ProductID: "p2", ProductName: "DualSense", Quantity: 1, Price: 1000},
		},
		CustomerName: "Иван",
		Phone:        "+7 900 000-00-00",
		Email:        "ivan@example.com",
		Notes:        "Позвонить вечером",
		Total:        2000,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestSubmitOrder(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottoken-123/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := NewNotifier("token-123", "chat-7").WithBaseURL(srv.URL)
	require.NoError(t, n.SubmitOrder(context.Background(), testOrder()))

	assert.Equal(t, "chat-7", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.Contains(t, got.Text, "Новый заказ")
	assert.Contains(t, got.Text, "Иван")
	assert.Contains(t, got.Text, "+7 900 000-00-00")
	assert.Contains(t, got.Text, "ivan@example.com")
	assert.Contains(t, got.Text, "PlayStation 5 × 2")
	assert.Contains(t, got.Text, "Позвонить вечером")
	assert.Contains(t, got.Text, "Итого")
}

func TestSubmitOrderOmitsEmptyContactFields(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	order := testOrder()
	order.Email = ""
	order.Notes = ""

	n := NewNotifier("t", "c").WithBaseURL(srv.URL)
	require.NoError(t, n.SubmitOrder(context.Background(), order))

	assert.NotContains(t, got.Text, "Email")
	assert.NotContains(t, got.Text, "Комментарий")
}

func TestSubmitOrderMissingCredentials(t *testing.T) {
	err := NewNotifier("", "").SubmitOrder(context.Background(), testOrder())
	assert.ErrorIs(t, err, ErrSubmission)
}

func TestSubmitOrderNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewNotifier("t", "c").WithBaseURL(srv.URL).SubmitOrder(context.Background(), testOrder())
	assert.ErrorIs(t, err, ErrSubmission)
}
