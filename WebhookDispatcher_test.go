package main

import (
	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"lookupSheet/contracts"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWebhookDispatcher_SetWebhookUrl(t *testing.T) {
	webhookDispatcher := NewWebhookDispatcher(1, 1, time.Second)

	assert.Equal(t, "", webhookDispatcher.GetWebhookUrl("sheet1"))

	webhookDispatcher.SetWebhookUrl("sheet1", "http://localhost/hook")
	assert.Equal(t, "http://localhost/hook", webhookDispatcher.GetWebhookUrl("sheet1"))
	assert.Equal(t, "", webhookDispatcher.GetWebhookUrl("sheet2"))

	webhookDispatcher.SetWebhookUrl("sheet1", "")
	assert.Equal(t, "", webhookDispatcher.GetWebhookUrl("sheet1"))
}

func TestWebhookDispatcher_Notify(t *testing.T) {
	t.Run("send", func(t *testing.T) {
		received := make(chan map[string]any, 2)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)

			payload := map[string]any{}
			assert.NoError(t, json.Unmarshal(body, &payload))
			received <- payload
		}))
		defer server.Close()

		webhookDispatcher := NewWebhookDispatcher(2, 10, time.Second)
		webhookDispatcher.Start()
		defer webhookDispatcher.Close()

		webhookDispatcher.SetWebhookUrl("sheet1", server.URL)
		webhookDispatcher.Notify("sheet1", []*contracts.Cell{
			{Column: "a", Row: "1", Value: contracts.StringValue("lookup(a,2)"), Result: "x"},
		})

		select {
		case payload := <-received:
			assert.Equal(t, "sheet1", payload["sheet_id"])
			require.Contains(t, payload, "cell")
			assert.Equal(t, map[string]any{
				"column": "a",
				"row":    "1",
				"value":  "lookup(a,2)",
				"result": "x",
			}, payload["cell"])
		case <-time.After(2 * time.Second):
			t.Fatal("webhook was not called")
		}
	})

	t.Run("not_subscribed", func(t *testing.T) {
		called := make(chan struct{}, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called <- struct{}{}
		}))
		defer server.Close()

		webhookDispatcher := NewWebhookDispatcher(1, 10, time.Second)
		webhookDispatcher.Start()

		webhookDispatcher.SetWebhookUrl("sheet1", server.URL)
		webhookDispatcher.Notify("sheet2", []*contracts.Cell{{Column: "a", Row: "1", Result: "x"}})
		webhookDispatcher.Close()

		assert.Len(t, called, 0)
	})

	t.Run("failed_delivery_keeps_worker", func(t *testing.T) {
		calls := make(chan int, 2)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls <- len(calls)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		webhookDispatcher := NewWebhookDispatcher(1, 10, time.Second)
		webhookDispatcher.Start()
		defer webhookDispatcher.Close()

		webhookDispatcher.SetWebhookUrl("sheet1", server.URL)
		webhookDispatcher.Notify("sheet1", []*contracts.Cell{
			{Column: "a", Row: "1", Result: "x"},
			{Column: "a", Row: "2", Result: "y"},
		})

		for i := 0; i < 2; i++ {
			select {
			case <-calls:
			case <-time.After(2 * time.Second):
				t.Fatal("webhook was not called")
			}
		}
	})
}
