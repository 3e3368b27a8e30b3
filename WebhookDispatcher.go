package main

import (
	"bytes"
	json "github.com/bytedance/sonic"
	"log"
	"lookupSheet/contracts"
	"net/http"
	"sync"
	"time"
)

type WebhookSendCommand struct {
	Webhook string
	SheetId string
	Cell    *contracts.Cell
}

type WebhookPayload struct {
	SheetId string          `json:"sheet_id"`
	Cell    *contracts.Cell `json:"cell"`
}

// WebhookDispatcher posts changed cells to the URL subscribed for their sheet.
// Delivery is best effort: failures are logged and dropped.
type WebhookDispatcher struct {
	queue        chan WebhookSendCommand
	workersCount int
	timeout      time.Duration
	webhooks     map[string]string
	mu           sync.RWMutex
	workers      sync.WaitGroup
}

func NewWebhookDispatcher(workersCount int, queueSize int, timeout time.Duration) *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:        make(chan WebhookSendCommand, queueSize),
		workersCount: workersCount,
		timeout:      timeout,
		webhooks:     map[string]string{},
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(sheetId string, webhookUrl string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, sheetId)
	} else {
		manager.webhooks[sheetId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(sheetId string) string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	return manager.webhooks[sheetId]
}

func (manager *WebhookDispatcher) Notify(sheetId string, cells []*contracts.Cell) {
	webhook := manager.GetWebhookUrl(sheetId)
	if webhook == "" {
		return
	}

	go manager.addToQueue(webhook, sheetId, cells)
}

func (manager *WebhookDispatcher) addToQueue(webhook string, sheetId string, cells []*contracts.Cell) {
	defer func() {
		// queue closed while the notification was pending
		if recover() != nil {
			log.Printf("webhook dispatcher closed, dropped %d cells of sheet %s", len(cells), sheetId)
		}
	}()

	for _, cell := range cells {
		manager.queue <- WebhookSendCommand{
			Webhook: webhook,
			SheetId: sheetId,
			Cell:    cell,
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < manager.workersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	client := &http.Client{
		Timeout: manager.timeout,
	}

	for command := range manager.queue {
		payload, err := json.Marshal(WebhookPayload{SheetId: command.SheetId, Cell: command.Cell})
		if err != nil {
			log.Printf("webhook payload error: %s", err)
			continue
		}

		response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
		if err != nil {
			log.Printf("webhook send error: %s", err)
			continue
		}

		_ = response.Body.Close()
		if response.StatusCode >= 300 {
			log.Printf("unexpected webhook response HTTP status: %s", response.Status)
		}
	}
}
