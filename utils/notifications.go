package utils

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type Message struct {
	Content string    `json:"content"`
	Topic   string    `json:"topic,omitempty"`
	TimeNow time.Time `json:"time_now"`
}

// Notifier posts messages to an ntfy server.
type Notifier struct {
	BaseURL string
	Topic   string
	Client  *http.Client
}

func NewNotifier(cfg NotifyConfig) *Notifier {
	return &Notifier{
		BaseURL: cfg.BaseURL,
		Topic:   cfg.Topic,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *Notifier) Enabled() bool { return n != nil && n.Topic != "" }

func (n *Notifier) SendNotification(ctx context.Context, message Message) error {
	if !n.Enabled() {
		return nil
	}
	message.TimeNow = time.Now()
	url := strings.TrimRight(n.BaseURL, "/") + "/" + message.Topic
	body := strings.NewReader(message.Content + "\nTime: " + message.TimeNow.Format(time.RFC3339))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("build notification: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("send notification: unexpected status %s", resp.Status)
	}
	return nil
}

// Go sends in the background and logs failures.
func (n *Notifier) Go(message Message) {
	if !n.Enabled() {
		return
	}
	go func() {
		if err := n.SendNotification(context.Background(), message); err != nil {
			slog.Warn("notification failed", "topic", message.Topic, "error", err)
		}
	}()
}

func (n *Notifier) FormatErrorNotification(err error, context string) Message {
	return Message{
		Content: "Error occurred: " + err.Error() + " | Context: " + context,
		Topic:   n.Topic + "-errors",
		TimeNow: time.Now(),
	}
}

func (n *Notifier) FormatInfoNotification(info string, context string) Message {
	return Message{
		Content: "Info: " + info + " | Context: " + context,
		Topic:   n.Topic + "-info",
		TimeNow: time.Now(),
	}
}
