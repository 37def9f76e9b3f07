package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/companyvote/api/internal/core/domain"
	"github.com/companyvote/api/internal/core/ports"
)

var defaultClient = &http.Client{
	Timeout: time.Second * 10,
}

// Notifier POSTs vote notifications to a webhook URL. An empty URL
// disables delivery, which keeps local setups working without one.
type Notifier struct {
	url    string
	client *http.Client
}

func New(url string) *Notifier {
	return &Notifier{
		url:    url,
		client: defaultClient,
	}
}

func (n *Notifier) NotifyVoteCast(ctx context.Context, notification domain.VoteNotification) error {
	if n.url == "" {
		return nil
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook call failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

var _ ports.VoteNotifier = (*Notifier)(nil)
