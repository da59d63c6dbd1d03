package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // no failures
	colorOrange = 0xE67E22 // some failures
	colorRed    = 0xE74C3C // nothing succeeded
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendSummary posts the summary as a single embed.
func (d *DiscordNotifier) SendSummary(ctx context.Context, s *Summary) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(s)},
	}

	start := time.Now()
	defer func() {
		metrics.NotificationDuration.WithLabelValues("discord").Observe(time.Since(start).Seconds())
	}()

	return d.post(ctx, payload)
}

func buildEmbed(s *Summary) discordEmbed {
	return discordEmbed{
		Title: fmt.Sprintf("%s: %s", s.EventName, s.WebsiteCode),
		Color: summaryColor(s.SuccessCount, s.FailureCount),
		Fields: []discordEmbedField{
			{Name: "Success", Value: strconv.Itoa(s.SuccessCount), Inline: true},
			{Name: "Failure", Value: strconv.Itoa(s.FailureCount), Inline: true},
			{Name: "Store", Value: strconv.FormatInt(s.StoreID, 10), Inline: true},
		},
	}
}

func summaryColor(success, failure int) int {
	switch {
	case failure == 0:
		return colorGreen
	case success == 0:
		return colorRed
	default:
		return colorOrange
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
