package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SlackClient handles the transmission of findings to a configured Slack
// webhook.
type SlackClient struct {
	WebhookURL string
	Channel    string // Optional: Override default channel

	// HTTPClient is swappable for tests; nil means a 10s-timeout default.
	HTTPClient *http.Client
}

func NewSlackClient(webhookURL string, channel string) *SlackClient {
	return &SlackClient{
		WebhookURL: webhookURL,
		Channel:    channel,
	}
}

// SendCheckReport posts the projected records of one check as an indented
// JSON code block under a Block Kit header. An unset webhook is a no-op.
func (s *SlackClient) SendCheckReport(check string, records []map[string]any) error {
	if s.WebhookURL == "" {
		return nil
	}

	body, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s records: %w", check, err)
	}

	payload := map[string]any{
		"blocks": []map[string]any{
			{
				"type": "header",
				"text": map[string]any{
					"type": "plain_text",
					"text": fmt.Sprintf("CatalogWatch: %s findings (%d)", check, len(records)),
				},
			},
			{
				"type": "context",
				"elements": []map[string]any{
					{
						"type": "mrkdwn",
						"text": fmt.Sprintf("*Cycle:* %s", time.Now().Format("2006-01-02 15:04")),
					},
				},
			},
			{
				"type": "section",
				"text": map[string]any{
					"type": "mrkdwn",
					"text": fmt.Sprintf("```\n%s\n```", body),
				},
			},
		},
	}
	if s.Channel != "" {
		payload["channel"] = s.Channel
	}

	return s.send(payload)
}

// SendText posts a plain message, used for the stale-product digest.
func (s *SlackClient) SendText(text string) error {
	if s.WebhookURL == "" {
		return nil
	}
	return s.send(map[string]any{"text": fmt.Sprintf("```\n%s\n```", text)})
}

func (s *SlackClient) send(payload map[string]any) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal slack payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.WebhookURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("received non-200 status from slack: %d", resp.StatusCode)
	}
	return nil
}

// FormatRecords renders projected records as "field: value" lines in the
// requested field order, one blank-line-separated block per record. This is
// where the field-order guarantee lives, since the projection maps
// themselves are unordered.
func FormatRecords(records []map[string]any, fields []string) string {
	var b strings.Builder
	for i, rec := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, f := range fields {
			fmt.Fprintf(&b, "%s: %v\n", f, rec[f])
		}
	}
	return b.String()
}
