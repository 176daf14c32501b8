package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ContributionAlert describes a fresh submission for the moderators' inbox.
type ContributionAlert struct {
	ContributorID    string
	ContributorEmail string
	ContributorName  string
	Title            string
	Description      string
	FileURL          string
}

// Notifier sends contribution alerts.
type Notifier interface {
	ContributionSubmitted(ctx context.Context, alert ContributionAlert) error
}

// Nop drops every alert. Used when no relay is configured.
type Nop struct{}

func (Nop) ContributionSubmitted(context.Context, ContributionAlert) error { return nil }

// EmailJSConfig holds the relay credentials.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// EmailJS relays alerts through the EmailJS REST API.
type EmailJS struct {
	cfg    EmailJSConfig
	client *http.Client
}

var _ Notifier = (*EmailJS)(nil)

// NewEmailJS creates a relay client. A nil client gets a 10s timeout default.
func NewEmailJS(cfg EmailJSConfig, client *http.Client) *EmailJS {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &EmailJS{cfg: cfg, client: client}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// ContributionSubmitted posts the alert to the configured template.
func (e *EmailJS) ContributionSubmitted(ctx context.Context, alert ContributionAlert) error {
	payload, err := json.Marshal(sendRequest{
		ServiceID:  e.cfg.ServiceID,
		TemplateID: e.cfg.TemplateID,
		UserID:     e.cfg.PublicKey,
		TemplateParams: map[string]string{
			"user_uid":             alert.ContributorID,
			"user_email":           alert.ContributorEmail,
			"user_name":            alert.ContributorName,
			"material_title":       alert.Title,
			"material_description": alert.Description,
			"material_drive_link":  alert.FileURL,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("send alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email relay returned status code %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}
