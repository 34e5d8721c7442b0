package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"pharmacenter-api/config"

	"github.com/sirupsen/logrus"
)

var (
	// ErrAssistantDisabled means no completion endpoint is configured.
	ErrAssistantDisabled = errors.New("assistant is not configured")
	// ErrAssistantUnavailable wraps upstream failures of the completion endpoint.
	ErrAssistantUnavailable = errors.New("assistant endpoint unavailable")
)

// AssistantService is the thin proxy behind the site's chat widget. It
// forwards the visitor's message to an external text-completion endpoint and
// relays the reply verbatim; no language handling happens in this service.
type AssistantService struct {
	cfg        config.AssistantConfig
	log        *logrus.Logger
	httpClient *http.Client
}

func NewAssistantService(cfg config.AssistantConfig, log *logrus.Logger) *AssistantService {
	return &AssistantService{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type completionRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Completion string `json:"completion"`
}

// Enabled reports whether a completion endpoint is configured.
func (s *AssistantService) Enabled() bool {
	return s.cfg.Endpoint != ""
}

// Chat forwards one message and returns the completion text.
func (s *AssistantService) Chat(ctx context.Context, message string) (string, error) {
	if !s.Enabled() {
		return "", ErrAssistantDisabled
	}

	payload, err := json.Marshal(completionRequest{
		Model:  s.cfg.Model,
		Prompt: message,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Warnf("Assistant endpoint request failed: %+v", err)
		return "", fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		s.log.Warnf("Assistant endpoint returned status %d", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrAssistantUnavailable, resp.StatusCode)
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	return completion.Completion, nil
}
