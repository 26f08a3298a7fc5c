package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"

	"newsd/internal/models"
	"newsd/internal/providers"
	"newsd/internal/structures"
)

type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type ChatServiceInterface interface {
	Send(ctx context.Context, message string, history []ChatTurn) (string, error)
}

// ChatService relays messages to the configured generative-text API. It holds
// no state; the rolling history travels with each request.
type ChatService struct {
	conf   *structures.Config
	logger providers.Logger
	client *http.Client
}

func NewChatService(conf *structures.Config, logger providers.Logger) ChatServiceInterface {
	return &ChatService{
		conf:   conf,
		logger: logger,
		client: &http.Client{},
	}
}

type upstreamPart struct {
	Text string `json:"text"`
}

type upstreamContent struct {
	Role  string         `json:"role"`
	Parts []upstreamPart `json:"parts"`
}

type upstreamRequest struct {
	Contents []upstreamContent `json:"contents"`
}

type upstreamResponse struct {
	Candidates []struct {
		Content struct {
			Parts []upstreamPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (cs *ChatService) Send(ctx context.Context, message string, history []ChatTurn) (string, error) {
	if cs.conf.Chat.APIKey == "" {
		return "", errors.New("chat api key not configured")
	}

	contents := make([]upstreamContent, 0, len(history)+1)
	for _, turn := range history {
		role := "model"
		if turn.Role == "user" {
			role = "user"
		}
		contents = append(contents, upstreamContent{
			Role:  role,
			Parts: []upstreamPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, upstreamContent{
		Role:  "user",
		Parts: []upstreamPart{{Text: message}},
	})

	body, err := json.Marshal(upstreamRequest{Contents: contents})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, cs.conf.Chat.Timeout)
	defer cancel()

	endpoint := cs.conf.Chat.URL + "?key=" + url.QueryEscape(cs.conf.Chat.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cs.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			cs.logger.Warnf(providers.TypeApp, "Chat upstream timed out")
			return "", &models.UpstreamError{Timeout: true, Summary: "chat upstream timed out"}
		}
		cs.logger.Errorf(providers.TypeApp, "Chat upstream request failed: %s", err)
		return "", &models.UpstreamError{Summary: "chat upstream unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		cs.logger.Errorf(providers.TypeApp, "Chat upstream returned status %d", resp.StatusCode)
		return "", &models.UpstreamError{Summary: "chat upstream returned an error"}
	}

	var parsed upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		cs.logger.Errorf(providers.TypeApp, "Chat upstream sent invalid JSON: %s", err)
		return "", &models.UpstreamError{Summary: "unexpected chat upstream response"}
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", &models.UpstreamError{Summary: "unexpected chat upstream response"}
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
