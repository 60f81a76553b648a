// Package chat implements the client for the external assistant collaborator:
// an OpenAI-compatible chat-completions endpoint. The scoring engine has no
// dependency on this package; failures surface to the user and never touch
// engine state.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Defaults for the hosted endpoint.
const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "deepseek-r1-distill-llama-70b"
)

const requestTimeout = 60 * time.Second

// systemPrompt pins the assistant to environmental topics.
const systemPrompt = "You are EcoBuddy, a helpful assistant focused on environmental sustainability. " +
	"Provide direct responses without showing your thinking process. Do not use <think> tags or " +
	"similar formatting in your responses. Keep your answers concise and helpful. Strictly only " +
	"reply to environmental related queries and basic greeting do not indulge in any other topic"

// thinkPattern strips any leaked reasoning blocks from model output.
var thinkPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)

// ErrMissingAPIKey indicates no API key is configured for the chat endpoint.
var ErrMissingAPIKey = errors.New("chat API key is not configured")

// Message is one conversational turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	BaseURL    string
	Model      string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient returns a client for the default endpoint and model.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		Model:      DefaultModel,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	TopP        float64   `json:"top_p"`
	Stream      bool      `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Send posts the message with its prior history and returns the assistant's
// reply. The system prompt is prepended on every request; the caller owns the
// history.
func (c *Client) Send(ctx context.Context, message string, history []Message) (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	if strings.TrimSpace(message) == "" {
		return "", errors.New("message is required")
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: message})

	payload := completionRequest{
		Model:       c.Model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        1,
		Stream:      false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	url := strings.TrimSuffix(c.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		errText, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Warn().Int("status", resp.StatusCode).Str("body", string(errText)).
			Msg("chat endpoint returned an error")
		return "", fmt.Errorf("chat request failed: %d %s", resp.StatusCode, strings.TrimSpace(string(errText)))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", errors.New("invalid response format from chat endpoint")
	}

	reply := thinkPattern.ReplaceAllString(completion.Choices[0].Message.Content, "")
	return strings.TrimSpace(reply), nil
}
