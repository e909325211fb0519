package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultModel = "llama-3.1-8b-instant"

	// Only the most recent turns are forwarded to keep input tokens bounded.
	historyLimit = 6
)

const systemPrompt = `Role: Kira, expert Indian Travel Guide for 'Unfold India'.

GUIDELINES (Pro Guide Persona):
1. **ACCURACY FIRST**: Use real names, correct locations, and actual prices (in INR).
2. **BE A GUIDE, NOT A ROBOT**:
   - **General Chat**: **ULTRA-CONCISE** (Max 60 words).
   - Structure: **Direct Answer** (1-2 sentences) + **ONE Pro Tip**.
   - **BANNED HEADERS**: NO "Additional Insights", "Overview", "Security", "Opening Hours" (unless asked).
   - **NO UNPROMPTED ITINERARIES**: Do NOT generate day-wise plans unless explicitly asked.
3. **STRUCTURED UI**:
   - Use **Bold** for key terms.
   - Use Bullet Points for lists.
4. **ITINERARIES (EXCEPTION)**:
   - **IGNORE ALL LENGTH LIMITS** ONLY when asked for an "Itinerary" or "Plan".
   - Create the **BEST, MOST DETAILED** itinerary possible.
   - Structure: **Morning** (Activity + Location) | **Lunch** (Specific Restaurant + Dish) | **Afternoon** (Hidden Gems) | **Evening** (Vibe).
5. **SCOPE**: Strict India Focus. Politely redirect others.
6. **Emoji Use**: Minimal & Tasteful.`

// ErrMissingAPIKey indicates the completion provider is not configured.
var ErrMissingAPIKey = errors.New("Server Config Error: Groq API Key missing.")

// Message is a single turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is a thin passthrough to the Groq chat-completion API. It carries
// no decision logic beyond history trimming and prompt injection.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a Client with a fixed per-call timeout.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete forwards the conversation (trimmed to the most recent turns,
// prefixed with the travel-guide system prompt) and returns the assistant
// reply. Errors carry a short, user-presentable message.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	if len(messages) > historyLimit {
		messages = messages[len(messages)-historyLimit:]
	}
	full := append([]Message{{Role: "system", Content: systemPrompt}}, messages...)

	payload, err := json.Marshal(completionRequest{
		Model:       defaultModel,
		Messages:    full,
		Temperature: 0.7,
		MaxTokens:   4096,
	})
	if err != nil {
		return "", fmt.Errorf("Connection Error: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("Connection Error: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("chat completion request failed", zap.Error(err))
		return "", fmt.Errorf("Connection Error: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("chat completion returned non-success status", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("API Error: %d", resp.StatusCode)
	}

	var body completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("Connection Error: %v", err)
	}
	if len(body.Choices) == 0 {
		return "", errors.New("Connection Error: empty completion")
	}
	return body.Choices[0].Message.Content, nil
}
