package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionClient is the minimal text-completion surface the interpreter
// needs: one request carrying fixed instructions and the user's text, one
// plain-text reply. No conversational state is kept between calls.
type CompletionClient interface {
	Complete(ctx context.Context, instructions, userText string) (string, error)
}

// OpenAIClient talks to an OpenAI-compatible chat completion endpoint.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient builds a client for the given endpoint. baseURL may be empty
// for the default OpenAI endpoint, or point at any compatible server.
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: 30 * time.Second,
	}
}

// Complete sends the instructions and user text as a single exchange. One
// retry is attempted, and only when no reply was received at all: the
// completion itself has no side effects, so re-sending it cannot double-apply
// a command, while re-dispatching a received reply could.
func (c *OpenAIClient) Complete(ctx context.Context, instructions, userText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instructions},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		Temperature: 0,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("completion request: %w", err)
		}
		resp, err = c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("completion request: %w", err)
		}
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
