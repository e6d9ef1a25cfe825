// Package llm wraps the OpenAI-compatible chat-completions API used to
// rewrite paper abstracts in simpler language.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
)

const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = "gpt-4o"

	defaultTimeout = 60 * time.Second

	simplifierSystemPrompt = "You are a helpful scientific paper abstract simplifier. " +
		"Keep length of simplified abstracts to its original length, but dumb it down " +
		"to a 5th grade reading level, as if you were explaining it to a kid."

	simplifierPromptTemplate = "Please simplify this scientific abstract and make it " +
		"easier to understand for a general audience, while preserving the key points:\n\n%s"
)

type OpenAIConfig func(*OpenAIClient)

type OpenAIClient struct {
	base   url.URL
	apiKey string
	model  string
	http   *http.Client
}

func NewOpenAIClient(baseUrl, apiKey, model string, opts ...OpenAIConfig) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing API key")
	}
	if baseUrl == "" {
		baseUrl = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	client := &OpenAIClient{
		base:   *base,
		apiKey: apiKey,
		model:  model,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, cfg := range opts {
		cfg(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) OpenAIConfig {
	return func(client *OpenAIClient) {
		client.http = httpClient
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// SimplifyAbstract rewrites the abstract at roughly its original length but
// at a much lower reading level.
func (oc *OpenAIClient) SimplifyAbstract(ctx context.Context, abstract string) (string, error) {
	if strings.TrimSpace(abstract) == "" {
		return "", apperr.NewValidation("missing abstract to simplify")
	}

	req := chatRequest{
		Model: oc.model,
		Messages: []chatMessage{
			{Role: "system", Content: simplifierSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(simplifierPromptTemplate, abstract)},
		},
	}

	var resp chatResponse
	if err := oc.do(ctx, http.MethodPost, "/v1/chat/completions", req, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (oc *OpenAIClient) do(ctx context.Context, method, path string, reqData, respData any) error {
	reqDataBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := oc.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bytes.NewReader(reqDataBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Authorization", "Bearer "+oc.apiKey)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := oc.http.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
