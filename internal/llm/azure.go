package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const azureAPIVersion = "2023-05-15"

// AzureClient is the live generation backend talking to an Azure OpenAI
// chat-completions deployment.
type AzureClient struct {
	endpoint   string
	apiKey     string
	deployment string
	httpClient *http.Client
}

// NewAzureClient creates a backend for the given Azure OpenAI endpoint,
// credential, and deployment name.
func NewAzureClient(endpoint, apiKey, deployment string) *AzureClient {
	return &AzureClient{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		apiKey:     apiKey,
		deployment: deployment,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate forwards the prompt pair to the deployment and returns the
// generated text verbatim. Every failure wraps ErrBackendUnavailable.
func (c *AzureClient) Generate(ctx context.Context, _ UseCase, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshaling request: %v", ErrBackendUnavailable, err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, azureAPIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", ErrBackendUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrBackendUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrBackendUnavailable, resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("%w: parsing response: %v", ErrBackendUnavailable, err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrBackendUnavailable)
	}

	return chatResp.Choices[0].Message.Content, nil
}
