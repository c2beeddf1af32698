package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

type ClientOptions struct {
	APIKey string
	Model  string
}

// Client wraps the generative-ai SDK behind the one call the analysis
// pipeline needs: prompt in, completion text out.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, opts *ClientOptions) (*Client, error) {
	if opts == nil {
		return nil, errors.New("opts is nil")
	}
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is empty")
	}

	c, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{genai: c, model: model}, nil
}

func (c *Client) Close() error {
	return c.genai.Close()
}

// GenerateText sends a single prompt and returns the concatenated text parts
// of the first candidate. Single attempt; the caller decides how a failure
// surfaces.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.genai.GenerativeModel(c.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("model returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}
