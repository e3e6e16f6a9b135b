package bridge

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"pricenexus/internal/catalog"
	"pricenexus/internal/logging"
)

// GeminiConfig holds configuration for the Gemini-backed bridge client.
type GeminiConfig struct {
	APIKey      string
	SearchModel string
	ChatModel   string
	ImageModel  string
	Timeout     time.Duration
	MinInterval time.Duration
}

// DefaultGeminiConfig returns sensible defaults. Search uses the flash model
// with Google Search grounding; chat uses the pro model for better replies.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:      apiKey,
		SearchModel: "gemini-3-flash-preview",
		ChatModel:   "gemini-3-pro-preview",
		ImageModel:  "gemini-2.5-flash-image",
		Timeout:     60 * time.Second,
		MinInterval: 500 * time.Millisecond,
	}
}

// GeminiClient implements Client on top of the Gemini API.
type GeminiClient struct {
	client      *genai.Client
	searchModel string
	chatModel   string
	imageModel  string
	timeout     time.Duration
	minInterval time.Duration

	mu          sync.Mutex
	lastRequest time.Time
}

// NewGeminiClient creates a Gemini bridge client. A missing API key is
// reported as ErrNotConfigured so callers can drop to demo mode explicitly
// instead of discovering the condition on the first call.
func NewGeminiClient(ctx context.Context, config GeminiConfig) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, ErrNotConfigured
	}

	defaults := DefaultGeminiConfig(config.APIKey)
	if config.SearchModel == "" {
		config.SearchModel = defaults.SearchModel
	}
	if config.ChatModel == "" {
		config.ChatModel = defaults.ChatModel
	}
	if config.ImageModel == "" {
		config.ImageModel = defaults.ImageModel
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.MinInterval <= 0 {
		config.MinInterval = defaults.MinInterval
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: config.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logging.Boot("Gemini bridge ready (search=%s chat=%s image=%s)",
		config.SearchModel, config.ChatModel, config.ImageModel)

	return &GeminiClient{
		client:      client,
		searchModel: config.SearchModel,
		chatModel:   config.ChatModel,
		imageModel:  config.ImageModel,
		timeout:     config.Timeout,
		minInterval: config.MinInterval,
	}, nil
}

// throttle enforces a minimum interval between requests.
func (c *GeminiClient) throttle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elapsed := time.Since(c.lastRequest); elapsed < c.minInterval {
		time.Sleep(c.minInterval - elapsed)
	}
	c.lastRequest = time.Now()
}

// SearchProducts implements Client. Transport failures return an error;
// malformed model output returns an empty slice.
func (c *GeminiClient) SearchProducts(ctx context.Context, query string) ([]catalog.Product, error) {
	timer := logging.StartTimer(logging.CategoryBridge, "product search")
	defer timer.Stop()

	c.throttle()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.searchModel,
		genai.Text(searchPrompt(query)),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.1),
			Tools:       []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		})
	if err != nil {
		return nil, fmt.Errorf("gemini search: %w", err)
	}

	links := groundingLinks(resp)
	products := NormalizeProducts(resp.Text(), links)
	logging.Bridge("search %q: %d products, %d grounding links", query, len(products), len(links))
	return products, nil
}

// AnalyzeValue implements Client.
func (c *GeminiClient) AnalyzeValue(ctx context.Context, product catalog.Product) (string, error) {
	c.throttle()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.searchModel,
		genai.Text(analysisPrompt(product)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini analysis: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini analysis: empty response")
	}
	return text, nil
}

// Chat implements Client.
func (c *GeminiClient) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	c.throttle()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.chatModel, chatContents(history, message),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(chatPersona, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.7),
		})
	if err != nil {
		return "", fmt.Errorf("gemini chat: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini chat: empty response")
	}
	return text, nil
}

// GenerateImage implements Client. The returned string is a data URI usable
// directly as an image source.
func (c *GeminiClient) GenerateImage(ctx context.Context, productName string) (string, error) {
	timer := logging.StartTimer(logging.CategoryBridge, "image generation")
	defer timer.Stop()

	c.throttle()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel,
		genai.Text(imagePrompt(productName)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini image: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime,
					base64.StdEncoding.EncodeToString(part.InlineData.Data)), nil
			}
		}
	}
	return "", fmt.Errorf("gemini image: no inline image in response")
}

// chatContents converts the transcript plus the new message into API
// contents, ending with the user message.
func chatContents(history []Turn, message string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, t := range history {
		role := genai.Role(genai.RoleUser)
		if t.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}
	return append(contents, genai.NewContentFromText(message, genai.RoleUser))
}

// groundingLinks collects citation URLs attached to a search-grounded
// response, in candidate order.
func groundingLinks(resp *genai.GenerateContentResponse) []string {
	var links []string
	for _, cand := range resp.Candidates {
		if cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web != nil && chunk.Web.URI != "" {
				links = append(links, chunk.Web.URI)
			}
		}
	}
	return links
}
