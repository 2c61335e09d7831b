package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/logging"
	"github.com/zaidasim/swadesh/internal/server/config"
)

// AnthropicGenerator calls the Claude Messages API. Every call carries an
// explicit deadline so a stuck upstream cannot pin request handlers.
type AnthropicGenerator struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	logger    logging.Logger
}

// NewAnthropicGenerator constructs a Generator from server config.
func NewAnthropicGenerator(cfg *config.Config, logger logging.Logger) *AnthropicGenerator {
	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
	return &AnthropicGenerator{
		client:    &client,
		model:     cfg.AIModel,
		maxTokens: cfg.AIMaxTokens,
		timeout:   cfg.AITimeout,
		logger:    logger.With("module", "ai"),
	}
}

func (g *AnthropicGenerator) Generate(ctx context.Context, req *GenerateRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var blocks []anthropic.ContentBlockParamUnion
	if req.ImageBase64 != "" {
		mediaType := req.ImageMediaType
		if mediaType == "" {
			mediaType = "image/jpeg"
		}
		blocks = append(blocks, anthropic.NewImageBlockBase64(mediaType, req.ImageBase64))
	}
	blocks = append(blocks, anthropic.NewTextBlock(req.Prompt))

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			g.logger.Warn(ctx, "upstream call timed out", "model", g.model)
			return "", common.ErrUpstreamTimeout
		}
		// log the cause, expose only the generic failure
		g.logger.Error(ctx, "upstream generation failed", "error", err.Error())
		return "", common.ErrUpstreamFailed
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), nil
}
