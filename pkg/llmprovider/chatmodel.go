package llmprovider

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ChatModelConfig holds per-model generation defaults.
type ChatModelConfig struct {
	Temperature float32
	MaxTokens   int
	JSONMode    bool
}

// ChatModel exposes a Manager as an eino chat model so prompt chains keep
// provider fallback and breakers.
type ChatModel struct {
	manager *Manager
	cfg     ChatModelConfig
}

var _ model.BaseChatModel = (*ChatModel)(nil)

// NewChatModel wraps manager.
func NewChatModel(manager *Manager, cfg ChatModelConfig) *ChatModel {
	return &ChatModel{manager: manager, cfg: cfg}
}

// Generate implements model.BaseChatModel.
func (c *ChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	temperature := c.cfg.Temperature
	maxTokens := c.cfg.MaxTokens
	common := model.GetCommonOptions(&model.Options{
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}, opts...)

	req := &Request{JSONMode: c.cfg.JSONMode}
	if common.Temperature != nil {
		req.Temperature = float64(*common.Temperature)
	}
	if common.MaxTokens != nil {
		req.MaxTokens = *common.MaxTokens
	}

	var system []string
	for _, m := range input {
		if m == nil {
			continue
		}
		switch m.Role {
		case schema.System:
			system = append(system, m.Content)
		case schema.Assistant:
			req.Messages = append(req.Messages, TextMessage(RoleAssistant, m.Content))
		default:
			req.Messages = append(req.Messages, TextMessage(RoleUser, m.Content))
		}
	}
	if len(system) > 0 {
		sys := TextMessage(RoleSystem, strings.Join(system, "\n\n"))
		req.SystemInstruction = &sys
	}

	resp, err := c.manager.GenerateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	out := schema.AssistantMessage(resp.Content.Text(), nil)
	if resp.Usage != nil {
		out.ResponseMeta = &schema.ResponseMeta{
			Usage: &schema.TokenUsage{
				PromptTokens:     resp.Usage.InputTokens,
				CompletionTokens: resp.Usage.OutputTokens,
				TotalTokens:      resp.Usage.TotalTokens,
			},
		}
	}
	return out, nil
}

// Stream implements model.BaseChatModel with a single-chunk stream.
func (c *ChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := c.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}
