package llmprovider

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"smart-travel-planner/pkg/deepseek"
	"smart-travel-planner/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	greq := &gemini.Request{
		Messages:    make([]gemini.Message, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		greq.SystemInstruction = req.SystemInstruction.Text()
	}
	for _, msg := range req.Messages {
		greq.Messages = append(greq.Messages, gemini.Message{Role: msg.Role, Text: msg.Text()})
	}
	if req.JSONMode {
		greq.ResponseMIMEType = gemini.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, greq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts any chat-completions compatible client. The name
// distinguishes deepseek from qwen, which share the protocol.
type DeepSeekAdapter struct {
	name   string
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(name string, client deepseek.IDeepSeek) *DeepSeekAdapter {
	if name == "" {
		name = "deepseek"
	}
	return &DeepSeekAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dreq := &deepseek.Request{
		Messages:    make([]deepseek.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		dreq.Messages = append(dreq.Messages, deepseek.Message{Role: RoleSystem, Content: req.SystemInstruction.Text()})
	}
	for _, msg := range req.Messages {
		dreq.Messages = append(dreq.Messages, deepseek.Message{Role: msg.Role, Content: msg.Text()})
	}
	if req.JSONMode {
		dreq.ResponseFormat = &deepseek.ResponseFormat{Type: "json_object"}
	}

	resp, err := a.client.GenerateContent(ctx, dreq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant},
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Content = TextMessage(RoleAssistant, resp.Choices[0].Message.Content)
	}
	return out, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// ArkAdapter adapts an eino chat model (Volcengine Ark) to Provider.
type ArkAdapter struct {
	model     model.BaseChatModel
	modelName string
}

// NewArkAdapter creates a new Ark adapter
func NewArkAdapter(chatModel model.BaseChatModel, modelName string) *ArkAdapter {
	return &ArkAdapter{model: chatModel, modelName: modelName}
}

// GenerateContent implements Provider interface
func (a *ArkAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := toSchemaMessages(req)

	var opts []model.Option
	if req.Temperature > 0 {
		opts = append(opts, model.WithTemperature(float32(req.Temperature)))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}

	msg, err := a.model.Generate(ctx, msgs, opts...)
	if err != nil {
		return nil, fmt.Errorf("ark: %w", err)
	}

	out := &Response{
		Content:      TextMessage(RoleAssistant, msg.Content),
		ProviderName: a.Name(),
		ModelName:    a.modelName,
	}
	if msg.ResponseMeta != nil && msg.ResponseMeta.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  msg.ResponseMeta.Usage.PromptTokens,
			OutputTokens: msg.ResponseMeta.Usage.CompletionTokens,
			TotalTokens:  msg.ResponseMeta.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns the provider name
func (a *ArkAdapter) Name() string {
	return "ark"
}

// Model returns the model name
func (a *ArkAdapter) Model() string {
	return a.modelName
}

func toSchemaMessages(req *Request) []*schema.Message {
	msgs := make([]*schema.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, schema.SystemMessage(req.SystemInstruction.Text()))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, schema.SystemMessage(m.Text()))
		case RoleAssistant:
			msgs = append(msgs, schema.AssistantMessage(m.Text(), nil))
		default:
			msgs = append(msgs, schema.UserMessage(m.Text()))
		}
	}
	return msgs
}
