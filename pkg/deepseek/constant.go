package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// QwenCompatibleBaseURL serves Qwen models over the same chat-completions protocol.
	QwenCompatibleBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	defaultTimeout = 60 * time.Second
)
