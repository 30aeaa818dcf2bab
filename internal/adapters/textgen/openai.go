package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ogurasousui/hr-smart-records/internal/core/assistant"
)

// ErrNotConfigured は API キーが設定されていない場合に返却されます。
var ErrNotConfigured = errors.New("textgen: api key is not configured")

// ErrEmptyResponse は応答に候補が含まれない場合に返却されます。
var ErrEmptyResponse = errors.New("textgen: no choices in response")

// Config は OpenAI 互換 API への接続設定です。
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Generator は Chat Completions API を用いた assistant.Generator の実装です。
type Generator struct {
	client openai.Client
	model  string
}

var _ assistant.Generator = (*Generator)(nil)

// New は Generator を生成します。リトライは行いません。
func New(cfg Config, opts ...option.RequestOption) *Generator {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &Generator{
		client: openai.NewClient(reqOpts...),
		model:  cfg.Model,
	}
}

// Generate はプロンプトを 1 件のユーザーメッセージとして送信し、最初の候補の本文を返します。
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("textgen: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Disabled は常に ErrNotConfigured を返す Generator です。
type Disabled struct{}

// Generate は ErrNotConfigured を返します。
func (Disabled) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

// NewFromConfig は API キーの有無に応じて Generator か Disabled を返します。
func NewFromConfig(cfg Config) assistant.Generator {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return Disabled{}
	}
	return New(cfg)
}
