// Package anthropic реализует интерпретацию зональной статистики через Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/config"
	"github.com/salar-zonal-stats/internal/domain/repository"
)

// ErrMissingAPIKey возвращается без сетевого вызова, если ключ не настроен
var ErrMissingAPIKey = errors.New("anthropic: api key is not configured")

const systemPrompt = "You are a remote-sensing analyst specialised in high-altitude salt flats of the " +
	"Atacama region. Answer in plain prose, without markdown or lists."

type interpreter struct {
	client    sdk.Client
	model     string
	maxTokens int64
	hasKey    bool
	logger    *zap.Logger
}

// NewInterpreter создает клиент Anthropic для интерпретации результатов
func NewInterpreter(cfg *config.AnthropicConfig, logger *zap.Logger) repository.Interpreter {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &interpreter{
		client:    sdk.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		hasKey:    cfg.APIKey != "",
		logger:    logger,
	}
}

// Interpret отправляет промпт модели и возвращает объединённый текст ответа
func (i *interpreter) Interpret(ctx context.Context, prompt string) (string, error) {
	if !i.hasKey {
		return "", ErrMissingAPIKey
	}

	i.logger.Debug("Calling Anthropic Messages API",
		zap.String("model", i.model),
		zap.Int("prompt_len", len(prompt)))

	msg, err := i.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(i.model),
		MaxTokens: i.maxTokens,
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		i.logger.Error("Anthropic API call failed", zap.Error(err))
		return "", fmt.Errorf("anthropic: create message: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	i.logger.Debug("Anthropic API call successful",
		zap.String("stop_reason", string(msg.StopReason)),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens))

	return strings.TrimSpace(sb.String()), nil
}
