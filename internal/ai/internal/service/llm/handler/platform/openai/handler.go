// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package openai

import (
	"context"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/platform"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultBaseURL Gemini 提供的 OpenAI 兼容接口
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// Handler 所有兼容 OpenAI chat completions 接口的平台都可以用
type Handler struct {
	client *openai.Client
}

func NewHandler(baseURL, apikey string, opts ...option.RequestOption) *Handler {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts = append([]option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apikey),
		// 重试由上层决定
		option.WithMaxRetries(0),
	}, opts...)
	return &Handler{
		client: openai.NewClient(opts...),
	}
}

func (h *Handler) Name() string {
	return domain.PlatformOpenAI
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.client.Chat.Completions.New(ctx, h.buildParams(req))
	if err != nil {
		return domain.LLMResponse{}, err
	}
	tokens := completion.Usage.TotalTokens
	resp := domain.LLMResponse{
		Tokens: tokens,
		Amount: platform.Amount(tokens, req.Config.Price),
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func (h *Handler) buildParams(req domain.LLMRequest) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Config.SystemPrompt != "" {
		msgs = append(msgs, openai.SystemMessage(req.Config.SystemPrompt))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt))
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(msgs),
		Model:    openai.F(req.Config.Model),
		// 评分需要稳定的输出，0 也要传
		Temperature: openai.F(req.Config.Temperature),
	}
	if req.Config.TopP > 0 {
		params.TopP = openai.F(req.Config.TopP)
	}
	if req.Config.MaxTokens > 0 {
		params.MaxTokens = openai.F(req.Config.MaxTokens)
	}
	return params
}
