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

package zhipu

import (
	"context"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/platform"
	"github.com/yankeguo/zhipu"
)

type Handler struct {
	client *zhipu.Client
}

func NewHandler(apikey string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	return &Handler{
		client: client,
	}, nil
}

func (h *Handler) Name() string {
	return domain.PlatformZhipu
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	// 这边它不会调用 next，因为它是最终的出口
	completion, err := h.buildReq(req).Do(ctx)
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

func (h *Handler) buildReq(req domain.LLMRequest) *zhipu.ChatCompletionService {
	chatReq := h.client.ChatCompletion(req.Config.Model)
	if req.Config.SystemPrompt != "" {
		chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: req.Config.SystemPrompt,
		})
	}
	chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
		Role:    zhipu.RoleUser,
		Content: req.Prompt,
	})
	// 智谱不接受 0
	if req.Config.Temperature > 0 {
		chatReq = chatReq.SetTemperature(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		chatReq = chatReq.SetTopP(req.Config.TopP)
	}
	return chatReq
}
