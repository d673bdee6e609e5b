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

package biz

import (
	"context"
	"testing"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler"
	"github.com/stretchr/testify/assert"
)

func TestFacadeHandler(t *testing.T) {
	h := NewHandler(map[string]handler.Handler{
		domain.BizAnswerScore: handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
			return domain.LLMResponse{Answer: "score"}, nil
		}),
	})
	testCases := []struct {
		name     string
		biz      string
		wantResp domain.LLMResponse
		wantErr  error
	}{
		{
			name:     "已知业务",
			biz:      domain.BizAnswerScore,
			wantResp: domain.LLMResponse{Answer: "score"},
		},
		{
			name:    "未知业务",
			biz:     "unknown",
			wantErr: ErrUnknownBiz,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := h.Handle(context.Background(), domain.LLMRequest{Biz: tc.biz})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}
