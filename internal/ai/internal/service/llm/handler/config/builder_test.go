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

package config

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler"
	"github.com/stretchr/testify/assert"
)

type fakeConfigRepo struct {
	cfgs map[string]domain.BizConfig
}

func (f fakeConfigRepo) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	cfg, ok := f.cfgs[biz]
	if !ok {
		return domain.BizConfig{}, errors.New("not found")
	}
	return cfg, nil
}

func (f fakeConfigRepo) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	return 0, nil
}

func TestHandlerBuilder(t *testing.T) {
	repo := fakeConfigRepo{cfgs: map[string]domain.BizConfig{
		domain.BizAnswerScore: {Biz: domain.BizAnswerScore, Model: "gemini-2.0-flash", MaxInput: 10},
	}}
	h := NewBuilder(repo).Next(handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		return domain.LLMResponse{Answer: req.Config.Model}, nil
	}))

	testCases := []struct {
		name     string
		req      domain.LLMRequest
		wantResp domain.LLMResponse
		wantErr  bool
		errIs    error
	}{
		{
			name:     "填充配置",
			req:      domain.LLMRequest{Biz: domain.BizAnswerScore, Prompt: "短输入"},
			wantResp: domain.LLMResponse{Answer: "gemini-2.0-flash"},
		},
		{
			name:    "输入太长",
			req:     domain.LLMRequest{Biz: domain.BizAnswerScore, Prompt: strings.Repeat("a", 11)},
			wantErr: true,
			errIs:   ErrInputTooLong,
		},
		{
			name:    "没有配置",
			req:     domain.LLMRequest{Biz: "unknown"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := h.Handle(context.Background(), tc.req)
			if tc.wantErr {
				assert.Error(t, err)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}
