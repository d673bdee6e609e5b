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

package record

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepo struct {
	records []domain.LLMRecord
	err     error
}

func (f *fakeRecordRepo) Save(ctx context.Context, r domain.LLMRecord) (int64, error) {
	f.records = append(f.records, r)
	return int64(len(f.records)), f.err
}

func TestHandlerBuilder(t *testing.T) {
	req := domain.LLMRequest{
		Biz:    domain.BizAnswerScore,
		Uid:    123,
		Tid:    "tid-1",
		Prompt: "prompt",
		Config: domain.BizConfig{Platform: domain.PlatformOpenAI, Model: "m"},
	}

	t.Run("成功", func(t *testing.T) {
		repo := &fakeRecordRepo{}
		h := NewHandler(repo).Next(handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
			return domain.LLMResponse{Tokens: 100, Amount: 2, Answer: "ok"}, nil
		}))
		resp, err := h.Handle(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Answer)
		assert.Equal(t, []domain.LLMRecord{{
			Tid: "tid-1", Uid: 123, Biz: domain.BizAnswerScore,
			Platform: domain.PlatformOpenAI, Model: "m", Prompt: "prompt",
			Status: domain.RecordStatusSuccess, Tokens: 100, Amount: 2, Answer: "ok",
		}}, repo.records)
	})

	t.Run("失败也要记录", func(t *testing.T) {
		repo := &fakeRecordRepo{}
		callErr := errors.New("network")
		h := NewHandler(repo).Next(handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
			return domain.LLMResponse{}, callErr
		}))
		_, err := h.Handle(context.Background(), req)
		assert.Equal(t, callErr, err)
		require.Len(t, repo.records, 1)
		assert.Equal(t, domain.RecordStatusFailed, repo.records[0].Status)
		assert.Equal(t, "network", repo.records[0].Reason)
	})

	t.Run("保存失败不影响结果", func(t *testing.T) {
		repo := &fakeRecordRepo{err: errors.New("db down")}
		h := NewHandler(repo).Next(handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
			return domain.LLMResponse{Answer: "ok"}, nil
		}))
		resp, err := h.Handle(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Answer)
	})
}
