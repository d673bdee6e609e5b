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
	"time"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler"
	"github.com/gotomicro/ego/core/elog"
)

// HandlerBuilder 保存每一次调用的 prompt 和回答，方便后续排查评分问题
type HandlerBuilder struct {
	repo   repository.LLMRecordRepository
	logger *elog.Component
}

func NewHandler(repo repository.LLMRecordRepository) *HandlerBuilder {
	return &HandlerBuilder{
		repo:   repo,
		logger: elog.DefaultLogger.With(elog.FieldComponent("ai.record")),
	}
}

func (h *HandlerBuilder) Name() string {
	return "record"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		record := domain.LLMRecord{
			Tid:      req.Tid,
			Uid:      req.Uid,
			Biz:      req.Biz,
			Platform: req.Config.Platform,
			Model:    req.Config.Model,
			Prompt:   req.Prompt,
			Status:   domain.RecordStatusProcessing,
		}
		resp, err := next.Handle(ctx, req)
		if err != nil {
			record.Status = domain.RecordStatusFailed
			record.Reason = err.Error()
		} else {
			record.Status = domain.RecordStatusSuccess
			record.Tokens = resp.Tokens
			record.Amount = resp.Amount
			record.Answer = resp.Answer
		}
		// 原本的 ctx 可能已经超时了
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
		defer cancel()
		if _, err1 := h.repo.Save(saveCtx, record); err1 != nil {
			h.logger.Error("保存 LLM 访问记录失败", elog.String("tid", req.Tid), elog.FieldErr(err1))
		}
		return resp, err
	})
}

var _ handler.Builder = &HandlerBuilder{}
