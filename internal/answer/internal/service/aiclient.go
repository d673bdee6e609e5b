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

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ecodeclub/mockmate/internal/ai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/ecodeclub/mockmate/internal/answer"
	defaultAITimeout    = time.Minute
)

var errEmptyResponse = errors.New("AI 返回了空内容")

//go:generate mockgen -source=./aiclient.go -package=svcmocks -destination=./mocks/aiclient.mock.go -typed AIClient
type AIClient interface {
	// SendPrompt 每次调用只会请求一次 AI，不会重试
	SendPrompt(ctx context.Context, uid int64, tid, prompt string) (string, error)
}

// LLMClient 通过 ai 模块调用大模型
type LLMClient struct {
	svc     ai.LLMService
	timeout time.Duration
	tracer  trace.Tracer
}

func NewLLMClient(svc ai.LLMService, timeout time.Duration) *LLMClient {
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	return &LLMClient{
		svc:     svc,
		timeout: timeout,
		tracer:  otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (c *LLMClient) SendPrompt(ctx context.Context, uid int64, tid, prompt string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "answer.ai.send_prompt", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("tid", tid),
		attribute.Int64("uid", uid),
		attribute.Int("prompt.length", len(prompt)),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.svc.Invoke(ctx, ai.LLMRequest{
		Biz:    ai.BizAnswerScore,
		Uid:    uid,
		Tid:    tid,
		Prompt: prompt,
	})
	if err == nil && strings.TrimSpace(resp.Answer) == "" {
		err = errEmptyResponse
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", &AIRequestError{Tid: tid, Cause: err}
	}
	span.SetAttributes(attribute.Int64("tokens", resp.Tokens))
	span.SetStatus(codes.Ok, "")
	return resp.Answer, nil
}
