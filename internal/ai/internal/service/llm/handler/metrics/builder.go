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

package metrics

import (
	"context"
	"time"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler"
	"github.com/prometheus/client_golang/prometheus"
)

// HandlerBuilder 统计 LLM 调用的次数、耗时和 token。
// 要放在 config 后面，这样才能拿到平台和模型
type HandlerBuilder struct {
	durations *prometheus.SummaryVec
	tokens    *prometheus.CounterVec
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandlerBuilder(namespace string) *HandlerBuilder {
	labels := []string{"biz", "platform", "model", "status"}
	return &HandlerBuilder{
		durations: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "LLM request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_tokens_total",
			Help:      "Total number of tokens consumed",
		}, []string{"biz", "platform", "model"}),
	}
}

func (h *HandlerBuilder) Register(reg prometheus.Registerer) error {
	if err := reg.Register(h.durations); err != nil {
		return err
	}
	return reg.Register(h.tokens)
}

func (h *HandlerBuilder) Name() string {
	return "metrics"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		start := time.Now()
		resp, err := next.Handle(ctx, req)
		status := domain.RecordStatusSuccess
		if err != nil {
			status = domain.RecordStatusFailed
		}
		h.durations.WithLabelValues(req.Biz, req.Config.Platform, req.Config.Model, status.String()).
			Observe(time.Since(start).Seconds())
		if err == nil {
			h.tokens.WithLabelValues(req.Biz, req.Config.Platform, req.Config.Model).Add(float64(resp.Tokens))
		}
		return resp, err
	})
}
