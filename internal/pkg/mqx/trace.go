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

package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/mockmate/internal/pkg/mqx"

// TraceMq 给发送消息打点，消费方不打点
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(mq mq.MQ) *TraceMq {
	return &TraceMq{MQ: mq, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t TraceMq) Producer(topic string) (mq.Producer, error) {
	pro, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return NewTraceProducer(pro, t.tracer), nil
}

type TraceProducer struct {
	mq.Producer
	tracer trace.Tracer
}

func NewTraceProducer(producer mq.Producer, tracer trace.Tracer) *TraceProducer {
	return &TraceProducer{
		Producer: producer,
		tracer:   tracer,
	}
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, "mq.produce", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	setSpanAttributes(span, m)

	res, err := t.Producer.Produce(ctx, m)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, "mq.produce_with_partition", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	setSpanAttributes(span, m)

	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}

func setSpanAttributes(span trace.Span, m *mq.Message) {
	if m == nil {
		return
	}
	span.SetAttributes(
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.operation", "publish"),
		attribute.String("messaging.destination.name", m.Topic),
		attribute.String("messaging.kafka.message.key", string(m.Key)),
		attribute.Int("messaging.message.body.size", len(m.Value)),
	)
}
