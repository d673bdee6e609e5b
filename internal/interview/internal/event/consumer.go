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

package event

import (
	"context"

	"github.com/ecodeclub/mockmate/internal/interview/internal/service"
	"github.com/ecodeclub/mockmate/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

// AnswerEventConsumer 回答保存之后累加面试的已答题数
type AnswerEventConsumer struct {
	svc      service.InterviewService
	consumer *mqx.GeneralConsumer[AnswerSavedEvent]
}

func NewAnswerEventConsumer(q mq.MQ, svc service.InterviewService) (*AnswerEventConsumer, error) {
	c := &AnswerEventConsumer{svc: svc}
	consumer, err := mqx.NewGeneralConsumer[AnswerSavedEvent](q, answerEventName, "interview_answered_cnt", c.handle)
	if err != nil {
		return nil, err
	}
	c.consumer = consumer
	return c, nil
}

func (c *AnswerEventConsumer) Start(ctx context.Context) {
	c.consumer.Start(ctx)
}

func (c *AnswerEventConsumer) Consume(ctx context.Context) error {
	return c.consumer.Consume(ctx)
}

func (c *AnswerEventConsumer) handle(ctx context.Context, evt AnswerSavedEvent) error {
	return c.svc.IncrAnsweredCnt(ctx, evt.Uid, evt.InterviewID)
}
