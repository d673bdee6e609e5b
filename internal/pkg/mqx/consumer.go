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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// HandleFunc 处理一条已经反序列化的事件
type HandleFunc[T any] func(ctx context.Context, evt T) error

// GeneralConsumer 消费 JSON 格式的事件
type GeneralConsumer[T any] struct {
	name     string
	consumer mq.Consumer
	handle   HandleFunc[T]
	logger   *elog.Component
}

func NewGeneralConsumer[T any](q mq.MQ, topic, group string, handle HandleFunc[T]) (*GeneralConsumer[T], error) {
	c, err := q.Consumer(topic, group)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的消费者失败: %w", topic, err)
	}
	return &GeneralConsumer[T]{
		name:     topic + "/" + group,
		consumer: c,
		handle:   handle,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("mqx.consumer")),
	}, nil
}

// Start 在后台循环消费，ctx 被取消之后退出
func (c *GeneralConsumer[T]) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费事件失败",
					elog.String("consumer", c.name),
					elog.FieldErr(err))
			}
		}
	}()
}

// Consume 消费一条消息
func (c *GeneralConsumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		// 格式错误的消息重试也没有用，跳过
		return errors.Join(ErrInvalidMessage, err)
	}
	return c.handle(ctx, evt)
}

var ErrInvalidMessage = errors.New("消息格式错误")
