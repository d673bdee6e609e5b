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
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Uid  int64  `json:"uid"`
	Name string `json:"name"`
}

func (e testEvent) MessageKey() string {
	return e.Name
}

func TestGeneralProducerAndConsumer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	const topic = "mqx_test_events"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, topic, 1))
	tq := NewTraceMq(q)

	got := make(chan testEvent, 1)
	consumer, err := NewGeneralConsumer[testEvent](tq, topic, "mqx_test", func(ctx context.Context, evt testEvent) error {
		got <- evt
		return nil
	})
	require.NoError(t, err)

	producer, err := NewGeneralProducer[testEvent](tq, topic)
	require.NoError(t, err)
	want := testEvent{Uid: 1, Name: "answer"}
	require.NoError(t, producer.Produce(ctx, want))

	require.NoError(t, consumer.Consume(ctx))
	assert.Equal(t, want, <-got)
}

func TestGeneralConsumer_InvalidMessage(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	const topic = "mqx_invalid_events"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, topic, 1))

	consumer, err := NewGeneralConsumer[testEvent](q, topic, "mqx_test", func(ctx context.Context, evt testEvent) error {
		return nil
	})
	require.NoError(t, err)
	p, err := q.Producer(topic)
	require.NoError(t, err)
	_, err = p.Produce(ctx, &mq.Message{Value: []byte("not json")})
	require.NoError(t, err)

	assert.ErrorIs(t, consumer.Consume(ctx), ErrInvalidMessage)
}
