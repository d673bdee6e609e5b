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
	"testing"

	"github.com/ecodeclub/mockmate/internal/pkg/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_Add(t *testing.T) {
	testCases := []struct {
		name        string
		fragments   []speech.Fragment
		wantAnswer  string
		wantInterim string
	}{
		{
			name:       "没有片段",
			wantAnswer: "",
		},
		{
			name: "只有最终结果",
			fragments: []speech.Fragment{
				{Text: "I ", IsFinal: true},
				{Text: "worked on a ", IsFinal: true},
				{Text: "distributed cache service.", IsFinal: true},
			},
			wantAnswer: "I worked on a distributed cache service.",
		},
		{
			name: "中间结果不影响最终结果",
			fragments: []speech.Fragment{
				{Text: "I wor", IsFinal: false},
				{Text: "I ", IsFinal: true},
				{Text: "worked on", IsFinal: false},
				{Text: "worked on a ", IsFinal: true},
				{Text: "distributed", IsFinal: false},
			},
			wantAnswer:  "I worked on a",
			wantInterim: "distributed",
		},
		{
			name: "空白的最终结果被忽略",
			fragments: []speech.Fragment{
				{Text: "hello", IsFinal: true},
				{Text: "   ", IsFinal: true},
				{Text: "world", IsFinal: true},
			},
			wantAnswer: "hello world",
		},
		{
			name: "最终结果会清空中间结果",
			fragments: []speech.Fragment{
				{Text: "hel", IsFinal: false},
				{Text: "hello", IsFinal: true},
			},
			wantAnswer: "hello",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			acc := NewAccumulator()
			for _, f := range tc.fragments {
				acc.Add(f)
			}
			assert.Equal(t, tc.wantAnswer, acc.Answer())
			assert.Equal(t, tc.wantInterim, acc.Interim())
		})
	}
}

func TestAccumulator_Reset(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(speech.Fragment{Text: "hello", IsFinal: true})
	acc.Add(speech.Fragment{Text: "wor", IsFinal: false})
	acc.Reset()
	assert.Equal(t, "", acc.Answer())
	assert.Equal(t, "", acc.Interim())
	assert.NoError(t, acc.Err())
}

func TestAccumulator_Consume(t *testing.T) {
	ctx := context.Background()
	engine := speech.NewPushEngine()

	t.Run("取消订阅之后正常返回", func(t *testing.T) {
		sub, err := engine.Start(ctx, speech.Config{StreamID: "acc-1"})
		require.NoError(t, err)
		acc := NewAccumulator()
		done := make(chan error, 1)
		go func() {
			done <- acc.Consume(ctx, sub)
		}()
		require.NoError(t, engine.Push(ctx, "acc-1",
			speech.Fragment{Text: "I ", IsFinal: true},
			speech.Fragment{Text: "worked", IsFinal: false},
			speech.Fragment{Text: "worked on a ", IsFinal: true}))
		sub.Unsubscribe()
		assert.NoError(t, <-done)
		assert.Equal(t, "I worked on a", acc.Answer())
	})

	t.Run("引擎出错保留已经累积的内容", func(t *testing.T) {
		sub, err := engine.Start(ctx, speech.Config{StreamID: "acc-2"})
		require.NoError(t, err)
		defer sub.Unsubscribe()
		acc := NewAccumulator()
		acc.Add(speech.Fragment{Text: "already said", IsFinal: true})
		engineErr := errors.New("not-allowed")
		require.NoError(t, engine.Fail("acc-2", engineErr))

		err = acc.Consume(ctx, sub)
		var se *SpeechEngineError
		require.ErrorAs(t, err, &se)
		assert.ErrorIs(t, err, ErrSpeechEngine)
		assert.ErrorIs(t, err, engineErr)
		assert.Equal(t, err, acc.Err())
		assert.Equal(t, "already said", acc.Answer())
	})

	t.Run("context 取消", func(t *testing.T) {
		sub, err := engine.Start(ctx, speech.Config{StreamID: "acc-3"})
		require.NoError(t, err)
		defer sub.Unsubscribe()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, NewAccumulator().Consume(cctx, sub), context.Canceled)
	})
}
