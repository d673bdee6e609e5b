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

package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushEngine(t *testing.T) {
	ctx := context.Background()
	engine := NewPushEngine()
	sub, err := engine.Start(ctx, Config{StreamID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, DefaultLocale, sub.(*PushSubscription).Locale())

	_, err = engine.Start(ctx, Config{StreamID: "s1"})
	assert.ErrorIs(t, err, ErrStreamExists)

	err = engine.Push(ctx, "s1",
		Fragment{Text: "I ", IsFinal: true},
		Fragment{Text: "worked", IsFinal: false})
	require.NoError(t, err)
	assert.Equal(t, Fragment{Text: "I ", IsFinal: true}, <-sub.Fragments())
	assert.Equal(t, Fragment{Text: "worked", IsFinal: false}, <-sub.Fragments())

	engineErr := errors.New("not-allowed")
	require.NoError(t, engine.Fail("s1", engineErr))
	// 第二个错误被丢弃
	require.NoError(t, engine.Fail("s1", errors.New("network")))
	assert.Equal(t, engineErr, <-sub.Errors())

	sub.Unsubscribe()
	// 重复取消订阅没有副作用
	sub.Unsubscribe()
	_, ok := <-sub.Fragments()
	assert.False(t, ok)
	_, ok = <-sub.Errors()
	assert.False(t, ok)

	assert.ErrorIs(t, engine.Push(ctx, "s1", Fragment{Text: "x"}), ErrStreamNotFound)
	assert.ErrorIs(t, engine.Fail("s1", engineErr), ErrStreamNotFound)

	// 关闭之后可以用同一个 ID 重新开始
	_, err = engine.Start(ctx, Config{StreamID: "s1", Locale: "zh-CN"})
	assert.NoError(t, err)
}

func TestPushEngine_BufferFull(t *testing.T) {
	ctx := context.Background()
	engine := &PushEngine{bufferSize: 1}
	sub, err := engine.Start(ctx, Config{StreamID: "s2"})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, engine.Push(ctx, "s2", Fragment{Text: "a", IsFinal: true}))
	assert.ErrorIs(t, engine.Push(ctx, "s2", Fragment{Text: "b", IsFinal: true}), ErrBufferFull)
}
