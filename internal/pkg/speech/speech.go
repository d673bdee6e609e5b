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

// Package speech 语音识别引擎的抽象。
// 识别本身发生在浏览器里面，服务端只负责接收识别结果，
// 所以默认的实现 PushEngine 是由 HTTP 接口推送片段驱动的。
package speech

import (
	"context"
	"errors"
	"sync"

	"github.com/ecodeclub/ekit/syncx"
)

const (
	DefaultLocale = "en-US"

	defaultBufferSize = 64
)

var (
	ErrStreamNotFound = errors.New("识别流不存在")
	ErrStreamExists   = errors.New("识别流已经存在")
	ErrStreamClosed   = errors.New("识别流已经关闭")
	ErrBufferFull     = errors.New("识别流缓冲区已满")
)

// Fragment 识别引擎产生的一个片段，只有 IsFinal 为 true 的才是最终结果
type Fragment struct {
	Text    string `json:"text"`
	IsFinal bool   `json:"isFinal"`
}

type Config struct {
	// StreamID 识别流的唯一标识，推送片段的时候使用
	StreamID string
	Locale   string
}

// Subscription 一次识别会话的订阅。
// 调用 Unsubscribe 之后两个 channel 都会被关闭。
type Subscription interface {
	Fragments() <-chan Fragment
	Errors() <-chan error
	Unsubscribe()
}

type Engine interface {
	Start(ctx context.Context, cfg Config) (Subscription, error)
}

// PushEngine 由外部推送识别结果的引擎
type PushEngine struct {
	streams    syncx.Map[string, *PushSubscription]
	bufferSize int
}

func NewPushEngine() *PushEngine {
	return &PushEngine{bufferSize: defaultBufferSize}
}

func (e *PushEngine) Start(ctx context.Context, cfg Config) (Subscription, error) {
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	sub := &PushSubscription{
		locale:    cfg.Locale,
		fragments: make(chan Fragment, e.bufferSize),
		errs:      make(chan error, 1),
	}
	sub.onClose = func() {
		e.streams.Delete(cfg.StreamID)
	}
	if _, loaded := e.streams.LoadOrStore(cfg.StreamID, sub); loaded {
		return nil, ErrStreamExists
	}
	return sub, nil
}

// Push 把浏览器识别出来的片段推送给订阅方
func (e *PushEngine) Push(ctx context.Context, streamID string, fragments ...Fragment) error {
	sub, ok := e.streams.Load(streamID)
	if !ok {
		return ErrStreamNotFound
	}
	for _, f := range fragments {
		if err := sub.push(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// Fail 浏览器端的识别引擎出错了，例如没有麦克风权限
func (e *PushEngine) Fail(streamID string, err error) error {
	sub, ok := e.streams.Load(streamID)
	if !ok {
		return ErrStreamNotFound
	}
	return sub.fail(err)
}

type PushSubscription struct {
	mu        sync.Mutex
	closed    bool
	locale    string
	fragments chan Fragment
	errs      chan error
	onClose   func()
}

func (s *PushSubscription) Locale() string {
	return s.locale
}

func (s *PushSubscription) Fragments() <-chan Fragment {
	return s.fragments
}

func (s *PushSubscription) Errors() <-chan error {
	return s.errs
}

func (s *PushSubscription) Unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.fragments)
	close(s.errs)
	s.onClose()
}

func (s *PushSubscription) push(ctx context.Context, f Fragment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	// 持有锁的时候不能阻塞，不然 Unsubscribe 会被卡住
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.fragments <- f:
		return nil
	default:
		return ErrBufferFull
	}
}

func (s *PushSubscription) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	select {
	case s.errs <- err:
	default:
		// 已经有一个错误在等待处理了
	}
	return nil
}
