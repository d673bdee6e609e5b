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
	"strings"
	"sync"

	"github.com/ecodeclub/mockmate/internal/pkg/speech"
)

// Accumulator 把识别引擎产生的片段拼接成完整的回答。
// 只有最终结果会被保留，中间结果只用于展示。
type Accumulator struct {
	mu      sync.RWMutex
	finals  []string
	interim string
	err     error
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

func (a *Accumulator) Add(f speech.Fragment) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !f.IsFinal {
		a.interim = f.Text
		return
	}
	a.interim = ""
	text := strings.TrimSpace(f.Text)
	if text == "" {
		return
	}
	a.finals = append(a.finals, text)
}

// Answer 目前为止的完整回答，片段之间用空格分隔
func (a *Accumulator) Answer() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return strings.Join(a.finals, " ")
}

func (a *Accumulator) Interim() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.interim
}

// Err 识别引擎最近一次的错误
func (a *Accumulator) Err() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.err
}

func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.finals = nil
	a.interim = ""
	a.err = nil
}

// Consume 持续读取 sub 直到取消订阅、ctx 结束或者引擎出错。
// 引擎出错的时候返回 *SpeechEngineError，已经累积的内容不受影响。
func (a *Accumulator) Consume(ctx context.Context, sub speech.Subscription) error {
	fragments := sub.Fragments()
	errs := sub.Errors()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f, ok := <-fragments:
			if !ok {
				// 取消订阅之前引擎可能已经报错了
				return a.pending(errs)
			}
			a.Add(f)
		case err, ok := <-errs:
			if !ok {
				// 只剩下片段了
				errs = nil
				continue
			}
			// 出错之前已经送达的片段也要保留
			a.drain(fragments)
			return a.fail(err)
		}
	}
}

func (a *Accumulator) pending(errs <-chan error) error {
	if errs == nil {
		return nil
	}
	select {
	case err, ok := <-errs:
		if ok {
			return a.fail(err)
		}
	default:
	}
	return nil
}

func (a *Accumulator) fail(err error) error {
	engineErr := &SpeechEngineError{Cause: err}
	a.mu.Lock()
	a.err = engineErr
	a.mu.Unlock()
	return engineErr
}

func (a *Accumulator) drain(fragments <-chan speech.Fragment) {
	for {
		select {
		case f, ok := <-fragments:
			if !ok {
				return
			}
			a.Add(f)
		default:
			return
		}
	}
}
